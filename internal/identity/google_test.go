package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGoogleVerifier_Verify(t *testing.T) {
	tests := []struct {
		name      string
		clientID  string
		status    int
		body      string
		wantEmail string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "valid token",
			clientID:  "client-123",
			status:    http.StatusOK,
			body:      `{"aud":"client-123","email":"eeg.user@example.com","email_verified":"true","name":"EEG User"}`,
			wantEmail: "eeg.user@example.com",
			wantName:  "EEG User",
		},
		{
			name:     "rejected by provider",
			clientID: "client-123",
			status:   http.StatusBadRequest,
			body:     `{"error":"invalid_token"}`,
			wantErr:  true,
		},
		{
			name:     "audience mismatch",
			clientID: "client-123",
			status:   http.StatusOK,
			body:     `{"aud":"other-client","email":"eeg.user@example.com","email_verified":"true"}`,
			wantErr:  true,
		},
		{
			name:     "unverified email",
			clientID: "client-123",
			status:   http.StatusOK,
			body:     `{"aud":"client-123","email":"eeg.user@example.com","email_verified":"false"}`,
			wantErr:  true,
		},
		{
			name:     "missing email",
			clientID: "client-123",
			status:   http.StatusOK,
			body:     `{"aud":"client-123","email_verified":"true"}`,
			wantErr:  true,
		},
		{
			name:     "invalid json",
			clientID: "client-123",
			status:   http.StatusOK,
			body:     `{`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "provider-token", r.URL.Query().Get("id_token"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			v := NewGoogleVerifier(tt.clientID, time.Second, WithEndpoint(srv.URL))

			got, err := v.Verify(context.Background(), "provider-token")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantEmail, got.Email)
			require.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestGoogleVerifier_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	v := NewGoogleVerifier("client-123", 10*time.Millisecond, WithEndpoint(srv.URL))

	_, err := v.Verify(context.Background(), "provider-token")
	require.Error(t, err)
}
