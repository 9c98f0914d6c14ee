package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/niura/niura-server/internal/model"
)

// DefaultTokenInfoURL is Google's ID-token introspection endpoint.
const DefaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier implements IdentityVerifier against Google's tokeninfo
// endpoint. The verification call is a single bounded round trip; a
// timeout or any non-OK answer fails verification.
type GoogleVerifier struct {
	clientID string
	endpoint string
	client   *http.Client
}

// Option customizes a GoogleVerifier.
type Option func(*GoogleVerifier)

// WithEndpoint overrides the tokeninfo endpoint.
func WithEndpoint(endpoint string) Option {
	return func(v *GoogleVerifier) {
		v.endpoint = endpoint
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(v *GoogleVerifier) {
		v.client = client
	}
}

// NewGoogleVerifier creates a verifier for the given OAuth client ID
// with the given per-call timeout.
func NewGoogleVerifier(clientID string, timeout time.Duration, opts ...Option) *GoogleVerifier {
	v := &GoogleVerifier{
		clientID: clientID,
		endpoint: DefaultTokenInfoURL,
		client:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type tokenInfo struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
}

// Verify checks the ID token with Google and extracts the holder's
// email and display name. The aud claim must match the configured
// client ID and the email must be verified by Google.
func (v *GoogleVerifier) Verify(ctx context.Context, providerToken string) (model.Identity, error) {
	reqURL := fmt.Sprintf("%s?id_token=%s", v.endpoint, url.QueryEscape(providerToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return model.Identity{}, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Identity{}, fmt.Errorf("tokeninfo rejected token: status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.Identity{}, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if v.clientID != "" && info.Audience != v.clientID {
		return model.Identity{}, fmt.Errorf("token audience mismatch")
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return model.Identity{}, fmt.Errorf("token email not verified")
	}

	return model.Identity{Email: info.Email, Name: info.Name}, nil
}
