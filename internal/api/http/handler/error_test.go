package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/niura/niura-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "email taken",
			err:            model.ErrEmailTaken,
			expectedStatus: http.StatusConflict,
			expectedDetail: "email already registered",
		},
		{
			name:           "unauthenticated",
			err:            model.ErrUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "could not validate credentials",
		},
		{
			name:           "invalid range",
			err:            model.ErrInvalidRange,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "start date must not be after end date",
		},
		{
			name:           "not found",
			err:            model.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedDetail: "not found",
		},
		{
			name:           "unknown error",
			err:            assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedDetail)
		})
	}
}

func TestHandleError_UnknownDoesNotLeakCause(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handleError(c, assert.AnError)

	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
