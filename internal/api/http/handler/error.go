package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niura/niura-server/internal/model"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Detail  string            `json:"detail"`
	Details map[string]string `json:"details,omitempty"`
}

// handleError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is reported as an internal error without leaking the cause.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{Detail: "email already registered"})
	case errors.Is(err, model.ErrUnauthenticated):
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Detail: model.ErrUnauthenticated.Error()})
	case errors.Is(err, model.ErrInvalidRange):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: "start date must not be after end date"})
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Detail: "not found"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
	}
}

func handleBindError(c *gin.Context, details map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
		Detail:  "invalid request payload",
		Details: details,
	})
}
