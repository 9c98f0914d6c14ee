package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niura/niura-server/internal/api/http/middleware"
	"github.com/niura/niura-server/internal/api/http/validation"
	"github.com/niura/niura-server/internal/logger"
	"github.com/niura/niura-server/internal/model"
)

// MetricService defines operations over a user's wellness samples.
type MetricService interface {
	Record(ctx context.Context, userID int64, stress, focus, mentalReadiness float64) (model.Metric, error)
	List(ctx context.Context, userID int64, skip, limit int) ([]model.Metric, error)
	Today(ctx context.Context, userID int64) ([]model.Metric, error)
	Range(ctx context.Context, userID int64, start, end time.Time) ([]model.Metric, error)
	Average(ctx context.Context, userID int64, start, end *time.Time) (model.MetricAverage, error)
}

// Metric handles HTTP endpoints for wellness metrics.
type Metric struct {
	metricService MetricService
	logger        *logger.Logger
}

// NewMetric creates a new Metric handler.
func NewMetric(metricService MetricService, logger *logger.Logger) *Metric {
	return &Metric{
		metricService: metricService,
		logger:        logger,
	}
}

// No range constraints on the fields: the device decides their scale.
type recordMetricRequest struct {
	Stress          float64 `json:"stress"`
	Focus           float64 `json:"focus"`
	MentalReadiness float64 `json:"mental_readiness"`
}

type metricResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Timestamp       time.Time `json:"timestamp"`
	Stress          float64   `json:"stress"`
	Focus           float64   `json:"focus"`
	MentalReadiness float64   `json:"mental_readiness"`
}

type averageResponse struct {
	AvgStress          float64 `json:"avg_stress"`
	AvgFocus           float64 `json:"avg_focus"`
	AvgMentalReadiness float64 `json:"avg_mental_readiness"`
}

func toMetricResponse(m model.Metric) metricResponse {
	return metricResponse{
		ID:              m.ID,
		UserID:          m.UserID,
		Timestamp:       m.Timestamp,
		Stress:          m.Stress,
		Focus:           m.Focus,
		MentalReadiness: m.MentalReadiness,
	}
}

func toMetricResponses(metrics []model.Metric) []metricResponse {
	out := make([]metricResponse, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, toMetricResponse(m))
	}
	return out
}

// Record stores a new sample for the authenticated user, stamped server-side.
func (h *Metric) Record(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		handleError(c, model.ErrUnauthenticated)
		return
	}

	var req recordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, validation.ToDetails(err))
		return
	}

	h.logger.Debug("Metric handler: processing record request",
		"user_id", user.ID)

	metric, err := h.metricService.Record(c.Request.Context(), user.ID, req.Stress, req.Focus, req.MentalReadiness)
	if err != nil {
		h.logger.Error("Metric handler: record failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Metric handler: record completed",
		"user_id", user.ID,
		"metric_id", metric.ID)

	c.JSON(http.StatusCreated, toMetricResponse(metric))
}

// List returns the authenticated user's samples with skip/limit paging.
func (h *Metric) List(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		handleError(c, model.ErrUnauthenticated)
		return
	}

	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: "skip must be an integer"})
		return
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: "limit must be an integer"})
		return
	}

	metrics, err := h.metricService.List(c.Request.Context(), user.ID, skip, limit)
	if err != nil {
		h.logger.Error("Metric handler: list failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMetricResponses(metrics))
}

// Today returns the samples recorded since the start of the current UTC day.
func (h *Metric) Today(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		handleError(c, model.ErrUnauthenticated)
		return
	}

	metrics, err := h.metricService.Today(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Metric handler: today failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMetricResponses(metrics))
}

// Range returns samples between the required start_date and end_date
// query parameters, both inclusive.
func (h *Metric) Range(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		handleError(c, model.ErrUnauthenticated)
		return
	}

	start, ok := requireTimeQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := requireTimeQuery(c, "end_date")
	if !ok {
		return
	}

	metrics, err := h.metricService.Range(c.Request.Context(), user.ID, start, end)
	if err != nil {
		h.logger.Error("Metric handler: range failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMetricResponses(metrics))
}

// Average returns per-field means over the optional start_date/end_date
// window. With no samples in the window all averages are zero.
func (h *Metric) Average(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		handleError(c, model.ErrUnauthenticated)
		return
	}

	start, ok := optionalTimeQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := optionalTimeQuery(c, "end_date")
	if !ok {
		return
	}

	avg, err := h.metricService.Average(c.Request.Context(), user.ID, start, end)
	if err != nil {
		h.logger.Error("Metric handler: average failed",
			"user_id", user.ID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, averageResponse{
		AvgStress:          avg.Stress,
		AvgFocus:           avg.Focus,
		AvgMentalReadiness: avg.MentalReadiness,
	})
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func requireTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: name + " is required"})
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: name + " must be an RFC 3339 timestamp"})
		return time.Time{}, false
	}
	return t, true
}

func optionalTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Detail: name + " must be an RFC 3339 timestamp"})
		return nil, false
	}
	return &t, true
}
