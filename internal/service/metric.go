package service

import (
	"context"
	"fmt"
	"time"

	"github.com/niura/niura-server/internal/logger"
	"github.com/niura/niura-server/internal/model"
)

// DefaultListLimit caps List results when the caller passes no limit.
const DefaultListLimit = 100

// Metric answers point, range and average queries over EEG samples,
// always scoped to the authenticated caller's user id.
type Metric struct {
	metricStore model.MetricStore
	logger      *logger.Logger
}

func NewMetric(metricStore model.MetricStore, logger *logger.Logger) *Metric {
	return &Metric{
		metricStore: metricStore,
		logger:      logger,
	}
}

// Record persists one sample for the user, timestamped server-side.
// Field values are stored as given; the device decides their scale.
func (s *Metric) Record(ctx context.Context, userID int64, stress, focus, mentalReadiness float64) (model.Metric, error) {
	metric, err := s.metricStore.Create(ctx, model.Metric{
		UserID:          userID,
		Timestamp:       time.Now().UTC(),
		Stress:          stress,
		Focus:           focus,
		MentalReadiness: mentalReadiness,
	})
	if err != nil {
		s.logger.Error("Metric service: failed to create metric",
			"user_id", userID,
			"error", err.Error())
		return model.Metric{}, fmt.Errorf("failed to create metric: %w", err)
	}

	s.logger.Debug("Metric service: metric recorded",
		"user_id", userID,
		"metric_id", metric.ID)

	return metric, nil
}

// List returns the user's samples in insertion order, offset by skip
// and capped at limit (DefaultListLimit if limit is not positive).
func (s *Metric) List(ctx context.Context, userID int64, skip, limit int) ([]model.Metric, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	metrics, err := s.metricStore.GetByUserID(ctx, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	return metrics, nil
}

// Today returns the user's samples for the current UTC day in ascending
// timestamp order.
func (s *Metric) Today(ctx context.Context, userID int64) ([]model.Metric, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	metrics, err := s.metricStore.GetByUserIDInWindow(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's metrics: %w", err)
	}

	return metrics, nil
}

// Range returns the user's samples with timestamps in [start, end],
// inclusive on both ends, ascending. A window with start after end
// yields model.ErrInvalidRange.
func (s *Metric) Range(ctx context.Context, userID int64, start, end time.Time) ([]model.Metric, error) {
	if start.After(end) {
		return nil, model.ErrInvalidRange
	}

	metrics, err := s.metricStore.GetByUserIDInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics in range: %w", err)
	}

	return metrics, nil
}

// Average computes the arithmetic mean of each field over samples in
// the optional window; nil bounds leave that side open. Zero matching
// samples produce an all-zero result, not an error.
func (s *Metric) Average(ctx context.Context, userID int64, start, end *time.Time) (model.MetricAverage, error) {
	avg, err := s.metricStore.AverageByUserID(ctx, userID, start, end)
	if err != nil {
		return model.MetricAverage{}, fmt.Errorf("failed to average metrics: %w", err)
	}

	return avg, nil
}
