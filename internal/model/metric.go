package model

import (
	"context"
	"time"
)

// MetricStore defines persistence operations for EEG metric samples.
// Samples are immutable: there are no update or delete operations.
type MetricStore interface {
	Create(ctx context.Context, metric Metric) (Metric, error)
	GetByUserID(ctx context.Context, userID int64, skip, limit int) ([]Metric, error)
	GetByUserIDInRange(ctx context.Context, userID int64, start, end time.Time) ([]Metric, error)
	GetByUserIDInWindow(ctx context.Context, userID int64, start, end time.Time) ([]Metric, error)
	AverageByUserID(ctx context.Context, userID int64, start, end *time.Time) (MetricAverage, error)
}

// Metric represents one timestamped EEG reading derived on device.
type Metric struct {
	ID              int64
	UserID          int64
	Timestamp       time.Time
	Stress          float64
	Focus           float64
	MentalReadiness float64
}

// MetricAverage holds per-field arithmetic means over a set of samples.
type MetricAverage struct {
	Stress          float64
	Focus           float64
	MentalReadiness float64
}
