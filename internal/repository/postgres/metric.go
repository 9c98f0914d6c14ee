package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/niura/niura-server/internal/model"
)

var _ model.MetricStore = (*MetricRepository)(nil)

type MetricRepository struct {
	db *Connection
}

func NewMetricRepository(db *Connection) *MetricRepository {
	return &MetricRepository{
		db: db,
	}
}

func (r *MetricRepository) Create(ctx context.Context, metric model.Metric) (model.Metric, error) {
	query := `INSERT INTO metrics (user_id, timestamp, stress, focus, mental_readiness)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, user_id, timestamp, stress, focus, mental_readiness`

	var saved model.Metric
	err := r.db.QueryRow(ctx, query,
		metric.UserID, metric.Timestamp, metric.Stress, metric.Focus, metric.MentalReadiness,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Timestamp,
		&saved.Stress, &saved.Focus, &saved.MentalReadiness,
	)
	if err != nil {
		return model.Metric{}, fmt.Errorf("failed to create metric: %w", err)
	}

	return saved, nil
}

// GetByUserID pages through the user's samples in insertion order.
func (r *MetricRepository) GetByUserID(ctx context.Context, userID int64, skip, limit int) ([]model.Metric, error) {
	query := `
		SELECT m.id, m.user_id, m.timestamp, m.stress, m.focus, m.mental_readiness
		FROM metrics m
		WHERE m.user_id = $1
		ORDER BY m.id
		OFFSET $2 LIMIT $3`

	return r.queryMetrics(ctx, query, userID, skip, limit)
}

// GetByUserIDInRange returns samples with timestamp in [start, end],
// inclusive on both ends, ascending by timestamp.
func (r *MetricRepository) GetByUserIDInRange(ctx context.Context, userID int64, start, end time.Time) ([]model.Metric, error) {
	query := `
		SELECT m.id, m.user_id, m.timestamp, m.stress, m.focus, m.mental_readiness
		FROM metrics m
		WHERE m.user_id = $1 AND m.timestamp >= $2 AND m.timestamp <= $3
		ORDER BY m.timestamp ASC`

	return r.queryMetrics(ctx, query, userID, start, end)
}

// GetByUserIDInWindow returns samples with timestamp in [start, end),
// half-open on the upper bound, ascending by timestamp.
func (r *MetricRepository) GetByUserIDInWindow(ctx context.Context, userID int64, start, end time.Time) ([]model.Metric, error) {
	query := `
		SELECT m.id, m.user_id, m.timestamp, m.stress, m.focus, m.mental_readiness
		FROM metrics m
		WHERE m.user_id = $1 AND m.timestamp >= $2 AND m.timestamp < $3
		ORDER BY m.timestamp ASC`

	return r.queryMetrics(ctx, query, userID, start, end)
}

// AverageByUserID computes per-field means over samples in the optional
// window. COALESCE folds the empty set to an all-zero row instead of
// NULLs, so zero matching samples never error.
func (r *MetricRepository) AverageByUserID(ctx context.Context, userID int64, start, end *time.Time) (model.MetricAverage, error) {
	query := `
		SELECT COALESCE(AVG(m.stress), 0), COALESCE(AVG(m.focus), 0), COALESCE(AVG(m.mental_readiness), 0)
		FROM metrics m
		WHERE m.user_id = $1
		  AND ($2::timestamptz IS NULL OR m.timestamp >= $2)
		  AND ($3::timestamptz IS NULL OR m.timestamp <= $3)`

	var avg model.MetricAverage
	err := r.db.QueryRow(ctx, query, userID, start, end).Scan(
		&avg.Stress, &avg.Focus, &avg.MentalReadiness,
	)
	if err != nil {
		return model.MetricAverage{}, fmt.Errorf("failed to average metrics: %w", err)
	}

	return avg, nil
}

func (r *MetricRepository) queryMetrics(ctx context.Context, query string, args ...any) ([]model.Metric, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	defer rows.Close()

	var metrics []model.Metric
	for rows.Next() {
		var metric model.Metric
		err := rows.Scan(
			&metric.ID, &metric.UserID, &metric.Timestamp,
			&metric.Stress, &metric.Focus, &metric.MentalReadiness,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metric rows: %w", err)
	}

	return metrics, nil
}
