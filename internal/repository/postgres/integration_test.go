//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/niura/niura-server/internal/model"
	repo "github.com/niura/niura-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "niura_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/niura_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ur := repo.NewUserRepository(conn)

	u := model.User{
		Email:        "user@example.com",
		Name:         "User",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
	}
	saved, err := ur.Create(ctx, u)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.False(t, saved.CreatedAt.IsZero())

	byEmail, err := ur.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, saved.ID, byEmail.ID)
	require.Equal(t, u.PasswordHash, byEmail.PasswordHash)

	byID, err := ur.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)

	_, err = ur.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = ur.Create(ctx, u)
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestMetricRepository_WindowsAndAverages(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ur := repo.NewUserRepository(conn)
	mr := repo.NewMetricRepository(conn)

	owner, err := ur.Create(ctx, model.User{
		Email:        "owner@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
	})
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := mr.Create(ctx, model.Metric{
			UserID:          owner.ID,
			Timestamp:       base.Add(time.Duration(i) * time.Hour),
			Stress:          float64(10 * (i + 1)),
			Focus:           float64(20 * (i + 1)),
			MentalReadiness: float64(30 * (i + 1)),
		})
		require.NoError(t, err)
	}

	t.Run("list_pagination", func(t *testing.T) {
		all, err := mr.GetByUserID(ctx, owner.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, all, 5)
		require.Equal(t, float64(10), all[0].Stress)

		page, err := mr.GetByUserID(ctx, owner.ID, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, float64(30), page[0].Stress)
	})

	t.Run("range_inclusive", func(t *testing.T) {
		got, err := mr.GetByUserIDInRange(ctx, owner.ID, base.Add(time.Hour), base.Add(3*time.Hour))
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, float64(20), got[0].Stress)
		require.Equal(t, float64(40), got[2].Stress)
	})

	t.Run("window_half_open", func(t *testing.T) {
		got, err := mr.GetByUserIDInWindow(ctx, owner.ID, base.Add(time.Hour), base.Add(3*time.Hour))
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, float64(30), got[1].Stress)
	})

	t.Run("average_all", func(t *testing.T) {
		avg, err := mr.AverageByUserID(ctx, owner.ID, nil, nil)
		require.NoError(t, err)
		require.InDelta(t, 30, avg.Stress, 0.001)
		require.InDelta(t, 60, avg.Focus, 0.001)
		require.InDelta(t, 90, avg.MentalReadiness, 0.001)
	})

	t.Run("average_bounded", func(t *testing.T) {
		start := base
		end := base.Add(time.Hour)
		avg, err := mr.AverageByUserID(ctx, owner.ID, &start, &end)
		require.NoError(t, err)
		require.InDelta(t, 15, avg.Stress, 0.001)
	})

	t.Run("average_empty_is_zero", func(t *testing.T) {
		stranger, err := ur.Create(ctx, model.User{
			Email:        "stranger@example.com",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
			IsActive:     true,
		})
		require.NoError(t, err)

		avg, err := mr.AverageByUserID(ctx, stranger.ID, nil, nil)
		require.NoError(t, err)
		require.Zero(t, avg.Stress)
		require.Zero(t, avg.Focus)
		require.Zero(t, avg.MentalReadiness)
	})
}
