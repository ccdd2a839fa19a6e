package service

import (
	"context"
	"testing"
	"time"

	"medshift-scheduler/config"
	"medshift-scheduler/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeStatsRepo struct {
	calls int
}

func (f *fakeStatsRepo) CountActiveEmployees(db *gorm.DB) (int64, error) {
	f.calls++
	return 12, nil
}

func (f *fakeStatsRepo) CountActiveDepartments(db *gorm.DB) (int64, error) { return 3, nil }
func (f *fakeStatsRepo) CountActivePositions(db *gorm.DB) (int64, error)  { return 5, nil }
func (f *fakeStatsRepo) CountActiveLocations(db *gorm.DB) (int64, error)  { return 2, nil }

func (f *fakeStatsRepo) ShiftCountsByStatus(db *gorm.DB) (map[string]int64, error) {
	return map[string]int64{"draft": 4, "published": 9}, nil
}

func (f *fakeStatsRepo) EmployeeCountsByType(db *gorm.DB) (map[string]int64, error) {
	return map[string]int64{"full_time": 10, "part_time": 2}, nil
}

func (f *fakeStatsRepo) HourlyRateStats(db *gorm.DB) (*repository.RateStats, error) {
	return &repository.RateStats{AvgRate: 42.5, MinRate: 28, MaxRate: 65}, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestDashboardStatsWithoutRedis(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatsService(newTestDB(t), nil, logrus.New(), repo, config.CacheConfig{
		Namespace: "medshift",
		StatsTTL:  5 * time.Minute,
	})

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.ActiveEmployees)
	assert.Equal(t, int64(3), stats.ActiveDepartments)
	assert.Equal(t, int64(9), stats.ShiftsByStatus["published"])
	assert.Equal(t, int64(10), stats.EmployeesByType["full_time"])
	assert.Equal(t, 42.5, stats.AvgHourlyRate)
	assert.NotEmpty(t, stats.CachedAt)

	// Without Redis every read recomputes.
	_, err = svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestInvalidateWithoutRedisIsNoop(t *testing.T) {
	svc := NewStatsService(newTestDB(t), nil, logrus.New(), &fakeStatsRepo{}, config.CacheConfig{
		Namespace: "medshift",
		StatsTTL:  5 * time.Minute,
	})

	assert.NotPanics(t, func() { svc.Invalidate(context.Background()) })
}
