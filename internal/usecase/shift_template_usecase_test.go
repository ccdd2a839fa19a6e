package usecase

import (
	"context"
	"testing"
	"time"

	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
	"medshift-scheduler/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeTemplateRepo struct {
	repository.ShiftTemplateRepository
	template *entity.ShiftTemplate
}

func (f *fakeTemplateRepo) FindByID(db *gorm.DB, id uint) (*entity.ShiftTemplate, error) {
	return f.template, nil
}

type recordingShiftRepo struct {
	repository.ShiftRepository
	created []entity.Shift
}

func (f *recordingShiftRepo) Create(db *gorm.DB, shift *entity.Shift) error {
	shift.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *shift)
	return nil
}

func (f *recordingShiftRepo) FindByID(db *gorm.DB, id uint) (*entity.Shift, error) {
	return nil, nil
}

type noopAuditService struct{}

func (noopAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (noopAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return nil
}

type noopStatsService struct{}

func (noopStatsService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	return nil, nil
}

func (noopStatsService) Invalidate(ctx context.Context) {}

func newGenerateFixture(t *testing.T, template *entity.ShiftTemplate) (*shiftTemplateUsecase, *recordingShiftRepo, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	shifts := &recordingShiftRepo{}
	u := &shiftTemplateUsecase{
		db:           db,
		log:          logrus.New(),
		templateRepo: &fakeTemplateRepo{template: template},
		shiftRepo:    shifts,
		auditService: noopAuditService{},
		statsService: noopStatsService{},
	}
	return u, shifts, mock
}

// Mondays only (templates count Monday as day 0).
func mondays() entity.JSON {
	return entity.JSON{"days": []interface{}{float64(0)}}
}

func TestGenerateShiftsOvernightEndsNextDay(t *testing.T) {
	template := &entity.ShiftTemplate{
		ID:         3,
		Name:       "Night cover",
		LocationID: 1,
		PositionID: 2,
		StartTime:  "22:00",
		EndTime:    "06:00",
		DaysOfWeek: mondays(),
		IsActive:   true,
	}
	u, shifts, mock := newGenerateFixture(t, template)
	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := u.GenerateShifts(context.Background(), nil, 3, &dto.GenerateShiftsRequest{
		StartDate: "2026-03-02", // a Monday
		EndDate:   "2026-03-08",
	})
	require.NoError(t, err)
	require.Len(t, shifts.created, 1)

	got := shifts.created[0]
	assert.Equal(t, time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC), got.StartDatetime)
	assert.Equal(t, time.Date(2026, 3, 3, 6, 0, 0, 0, time.UTC), got.EndDatetime)
	assert.Equal(t, entity.ShiftStatusDraft, got.Status)
	assert.Empty(t, resp.Skipped)
	assert.Len(t, resp.Created, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateShiftsDaytimeEndsSameDay(t *testing.T) {
	template := &entity.ShiftTemplate{
		ID:         4,
		Name:       "Day shift",
		LocationID: 1,
		PositionID: 2,
		StartTime:  "09:00",
		EndTime:    "17:00",
		DaysOfWeek: mondays(),
		IsActive:   true,
	}
	u, shifts, mock := newGenerateFixture(t, template)
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := u.GenerateShifts(context.Background(), nil, 4, &dto.GenerateShiftsRequest{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)
	require.Len(t, shifts.created, 1)

	got := shifts.created[0]
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), got.StartDatetime)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), got.EndDatetime)
	assert.NoError(t, mock.ExpectationsWereMet())
}
