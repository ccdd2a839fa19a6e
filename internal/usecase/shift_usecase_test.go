package usecase

import (
	"errors"
	"testing"
	"time"

	"medshift-scheduler/internal/domain/entity"
	"medshift-scheduler/internal/domain/repository"
	"medshift-scheduler/internal/schedule"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	employee *entity.Employee
}

func (f *fakeEmployeeRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error) {
	return f.employee, nil
}

type fakeShiftRepo struct {
	repository.ShiftRepository
	committed       []entity.Shift
	lastExcludedID  uint
	lastQueriedUUID uuid.UUID
}

func (f *fakeShiftRepo) FindCommittedByEmployee(db *gorm.DB, employeeID uuid.UUID, excludeID uint) ([]entity.Shift, error) {
	f.lastQueriedUUID = employeeID
	f.lastExcludedID = excludeID
	var out []entity.Shift
	for _, s := range f.committed {
		if s.ID != excludeID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeUnavailabilityRepo struct {
	repository.UnavailabilityRepository
	blocked []entity.Unavailability
}

func (f *fakeUnavailabilityRepo) FindByEmployee(db *gorm.DB, employeeID uuid.UUID, excludeID uint) ([]entity.Unavailability, error) {
	return f.blocked, nil
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC)
}

func newCheckFixture(employee *entity.Employee, shifts *fakeShiftRepo, unavail *fakeUnavailabilityRepo) *shiftUsecase {
	return &shiftUsecase{
		log:                logrus.New(),
		shiftRepo:          shifts,
		employeeRepo:       &fakeEmployeeRepo{employee: employee},
		unavailabilityRepo: unavail,
	}
}

func TestCheckAssignableNoConflicts(t *testing.T) {
	employeeID := uuid.New()
	employee := &entity.Employee{ID: employeeID, IsActive: true}
	u := newCheckFixture(employee, &fakeShiftRepo{}, &fakeUnavailabilityRepo{})

	err := u.checkAssignable(nil, employeeID, schedule.Interval{Start: at(8), End: at(16)}, 0)
	assert.NoError(t, err)
}

func TestCheckAssignableUnknownEmployee(t *testing.T) {
	u := newCheckFixture(nil, &fakeShiftRepo{}, &fakeUnavailabilityRepo{})

	err := u.checkAssignable(nil, uuid.New(), schedule.Interval{Start: at(8), End: at(16)}, 0)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestCheckAssignableInactiveEmployee(t *testing.T) {
	employeeID := uuid.New()
	employee := &entity.Employee{ID: employeeID, IsActive: false}
	u := newCheckFixture(employee, &fakeShiftRepo{}, &fakeUnavailabilityRepo{})

	err := u.checkAssignable(nil, employeeID, schedule.Interval{Start: at(8), End: at(16)}, 0)
	assert.ErrorIs(t, err, ErrEmployeeInactive)
}

func TestCheckAssignableOverlapReported(t *testing.T) {
	employeeID := uuid.New()
	employee := &entity.Employee{ID: employeeID, IsActive: true}
	shifts := &fakeShiftRepo{committed: []entity.Shift{
		{ID: 7, StartDatetime: at(12), EndDatetime: at(20)},
	}}
	u := newCheckFixture(employee, shifts, &fakeUnavailabilityRepo{})

	err := u.checkAssignable(nil, employeeID, schedule.Interval{Start: at(8), End: at(16)}, 0)
	require.Error(t, err)

	var conflict *ShiftConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint(7), conflict.ConflictingShiftID)
}

func TestCheckAssignableBackToBackAllowed(t *testing.T) {
	employeeID := uuid.New()
	employee := &entity.Employee{ID: employeeID, IsActive: true}
	shifts := &fakeShiftRepo{committed: []entity.Shift{
		{ID: 7, StartDatetime: at(16), EndDatetime: at(23)},
	}}
	u := newCheckFixture(employee, shifts, &fakeUnavailabilityRepo{})

	// Half-open intervals: a shift ending exactly when the next one starts
	// is not a conflict.
	err := u.checkAssignable(nil, employeeID, schedule.Interval{Start: at(8), End: at(16)}, 0)
	assert.NoError(t, err)
}

func TestCheckAssignableExcludesEditedShift(t *testing.T) {
	employeeID := uuid.New()
	employee := &entity.Employee{ID: employeeID, IsActive: true}
	shifts := &fakeShiftRepo{committed: []entity.Shift{
		{ID: 7, StartDatetime: at(8), EndDatetime: at(16)},
	}}
	u := newCheckFixture(employee, shifts, &fakeUnavailabilityRepo{})

	err := u.checkAssignable(nil, employeeID, schedule.Interval{Start: at(9), End: at(17)}, 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), shifts.lastExcludedID)
}

func TestCheckAssignableUnavailabilityBlocks(t *testing.T) {
	employeeID := uuid.New()
	employee := &entity.Employee{ID: employeeID, IsActive: true}
	unavail := &fakeUnavailabilityRepo{blocked: []entity.Unavailability{
		{StartDatetime: at(10), EndDatetime: at(12)},
	}}
	u := newCheckFixture(employee, &fakeShiftRepo{}, unavail)

	err := u.checkAssignable(nil, employeeID, schedule.Interval{Start: at(8), End: at(16)}, 0)
	assert.ErrorIs(t, err, ErrEmployeeUnavailable)
}
