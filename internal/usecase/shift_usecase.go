package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"medshift-scheduler/internal/converter"
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
	"medshift-scheduler/internal/domain/repository"
	"medshift-scheduler/internal/filter"
	"medshift-scheduler/internal/schedule"
	"medshift-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrInvalidDatetime     = errors.New("invalid datetime format, use RFC 3339")
	ErrInvalidShiftStatus  = errors.New("invalid shift status")
	ErrShiftNotOpen        = errors.New("shift already has an assigned employee")
	ErrEmployeeInactive    = errors.New("employee is not active")
	ErrEmployeeUnavailable = errors.New("employee is unavailable during the shift interval")
)

// ShiftConflictError reports an overlap with an existing shift of the same
// employee.
type ShiftConflictError struct {
	ConflictingShiftID uint
}

func (e *ShiftConflictError) Error() string {
	return fmt.Sprintf("shift overlaps with existing shift %d", e.ConflictingShiftID)
}

type ShiftUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	Get(ctx context.Context, id uint) (*dto.ShiftResponse, error)
	List(ctx context.Context, query url.Values) (*dto.ShiftListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	SetStatus(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateShiftStatusRequest) (*dto.ShiftResponse, error)
	Assign(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.AssignShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uint) error
}

type shiftUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	shiftRepo          repository.ShiftRepository
	employeeRepo       repository.EmployeeRepository
	locationRepo       repository.LocationRepository
	positionRepo       repository.PositionRepository
	unavailabilityRepo repository.UnavailabilityRepository
	auditService       service.AuditService
	statsService       service.StatsService
}

func NewShiftUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	shiftRepo repository.ShiftRepository,
	employeeRepo repository.EmployeeRepository,
	locationRepo repository.LocationRepository,
	positionRepo repository.PositionRepository,
	unavailabilityRepo repository.UnavailabilityRepository,
	auditService service.AuditService,
	statsService service.StatsService,
) ShiftUsecase {
	return &shiftUsecase{
		db:                 db,
		log:                log,
		shiftRepo:          shiftRepo,
		employeeRepo:       employeeRepo,
		locationRepo:       locationRepo,
		positionRepo:       positionRepo,
		unavailabilityRepo: unavailabilityRepo,
		auditService:       auditService,
		statsService:       statsService,
	}
}

func (u *shiftUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	start, err := time.Parse(time.RFC3339, req.StartDatetime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}
	end, err := time.Parse(time.RFC3339, req.EndDatetime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}

	interval := schedule.Interval{Start: start, End: end}
	if fieldErrs := schedule.ValidateShift(interval, req.BreakDuration); fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	status := entity.ShiftStatusDraft
	if req.Status != "" {
		status = entity.ShiftStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidShiftStatus
		}
	}

	// Validation and insert share one transaction so a concurrent create for
	// the same employee cannot slip an overlapping shift in between.
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	location, err := u.locationRepo.FindByID(tx, req.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	position, err := u.positionRepo.FindByID(tx, req.PositionID)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}

	shift := &entity.Shift{
		LocationID:    req.LocationID,
		PositionID:    req.PositionID,
		StartDatetime: start,
		EndDatetime:   end,
		BreakDuration: req.BreakDuration,
		Status:        status,
		Notes:         req.Notes,
		CreatedBy:     actorID,
	}

	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return nil, ErrEmployeeNotFound
		}
		if err := u.checkAssignable(tx, employeeID, interval, 0); err != nil {
			return nil, err
		}
		shift.EmployeeID = &employeeID
	}

	if err := u.shiftRepo.Create(tx, shift); err != nil {
		u.log.Warnf("Failed to create shift: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionShiftCreate, "shift", fmt.Sprint(shift.ID), map[string]interface{}{
		"start":  shift.StartDatetime,
		"end":    shift.EndDatetime,
		"status": shift.Status,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, shift.ID)
}

// checkAssignable verifies the employee exists, is active, has no committed
// shift overlapping the interval (excludeID skips the shift being edited) and
// is not marked unavailable for any part of it.
func (u *shiftUsecase) checkAssignable(tx *gorm.DB, employeeID uuid.UUID, interval schedule.Interval, excludeID uint) error {
	employee, err := u.employeeRepo.FindByID(tx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return ErrEmployeeNotFound
	}
	if !employee.IsActive {
		return ErrEmployeeInactive
	}

	committed, err := u.shiftRepo.FindCommittedByEmployee(tx, employeeID, excludeID)
	if err != nil {
		return err
	}
	existing := make([]schedule.OwnedInterval, len(committed))
	for i, s := range committed {
		existing[i] = schedule.OwnedInterval{
			ID:       s.ID,
			Interval: schedule.Interval{Start: s.StartDatetime, End: s.EndDatetime},
		}
	}
	if conflict, found := schedule.FindConflict(interval, existing); found {
		return &ShiftConflictError{ConflictingShiftID: conflict.ID}
	}

	unavailabilities, err := u.unavailabilityRepo.FindByEmployee(tx, employeeID, 0)
	if err != nil {
		return err
	}
	for _, blocked := range unavailabilities {
		if interval.Overlaps(schedule.Interval{Start: blocked.StartDatetime, End: blocked.EndDatetime}) {
			return ErrEmployeeUnavailable
		}
	}

	return nil
}

func (u *shiftUsecase) Get(ctx context.Context, id uint) (*dto.ShiftResponse, error) {
	shift, err := u.shiftRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find shift: %+v", err)
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	return converter.ShiftToResponse(shift), nil
}

func (u *shiftUsecase) List(ctx context.Context, query url.Values) (*dto.ShiftListResponse, error) {
	db := u.db.WithContext(ctx)

	set, err := u.buildFilterSet(db)
	if err != nil {
		return nil, err
	}
	set.Bind(query)

	shifts, err := u.shiftRepo.List(db, set.Scope())
	if err != nil {
		u.log.Warnf("Failed to list shifts: %+v", err)
		return nil, err
	}

	return &dto.ShiftListResponse{
		Shifts:  converter.ShiftsToResponses(shifts),
		Total:   len(shifts),
		Filters: set.Contexts(),
	}, nil
}

func (u *shiftUsecase) buildFilterSet(db *gorm.DB) (*filter.Set, error) {
	locations, err := u.locationRepo.List(db, nil)
	if err != nil {
		return nil, err
	}
	positions, err := u.positionRepo.List(db, nil)
	if err != nil {
		return nil, err
	}

	locationOptions := make([]filter.Option, len(locations))
	for i, l := range locations {
		locationOptions[i] = filter.Option{Value: fmt.Sprint(l.ID), Label: l.Name}
	}
	positionOptions := make([]filter.Option, len(positions))
	for i, p := range positions {
		positionOptions[i] = filter.Option{Value: fmt.Sprint(p.ID), Label: p.Title}
	}
	statusOptions := make([]filter.Option, len(entity.ShiftStatuses))
	for i, s := range entity.ShiftStatuses {
		statusOptions[i] = filter.Option{Value: string(s), Label: string(s)}
	}

	return filter.NewSet(
		filter.Custom("employee", "Employee", "text",
			func(raw string) bool {
				_, err := uuid.Parse(raw)
				return err == nil
			},
			func(raw string) filter.Condition {
				return filter.Condition{Query: "shifts.employee_id = ?", Args: []any{raw}}
			}),
		filter.Choice("location", "Location", "shifts.location_id", locationOptions),
		filter.Choice("position", "Position", "shifts.position_id", positionOptions),
		filter.Choice("status", "Status", "shifts.status", statusOptions),
		filter.NullCheck("assigned", "Assigned", "shifts.employee_id"),
		filter.Date("from", "Starting from", "shifts.start_datetime", filter.OpGte),
		filter.Date("until", "Starting until", "shifts.start_datetime", filter.OpLte),
	), nil
}

func (u *shiftUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	shift, err := u.shiftRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find shift: %+v", err)
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	if req.StartDatetime != "" {
		start, err := time.Parse(time.RFC3339, req.StartDatetime)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		shift.StartDatetime = start
	}
	if req.EndDatetime != "" {
		end, err := time.Parse(time.RFC3339, req.EndDatetime)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		shift.EndDatetime = end
	}
	if req.BreakDuration != nil {
		shift.BreakDuration = *req.BreakDuration
	}
	if req.LocationID != 0 {
		location, err := u.locationRepo.FindByID(tx, req.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, ErrLocationNotFound
		}
		shift.LocationID = req.LocationID
	}
	if req.PositionID != 0 {
		position, err := u.positionRepo.FindByID(tx, req.PositionID)
		if err != nil {
			return nil, err
		}
		if position == nil {
			return nil, ErrPositionNotFound
		}
		shift.PositionID = req.PositionID
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}
	if req.EmployeeID != nil {
		if *req.EmployeeID == "" {
			shift.EmployeeID = nil
		} else {
			employeeID, err := uuid.Parse(*req.EmployeeID)
			if err != nil {
				return nil, ErrEmployeeNotFound
			}
			shift.EmployeeID = &employeeID
		}
	}

	interval := schedule.Interval{Start: shift.StartDatetime, End: shift.EndDatetime}
	if fieldErrs := schedule.ValidateShift(interval, shift.BreakDuration); fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	if shift.EmployeeID != nil && !shift.IsCancelled() {
		if err := u.checkAssignable(tx, *shift.EmployeeID, interval, shift.ID); err != nil {
			return nil, err
		}
	}

	if err := u.shiftRepo.Update(tx, shift); err != nil {
		u.log.Warnf("Failed to update shift: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionShiftUpdate, "shift", fmt.Sprint(shift.ID), nil, map[string]interface{}{
		"start": shift.StartDatetime,
		"end":   shift.EndDatetime,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, shift.ID)
}

// SetStatus sets the workflow status. The enumeration is flat: any status may
// replace any other, matching how schedulers actually fix mistakes.
func (u *shiftUsecase) SetStatus(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateShiftStatusRequest) (*dto.ShiftResponse, error) {
	status := entity.ShiftStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidShiftStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	shift, err := u.shiftRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find shift: %+v", err)
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	oldStatus := shift.Status
	shift.Status = status

	if err := u.shiftRepo.Update(tx, shift); err != nil {
		u.log.Warnf("Failed to update shift status: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionShiftStatus, "shift", fmt.Sprint(shift.ID), oldStatus, status)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, shift.ID)
}

// Assign puts an employee on an open shift, running the same conflict and
// unavailability checks as shift creation.
func (u *shiftUsecase) Assign(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.AssignShiftRequest) (*dto.ShiftResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	shift, err := u.shiftRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find shift: %+v", err)
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}
	if !shift.IsOpen() {
		return nil, ErrShiftNotOpen
	}

	interval := schedule.Interval{Start: shift.StartDatetime, End: shift.EndDatetime}
	if err := u.checkAssignable(tx, employeeID, interval, shift.ID); err != nil {
		return nil, err
	}

	shift.EmployeeID = &employeeID
	if err := u.shiftRepo.Update(tx, shift); err != nil {
		u.log.Warnf("Failed to assign shift: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionShiftAssign, "shift", fmt.Sprint(shift.ID), nil, employeeID.String())

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, shift.ID)
}

func (u *shiftUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	shift, err := u.shiftRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find shift: %+v", err)
		return err
	}
	if shift == nil {
		return ErrShiftNotFound
	}

	affected, err := u.shiftRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete shift: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrShiftNotFound
	}

	u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionShiftDelete, "shift", fmt.Sprint(id), map[string]interface{}{
		"start": shift.StartDatetime,
		"end":   shift.EndDatetime,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.statsService.Invalidate(ctx)

	return nil
}
