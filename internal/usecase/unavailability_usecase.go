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
	ErrUnavailabilityNotFound = errors.New("unavailability not found")
	ErrInvalidReason          = errors.New("invalid unavailability reason")
)

// UnavailabilityConflictError reports an overlap with an existing
// unavailability entry of the same employee.
type UnavailabilityConflictError struct {
	ConflictingID uint
}

func (e *UnavailabilityConflictError) Error() string {
	return fmt.Sprintf("interval overlaps with existing unavailability %d", e.ConflictingID)
}

type UnavailabilityUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateUnavailabilityRequest) (*dto.UnavailabilityResponse, error)
	Get(ctx context.Context, id uint) (*dto.UnavailabilityResponse, error)
	List(ctx context.Context, query url.Values) (*dto.UnavailabilityListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateUnavailabilityRequest) (*dto.UnavailabilityResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uint) error
}

type unavailabilityUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	unavailabilityRepo repository.UnavailabilityRepository
	employeeRepo       repository.EmployeeRepository
	auditService       service.AuditService
}

func NewUnavailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	unavailabilityRepo repository.UnavailabilityRepository,
	employeeRepo repository.EmployeeRepository,
	auditService service.AuditService,
) UnavailabilityUsecase {
	return &unavailabilityUsecase{
		db:                 db,
		log:                log,
		unavailabilityRepo: unavailabilityRepo,
		employeeRepo:       employeeRepo,
		auditService:       auditService,
	}
}

func (u *unavailabilityUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateUnavailabilityRequest) (*dto.UnavailabilityResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	start, err := time.Parse(time.RFC3339, req.StartDatetime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}
	end, err := time.Parse(time.RFC3339, req.EndDatetime)
	if err != nil {
		return nil, ErrInvalidDatetime
	}

	interval := schedule.Interval{Start: start, End: end}
	if fieldErrs := schedule.ValidateInterval(interval); fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	reason := entity.UnavailabilityReason(req.Reason)
	if !reason.Valid() {
		return nil, ErrInvalidReason
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.employeeRepo.FindByID(tx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	if err := u.checkOverlap(tx, employeeID, interval, 0); err != nil {
		return nil, err
	}

	unavailability := &entity.Unavailability{
		EmployeeID:        employeeID,
		StartDatetime:     start,
		EndDatetime:       end,
		Reason:            reason,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: entity.JSON(req.RecurrencePattern),
		Notes:             req.Notes,
	}

	if err := u.unavailabilityRepo.Create(tx, unavailability); err != nil {
		u.log.Warnf("Failed to create unavailability: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, unavailability.ID)
}

// checkOverlap rejects an interval that overlaps any other unavailability of
// the same employee, excluding excludeID when editing.
func (u *unavailabilityUsecase) checkOverlap(tx *gorm.DB, employeeID uuid.UUID, interval schedule.Interval, excludeID uint) error {
	existing, err := u.unavailabilityRepo.FindByEmployee(tx, employeeID, excludeID)
	if err != nil {
		return err
	}

	intervals := make([]schedule.OwnedInterval, len(existing))
	for i, entry := range existing {
		intervals[i] = schedule.OwnedInterval{
			ID:       entry.ID,
			Interval: schedule.Interval{Start: entry.StartDatetime, End: entry.EndDatetime},
		}
	}

	if conflict, found := schedule.FindConflict(interval, intervals); found {
		return &UnavailabilityConflictError{ConflictingID: conflict.ID}
	}
	return nil
}

func (u *unavailabilityUsecase) Get(ctx context.Context, id uint) (*dto.UnavailabilityResponse, error) {
	unavailability, err := u.unavailabilityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find unavailability: %+v", err)
		return nil, err
	}
	if unavailability == nil {
		return nil, ErrUnavailabilityNotFound
	}

	return converter.UnavailabilityToResponse(unavailability), nil
}

func (u *unavailabilityUsecase) List(ctx context.Context, query url.Values) (*dto.UnavailabilityListResponse, error) {
	reasonOptions := make([]filter.Option, len(entity.UnavailabilityReasons))
	for i, r := range entity.UnavailabilityReasons {
		reasonOptions[i] = filter.Option{Value: string(r), Label: string(r)}
	}

	set := filter.NewSet(
		filter.Custom("employee", "Employee", "text",
			func(raw string) bool {
				_, err := uuid.Parse(raw)
				return err == nil
			},
			func(raw string) filter.Condition {
				return filter.Condition{Query: "unavailabilities.employee_id = ?", Args: []any{raw}}
			}),
		filter.Choice("reason", "Reason", "unavailabilities.reason", reasonOptions),
		filter.Boolean("is_recurring", "Recurring", "unavailabilities.is_recurring"),
		filter.Date("from", "Starting from", "unavailabilities.start_datetime", filter.OpGte),
		filter.Date("until", "Starting until", "unavailabilities.start_datetime", filter.OpLte),
	)
	set.Bind(query)

	unavailabilities, err := u.unavailabilityRepo.List(u.db.WithContext(ctx), set.Scope())
	if err != nil {
		u.log.Warnf("Failed to list unavailabilities: %+v", err)
		return nil, err
	}

	return &dto.UnavailabilityListResponse{
		Unavailabilities: converter.UnavailabilitiesToResponses(unavailabilities),
		Total:            len(unavailabilities),
		Filters:          set.Contexts(),
	}, nil
}

func (u *unavailabilityUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateUnavailabilityRequest) (*dto.UnavailabilityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	unavailability, err := u.unavailabilityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find unavailability: %+v", err)
		return nil, err
	}
	if unavailability == nil {
		return nil, ErrUnavailabilityNotFound
	}

	if req.StartDatetime != "" {
		start, err := time.Parse(time.RFC3339, req.StartDatetime)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		unavailability.StartDatetime = start
	}
	if req.EndDatetime != "" {
		end, err := time.Parse(time.RFC3339, req.EndDatetime)
		if err != nil {
			return nil, ErrInvalidDatetime
		}
		unavailability.EndDatetime = end
	}
	if req.Reason != "" {
		reason := entity.UnavailabilityReason(req.Reason)
		if !reason.Valid() {
			return nil, ErrInvalidReason
		}
		unavailability.Reason = reason
	}
	if req.IsRecurring != nil {
		unavailability.IsRecurring = *req.IsRecurring
	}
	if req.RecurrencePattern != nil {
		unavailability.RecurrencePattern = entity.JSON(req.RecurrencePattern)
	}
	if req.Notes != nil {
		unavailability.Notes = *req.Notes
	}

	interval := schedule.Interval{Start: unavailability.StartDatetime, End: unavailability.EndDatetime}
	if fieldErrs := schedule.ValidateInterval(interval); fieldErrs.HasErrors() {
		return nil, fieldErrs
	}
	if err := u.checkOverlap(tx, unavailability.EmployeeID, interval, unavailability.ID); err != nil {
		return nil, err
	}

	if err := u.unavailabilityRepo.Update(tx, unavailability); err != nil {
		u.log.Warnf("Failed to update unavailability: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, unavailability.ID)
}

func (u *unavailabilityUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uint) error {
	affected, err := u.unavailabilityRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete unavailability: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrUnavailabilityNotFound
	}
	return nil
}
