package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medshift-scheduler/internal/converter"
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
	"medshift-scheduler/internal/domain/repository"
	"medshift-scheduler/internal/schedule"
	"medshift-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound   = errors.New("shift template not found")
	ErrTemplateInactive   = errors.New("shift template is not active")
	ErrInvalidTimeFormat  = errors.New("invalid time format, use HH:MM")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrGenerationTooLarge = errors.New("date range exceeds the generation limit")
)

// maxGenerationDays caps one generation run.
const maxGenerationDays = 92

type ShiftTemplateUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateShiftTemplateRequest) (*dto.ShiftTemplateResponse, error)
	Get(ctx context.Context, id uint) (*dto.ShiftTemplateResponse, error)
	List(ctx context.Context) (*dto.ShiftTemplateListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateShiftTemplateRequest) (*dto.ShiftTemplateResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uint) error
	GenerateShifts(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.GenerateShiftsRequest) (*dto.GenerateShiftsResponse, error)
}

type shiftTemplateUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	templateRepo       repository.ShiftTemplateRepository
	shiftRepo          repository.ShiftRepository
	employeeRepo       repository.EmployeeRepository
	locationRepo       repository.LocationRepository
	positionRepo       repository.PositionRepository
	unavailabilityRepo repository.UnavailabilityRepository
	auditService       service.AuditService
	statsService       service.StatsService
}

func NewShiftTemplateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	templateRepo repository.ShiftTemplateRepository,
	shiftRepo repository.ShiftRepository,
	employeeRepo repository.EmployeeRepository,
	locationRepo repository.LocationRepository,
	positionRepo repository.PositionRepository,
	unavailabilityRepo repository.UnavailabilityRepository,
	auditService service.AuditService,
	statsService service.StatsService,
) ShiftTemplateUsecase {
	return &shiftTemplateUsecase{
		db:                 db,
		log:                log,
		templateRepo:       templateRepo,
		shiftRepo:          shiftRepo,
		employeeRepo:       employeeRepo,
		locationRepo:       locationRepo,
		positionRepo:       positionRepo,
		unavailabilityRepo: unavailabilityRepo,
		auditService:       auditService,
		statsService:       statsService,
	}
}

func (u *shiftTemplateUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateShiftTemplateRequest) (*dto.ShiftTemplateResponse, error) {
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", req.EndTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

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

	days := make([]interface{}, len(req.DaysOfWeek))
	for i, d := range req.DaysOfWeek {
		days[i] = float64(d)
	}

	template := &entity.ShiftTemplate{
		Name:          req.Name,
		LocationID:    req.LocationID,
		PositionID:    req.PositionID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		BreakDuration: req.BreakDuration,
		DaysOfWeek:    entity.JSON{"days": days},
		IsActive:      true,
		CreatedBy:     actorID,
	}

	if err := u.templateRepo.Create(tx, template); err != nil {
		u.log.Warnf("Failed to create shift template: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, template.ID)
}

func (u *shiftTemplateUsecase) Get(ctx context.Context, id uint) (*dto.ShiftTemplateResponse, error) {
	template, err := u.templateRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find shift template: %+v", err)
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	return converter.ShiftTemplateToResponse(template), nil
}

func (u *shiftTemplateUsecase) List(ctx context.Context) (*dto.ShiftTemplateListResponse, error) {
	templates, err := u.templateRepo.List(u.db.WithContext(ctx), nil)
	if err != nil {
		u.log.Warnf("Failed to list shift templates: %+v", err)
		return nil, err
	}

	return &dto.ShiftTemplateListResponse{
		Templates: converter.ShiftTemplatesToResponses(templates),
		Total:     len(templates),
	}, nil
}

func (u *shiftTemplateUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateShiftTemplateRequest) (*dto.ShiftTemplateResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	template, err := u.templateRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find shift template: %+v", err)
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	if req.Name != "" {
		template.Name = req.Name
	}
	if req.LocationID != 0 {
		location, err := u.locationRepo.FindByID(tx, req.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, ErrLocationNotFound
		}
		template.LocationID = req.LocationID
	}
	if req.PositionID != 0 {
		position, err := u.positionRepo.FindByID(tx, req.PositionID)
		if err != nil {
			return nil, err
		}
		if position == nil {
			return nil, ErrPositionNotFound
		}
		template.PositionID = req.PositionID
	}
	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		template.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		if _, err := time.Parse("15:04", req.EndTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		template.EndTime = req.EndTime
	}
	if req.BreakDuration != nil {
		template.BreakDuration = *req.BreakDuration
	}
	if len(req.DaysOfWeek) > 0 {
		days := make([]interface{}, len(req.DaysOfWeek))
		for i, d := range req.DaysOfWeek {
			days[i] = float64(d)
		}
		template.DaysOfWeek = entity.JSON{"days": days}
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := u.templateRepo.Update(tx, template); err != nil {
		u.log.Warnf("Failed to update shift template: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, template.ID)
}

func (u *shiftTemplateUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uint) error {
	affected, err := u.templateRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete shift template: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// GenerateShifts materializes the template into draft shifts over a date
// range. Days the template does not cover are passed over silently; days
// where the requested employee has a conflict or is unavailable are reported
// in the skipped list. A template whose end time is not after its start time
// is an overnight shift ending the next day.
func (u *shiftTemplateUsecase) GenerateShifts(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.GenerateShiftsRequest) (*dto.GenerateShiftsResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}
	if endDate.Sub(startDate) > maxGenerationDays*24*time.Hour {
		return nil, ErrGenerationTooLarge
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		parsed, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return nil, ErrEmployeeNotFound
		}
		employeeID = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	template, err := u.templateRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find shift template: %+v", err)
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	if !template.IsActive {
		return nil, ErrTemplateInactive
	}

	startClock, err := time.Parse("15:04", template.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	endClock, err := time.Parse("15:04", template.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	if employeeID != nil {
		employee, err := u.employeeRepo.FindByID(tx, *employeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, ErrEmployeeNotFound
		}
		if !employee.IsActive {
			return nil, ErrEmployeeInactive
		}
	}

	var created []entity.Shift
	var skipped []dto.SkippedDate

	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		if !template.AppliesOn(day.Weekday()) {
			continue
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)
		end := time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}

		shift := &entity.Shift{
			LocationID:    template.LocationID,
			PositionID:    template.PositionID,
			StartDatetime: start,
			EndDatetime:   end,
			BreakDuration: template.BreakDuration,
			Status:        entity.ShiftStatusDraft,
			CreatedBy:     actorID,
		}

		if employeeID != nil {
			interval := schedule.Interval{Start: start, End: end}
			if err := u.checkDayAssignable(tx, *employeeID, interval); err != nil {
				skipped = append(skipped, dto.SkippedDate{
					Date:   day.Format("2006-01-02"),
					Reason: err.Error(),
				})
				continue
			}
			shift.EmployeeID = employeeID
		}

		if err := u.shiftRepo.Create(tx, shift); err != nil {
			u.log.Warnf("Failed to create generated shift: %+v", err)
			return nil, err
		}
		created = append(created, *shift)
	}

	u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionShiftCreate, "shift_template", fmt.Sprint(template.ID), map[string]interface{}{
		"generated": len(created),
		"skipped":   len(skipped),
		"from":      req.StartDate,
		"to":        req.EndDate,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	responses := make([]dto.ShiftResponse, len(created))
	for i := range created {
		full, err := u.shiftRepo.FindByID(u.db.WithContext(ctx), created[i].ID)
		if err != nil || full == nil {
			responses[i] = *converter.ShiftToResponse(&created[i])
			continue
		}
		responses[i] = *converter.ShiftToResponse(full)
	}

	return &dto.GenerateShiftsResponse{
		Created: responses,
		Skipped: skipped,
	}, nil
}

// checkDayAssignable mirrors the shift assignment checks but reports the
// failure as a skip reason instead of aborting the whole run.
func (u *shiftTemplateUsecase) checkDayAssignable(tx *gorm.DB, employeeID uuid.UUID, interval schedule.Interval) error {
	committed, err := u.shiftRepo.FindCommittedByEmployee(tx, employeeID, 0)
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
