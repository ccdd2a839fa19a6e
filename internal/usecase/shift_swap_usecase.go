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
	ErrSwapNotFound          = errors.New("swap request not found")
	ErrSwapNotPending        = errors.New("swap request is not pending")
	ErrSwapNotAccepted       = errors.New("swap request has not been accepted by the target employee")
	ErrSwapSelfTarget        = errors.New("cannot request a swap with yourself")
	ErrSwapNotShiftOwner     = errors.New("requesting employee is not assigned to this shift")
	ErrSwapNotTargetEmployee = errors.New("only the target employee can respond to this request")
)

type ShiftSwapUsecase interface {
	Create(ctx context.Context, requesterUserID uuid.UUID, req *dto.CreateSwapRequest) (*dto.ShiftSwapResponse, error)
	Get(ctx context.Context, id uint) (*dto.ShiftSwapResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) (*dto.ShiftSwapListResponse, error)
	ListPending(ctx context.Context) (*dto.ShiftSwapListResponse, error)
	Respond(ctx context.Context, responderUserID uuid.UUID, id uint, req *dto.RespondSwapRequest) (*dto.ShiftSwapResponse, error)
	Review(ctx context.Context, reviewerID uuid.UUID, id uint, req *dto.ReviewSwapRequest) (*dto.ShiftSwapResponse, error)
}

type shiftSwapUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	swapRepo           repository.ShiftSwapRepository
	shiftRepo          repository.ShiftRepository
	employeeRepo       repository.EmployeeRepository
	unavailabilityRepo repository.UnavailabilityRepository
	auditService       service.AuditService
}

func NewShiftSwapUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	swapRepo repository.ShiftSwapRepository,
	shiftRepo repository.ShiftRepository,
	employeeRepo repository.EmployeeRepository,
	unavailabilityRepo repository.UnavailabilityRepository,
	auditService service.AuditService,
) ShiftSwapUsecase {
	return &shiftSwapUsecase{
		db:                 db,
		log:                log,
		swapRepo:           swapRepo,
		shiftRepo:          shiftRepo,
		employeeRepo:       employeeRepo,
		unavailabilityRepo: unavailabilityRepo,
		auditService:       auditService,
	}
}

// Create opens a swap request. The requester must own the shift and the
// target must be a different, active employee.
func (u *shiftSwapUsecase) Create(ctx context.Context, requesterUserID uuid.UUID, req *dto.CreateSwapRequest) (*dto.ShiftSwapResponse, error) {
	targetID, err := uuid.Parse(req.TargetEmployeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	requester, err := u.employeeRepo.FindByUserID(tx, requesterUserID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, ErrEmployeeNotFound
	}

	if targetID == requester.ID {
		return nil, ErrSwapSelfTarget
	}

	target, err := u.employeeRepo.FindByID(tx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrEmployeeNotFound
	}
	if !target.IsActive {
		return nil, ErrEmployeeInactive
	}

	shift, err := u.shiftRepo.FindByID(tx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}
	if shift.EmployeeID == nil || *shift.EmployeeID != requester.ID {
		return nil, ErrSwapNotShiftOwner
	}

	request := &entity.ShiftSwapRequest{
		ShiftID:              req.ShiftID,
		RequestingEmployeeID: requester.ID,
		TargetEmployeeID:     targetID,
		Status:               entity.SwapStatusPending,
		RequestMessage:       req.RequestMessage,
	}

	if err := u.swapRepo.Create(tx, request); err != nil {
		u.log.Warnf("Failed to create swap request: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, request.ID)
}

func (u *shiftSwapUsecase) Get(ctx context.Context, id uint) (*dto.ShiftSwapResponse, error) {
	request, err := u.swapRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find swap request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrSwapNotFound
	}

	return converter.SwapToResponse(request), nil
}

func (u *shiftSwapUsecase) ListMine(ctx context.Context, userID uuid.UUID) (*dto.ShiftSwapListResponse, error) {
	db := u.db.WithContext(ctx)

	employee, err := u.employeeRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	requests, err := u.swapRepo.ListByEmployee(db, employee.ID)
	if err != nil {
		u.log.Warnf("Failed to list swap requests: %+v", err)
		return nil, err
	}

	return &dto.ShiftSwapListResponse{
		Requests: converter.SwapsToResponses(requests),
		Total:    len(requests),
	}, nil
}

func (u *shiftSwapUsecase) ListPending(ctx context.Context) (*dto.ShiftSwapListResponse, error) {
	requests, err := u.swapRepo.ListPending(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pending swap requests: %+v", err)
		return nil, err
	}

	return &dto.ShiftSwapListResponse{
		Requests: converter.SwapsToResponses(requests),
		Total:    len(requests),
	}, nil
}

// Respond records the target employee's acceptance or decline.
func (u *shiftSwapUsecase) Respond(ctx context.Context, responderUserID uuid.UUID, id uint, req *dto.RespondSwapRequest) (*dto.ShiftSwapResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.swapRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find swap request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrSwapNotFound
	}
	if !request.IsPending() {
		return nil, ErrSwapNotPending
	}

	responder, err := u.employeeRepo.FindByUserID(tx, responderUserID)
	if err != nil {
		return nil, err
	}
	if responder == nil || responder.ID != request.TargetEmployeeID {
		return nil, ErrSwapNotTargetEmployee
	}

	if req.Accept {
		request.Status = entity.SwapStatusAccepted
	} else {
		request.Status = entity.SwapStatusDeclined
	}
	request.ResponseMessage = req.ResponseMessage

	if err := u.swapRepo.Update(tx, request); err != nil {
		u.log.Warnf("Failed to update swap request: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, request.ID)
}

// Review is the manager decision. Approval re-runs the overlap and
// unavailability checks for the target employee before reassigning the shift;
// the schedule may have changed since the request was accepted.
func (u *shiftSwapUsecase) Review(ctx context.Context, reviewerID uuid.UUID, id uint, req *dto.ReviewSwapRequest) (*dto.ShiftSwapResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.swapRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find swap request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrSwapNotFound
	}
	if !request.IsAccepted() {
		return nil, ErrSwapNotAccepted
	}

	now := time.Now()
	request.ApprovedBy = &reviewerID
	request.ApprovedAt = &now
	request.ResponseMessage = req.ResponseMessage

	if !req.Approve {
		request.Status = entity.SwapStatusRejected
		if err := u.swapRepo.Update(tx, request); err != nil {
			u.log.Warnf("Failed to update swap request: %+v", err)
			return nil, err
		}
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return nil, err
		}
		return u.Get(ctx, request.ID)
	}

	shift, err := u.shiftRepo.FindByID(tx, request.ShiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	interval := schedule.Interval{Start: shift.StartDatetime, End: shift.EndDatetime}

	committed, err := u.shiftRepo.FindCommittedByEmployee(tx, request.TargetEmployeeID, shift.ID)
	if err != nil {
		return nil, err
	}
	existing := make([]schedule.OwnedInterval, len(committed))
	for i, s := range committed {
		existing[i] = schedule.OwnedInterval{
			ID:       s.ID,
			Interval: schedule.Interval{Start: s.StartDatetime, End: s.EndDatetime},
		}
	}
	if conflict, found := schedule.FindConflict(interval, existing); found {
		return nil, &ShiftConflictError{ConflictingShiftID: conflict.ID}
	}

	unavailabilities, err := u.unavailabilityRepo.FindByEmployee(tx, request.TargetEmployeeID, 0)
	if err != nil {
		return nil, err
	}
	for _, blocked := range unavailabilities {
		if interval.Overlaps(schedule.Interval{Start: blocked.StartDatetime, End: blocked.EndDatetime}) {
			return nil, ErrEmployeeUnavailable
		}
	}

	shift.EmployeeID = &request.TargetEmployeeID
	if err := u.shiftRepo.Update(tx, shift); err != nil {
		u.log.Warnf("Failed to reassign shift: %+v", err)
		return nil, err
	}

	request.Status = entity.SwapStatusApproved
	if err := u.swapRepo.Update(tx, request); err != nil {
		u.log.Warnf("Failed to update swap request: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &reviewerID, entity.AuditActionSwapApprove, "shift_swap_request", fmt.Sprint(request.ID),
		request.RequestingEmployeeID.String(), request.TargetEmployeeID.String())

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx, request.ID)
}
