package usecase

import (
	"context"
	"errors"
	"net/url"
	"time"

	"medshift-scheduler/internal/converter"
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
	"medshift-scheduler/internal/domain/repository"
	"medshift-scheduler/internal/filter"
	"medshift-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDepartmentCodeExists   = errors.New("department code or name already exists")
	ErrDepartmentHasEmployees = errors.New("department has active employees and cannot be deleted")
	ErrManagerNotFound        = errors.New("manager user not found")
)

type DepartmentUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	Get(ctx context.Context, id uint) (*dto.DepartmentResponse, error)
	List(ctx context.Context, query url.Values) (*dto.DepartmentListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uint) error
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	userRepo       repository.UserRepository
	auditService   service.AuditService
	statsService   service.StatsService
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	statsService service.StatsService,
) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		auditService:   auditService,
		statsService:   statsService,
	}
}

func (u *departmentUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department := &entity.Department{
		Name:           req.Name,
		Code:           req.Code,
		Description:    req.Description,
		PhoneExtension: req.PhoneExtension,
		IsActive:       true,
	}

	managerID, err := u.resolveManager(tx, req.ManagerID)
	if err != nil {
		return nil, err
	}
	department.ManagerID = managerID

	if department.EffectiveFrom, err = parseOptionalDate(req.EffectiveFrom); err != nil {
		return nil, err
	}
	if department.EffectiveTo, err = parseOptionalDate(req.EffectiveTo); err != nil {
		return nil, err
	}

	if err := u.departmentRepo.Create(tx, department); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "code") {
			return nil, ErrDepartmentCodeExists
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, department.ID)
}

func (u *departmentUsecase) Get(ctx context.Context, id uint) (*dto.DepartmentResponse, error) {
	db := u.db.WithContext(ctx)

	department, err := u.departmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	count, err := u.departmentRepo.CountActiveEmployees(db, id)
	if err != nil {
		u.log.Warnf("Failed to count department employees: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(department, count), nil
}

func (u *departmentUsecase) List(ctx context.Context, query url.Values) (*dto.DepartmentListResponse, error) {
	set := filter.NewSet(
		filter.Text("search", "Search", "").
			Across("departments.name", "departments.code", "departments.description").
			Placeholder("Name, code or description"),
		filter.Boolean("is_active", "Active", "departments.is_active"),
		filter.NullCheck("has_manager", "Has manager", "departments.manager_id"),
		filter.Date("effective_from", "Effective from", "departments.effective_from", filter.OpGte),
	)
	set.Bind(query)

	departments, err := u.departmentRepo.List(u.db.WithContext(ctx), set.Scope())
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Departments: converter.DepartmentsToResponses(departments),
		Total:       len(departments),
		Filters:     set.Contexts(),
	}, nil
}

func (u *departmentUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	if req.Name != "" {
		department.Name = req.Name
	}
	if req.Code != "" {
		department.Code = req.Code
	}
	if req.Description != "" {
		department.Description = req.Description
	}
	if req.PhoneExtension != "" {
		department.PhoneExtension = req.PhoneExtension
	}
	if req.ManagerID != "" {
		managerID, err := u.resolveManager(tx, req.ManagerID)
		if err != nil {
			return nil, err
		}
		department.ManagerID = managerID
	}
	if req.EffectiveFrom != "" {
		if department.EffectiveFrom, err = parseOptionalDate(req.EffectiveFrom); err != nil {
			return nil, err
		}
	}
	if req.EffectiveTo != "" {
		if department.EffectiveTo, err = parseOptionalDate(req.EffectiveTo); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := u.departmentRepo.Update(tx, department); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "code") {
			return nil, ErrDepartmentCodeExists
		}
		u.log.Warnf("Failed to update department: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, department.ID)
}

// Delete removes a department. Blocked while any active employee is still
// assigned to it.
func (u *departmentUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return err
	}
	if department == nil {
		return ErrDepartmentNotFound
	}

	count, err := u.departmentRepo.CountActiveEmployees(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count department employees: %+v", err)
		return err
	}
	if count > 0 {
		return ErrDepartmentHasEmployees
	}

	affected, err := u.departmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete department: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDepartmentNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.statsService.Invalidate(ctx)

	return nil
}

func (u *departmentUsecase) resolveManager(tx *gorm.DB, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	managerID, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrManagerNotFound
	}
	manager, err := u.userRepo.FindByID(tx, managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, ErrManagerNotFound
	}
	return &managerID, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &parsed, nil
}
