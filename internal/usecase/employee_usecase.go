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
	"medshift-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrPositionNotFound        = errors.New("position not found")
	ErrLocationNotFound        = errors.New("location not found")
	ErrInvalidDecimal          = errors.New("invalid decimal value")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive = errors.New("employee is already deactivated")
	ErrEmployeeNumberTaken     = errors.New("employee number already taken")
)

type EmployeeUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	List(ctx context.Context, query url.Values) (*dto.EmployeeListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Deactivate(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.DeactivateEmployeeRequest) (*dto.EmployeeResponse, error)
	Reactivate(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error
}

type employeeUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	positionRepo   repository.PositionRepository
	locationRepo   repository.LocationRepository
	auditService   service.AuditService
	statsService   service.StatsService
}

func NewEmployeeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
	positionRepo repository.PositionRepository,
	locationRepo repository.LocationRepository,
	auditService service.AuditService,
	statsService service.StatsService,
) EmployeeUsecase {
	return &employeeUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		locationRepo:   locationRepo,
		auditService:   auditService,
		statsService:   statsService,
	}
}

func (u *employeeUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hourlyRate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil {
		return nil, ErrInvalidDecimal
	}

	weeklyHours := decimal.NewFromInt(42)
	if req.WeeklyHours != "" {
		weeklyHours, err = decimal.NewFromString(req.WeeklyHours)
		if err != nil {
			return nil, ErrInvalidDecimal
		}
	}

	if err := u.checkReferences(tx, req.DepartmentID, req.PositionID, req.LocationID); err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		RoleID:    entity.RoleIDStaff,
		IsActive:  true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	number, err := u.nextEmployeeNumber(tx)
	if err != nil {
		u.log.Warnf("Failed to generate employee number: %+v", err)
		return nil, err
	}

	employee := &entity.Employee{
		UserID:         user.ID,
		EmployeeNumber: number,
		DepartmentID:   req.DepartmentID,
		PositionID:     req.PositionID,
		LocationID:     req.LocationID,
		EmploymentType: entity.EmploymentType(req.EmploymentType),
		HireDate:       hireDate,
		HourlyRate:     hourlyRate,
		WeeklyHours:    weeklyHours,
		IsActive:       true,

		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
		Notes:                        req.Notes,
	}

	if err := u.employeeRepo.Create(tx, employee); err != nil {
		// A concurrent create can claim the probed number first; the unique
		// index on employee_number is the backstop.
		if isDuplicateKeyError(err, "employee_number") {
			return nil, ErrEmployeeNumberTaken
		}
		u.log.Warnf("Failed to create employee: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionEmployeeCreate, "employee", employee.ID.String(), employee.EmployeeNumber)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, employee.ID)
}

// nextEmployeeNumber generates EMP-YYYYMMDD-NNN, where NNN is the first free
// sequence number for today. The probe is not race-free at read committed;
// Create maps the unique-index violation when two transactions pick the same
// number.
func (u *employeeUsecase) nextEmployeeNumber(tx *gorm.DB) (string, error) {
	prefix := "EMP-" + time.Now().Format("20060102")
	for seq := 1; seq <= 999; seq++ {
		candidate := fmt.Sprintf("%s-%03d", prefix, seq)
		existing, err := u.employeeRepo.FindByNumber(tx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("employee number space exhausted for prefix %s", prefix)
}

func (u *employeeUsecase) checkReferences(tx *gorm.DB, departmentID, positionID, locationID uint) error {
	if departmentID != 0 {
		department, err := u.departmentRepo.FindByID(tx, departmentID)
		if err != nil {
			return err
		}
		if department == nil {
			return ErrDepartmentNotFound
		}
	}
	if positionID != 0 {
		position, err := u.positionRepo.FindByID(tx, positionID)
		if err != nil {
			return err
		}
		if position == nil {
			return ErrPositionNotFound
		}
	}
	if locationID != 0 {
		location, err := u.locationRepo.FindByID(tx, locationID)
		if err != nil {
			return err
		}
		if location == nil {
			return ErrLocationNotFound
		}
	}
	return nil
}

func (u *employeeUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := u.employeeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	return converter.EmployeeToResponse(employee), nil
}

func (u *employeeUsecase) List(ctx context.Context, query url.Values) (*dto.EmployeeListResponse, error) {
	db := u.db.WithContext(ctx)

	set, err := u.buildFilterSet(db)
	if err != nil {
		return nil, err
	}
	set.Bind(query)

	employees, err := u.employeeRepo.List(db, set.Scope())
	if err != nil {
		u.log.Warnf("Failed to list employees: %+v", err)
		return nil, err
	}

	return &dto.EmployeeListResponse{
		Employees: converter.EmployeesToResponses(employees),
		Total:     len(employees),
		Filters:   set.Contexts(),
	}, nil
}

// buildFilterSet declares the employee list filters. Choice options for
// departments, positions and locations come from the live tables so the
// rendered form always offers current values.
func (u *employeeUsecase) buildFilterSet(db *gorm.DB) (*filter.Set, error) {
	departments, err := u.departmentRepo.List(db, nil)
	if err != nil {
		return nil, err
	}
	positions, err := u.positionRepo.List(db, nil)
	if err != nil {
		return nil, err
	}
	locations, err := u.locationRepo.List(db, nil)
	if err != nil {
		return nil, err
	}

	departmentOptions := make([]filter.Option, len(departments))
	for i, d := range departments {
		departmentOptions[i] = filter.Option{Value: fmt.Sprint(d.ID), Label: d.Name}
	}
	positionOptions := make([]filter.Option, len(positions))
	for i, p := range positions {
		positionOptions[i] = filter.Option{Value: fmt.Sprint(p.ID), Label: p.Title}
	}
	locationOptions := make([]filter.Option, len(locations))
	for i, l := range locations {
		locationOptions[i] = filter.Option{Value: fmt.Sprint(l.ID), Label: l.Name}
	}

	typeOptions := make([]filter.Option, len(entity.EmploymentTypes))
	for i, t := range entity.EmploymentTypes {
		typeOptions[i] = filter.Option{Value: string(t), Label: t.Label()}
	}

	return filter.NewSet(
		filter.Text("search", "Search", "").
			Across("users.first_name", "users.last_name", "users.email", "employees.employee_number").
			Placeholder("Name, email or employee number"),
		filter.Choice("department", "Department", "employees.department_id", departmentOptions),
		filter.Choice("position", "Position", "employees.position_id", positionOptions),
		filter.Choice("location", "Location", "employees.location_id", locationOptions),
		filter.Choice("employment_type", "Employment type", "employees.employment_type", typeOptions),
		filter.Boolean("is_active", "Active", "employees.is_active"),
		filter.Date("hired_after", "Hired after", "employees.hire_date", filter.OpGte),
		filter.Date("hired_before", "Hired before", "employees.hire_date", filter.OpLte),
	), nil
}

func (u *employeeUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.employeeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	old := map[string]interface{}{
		"department_id":   employee.DepartmentID,
		"position_id":     employee.PositionID,
		"location_id":     employee.LocationID,
		"employment_type": employee.EmploymentType,
		"hourly_rate":     employee.HourlyRate.String(),
	}

	if err := u.checkReferences(tx, req.DepartmentID, req.PositionID, req.LocationID); err != nil {
		return nil, err
	}

	userChanged := false
	if req.FirstName != "" {
		employee.User.FirstName = req.FirstName
		userChanged = true
	}
	if req.LastName != "" {
		employee.User.LastName = req.LastName
		userChanged = true
	}
	if req.Phone != "" {
		employee.User.Phone = req.Phone
		userChanged = true
	}
	if userChanged {
		if err := u.userRepo.Update(tx, &employee.User); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if req.DepartmentID != 0 {
		employee.DepartmentID = req.DepartmentID
	}
	if req.PositionID != 0 {
		employee.PositionID = req.PositionID
	}
	if req.LocationID != 0 {
		employee.LocationID = req.LocationID
	}
	if req.EmploymentType != "" {
		employee.EmploymentType = entity.EmploymentType(req.EmploymentType)
	}
	if req.HourlyRate != "" {
		rate, err := decimal.NewFromString(req.HourlyRate)
		if err != nil {
			return nil, ErrInvalidDecimal
		}
		employee.HourlyRate = rate
	}
	if req.WeeklyHours != "" {
		hours, err := decimal.NewFromString(req.WeeklyHours)
		if err != nil {
			return nil, ErrInvalidDecimal
		}
		employee.WeeklyHours = hours
	}
	if req.EmergencyContactName != "" {
		employee.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != "" {
		employee.EmergencyContactPhone = req.EmergencyContactPhone
	}
	if req.EmergencyContactRelationship != "" {
		employee.EmergencyContactRelationship = req.EmergencyContactRelationship
	}
	if req.Notes != "" {
		employee.Notes = req.Notes
	}

	if err := u.employeeRepo.Update(tx, employee); err != nil {
		u.log.Warnf("Failed to update employee: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionEmployeeUpdate, "employee", employee.ID.String(), old, map[string]interface{}{
		"department_id":   employee.DepartmentID,
		"position_id":     employee.PositionID,
		"location_id":     employee.LocationID,
		"employment_type": employee.EmploymentType,
		"hourly_rate":     employee.HourlyRate.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, employee.ID)
}

func (u *employeeUsecase) Deactivate(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req *dto.DeactivateEmployeeRequest) (*dto.EmployeeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.employeeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	if !employee.IsActive {
		return nil, ErrEmployeeAlreadyInactive
	}

	var terminationDate time.Time
	if req.TerminationDate != "" {
		terminationDate, err = time.Parse("2006-01-02", req.TerminationDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}
	employee.Deactivate(terminationDate)

	if err := u.employeeRepo.Update(tx, employee); err != nil {
		u.log.Warnf("Failed to deactivate employee: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionEmployeeDeactivate, "employee", employee.ID.String(), true, false)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, employee.ID)
}

func (u *employeeUsecase) Reactivate(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*dto.EmployeeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.employeeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	if employee.IsActive {
		return nil, ErrEmployeeAlreadyActive
	}

	employee.Reactivate()

	if err := u.employeeRepo.Update(tx, employee); err != nil {
		u.log.Warnf("Failed to reactivate employee: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionEmployeeReactivate, "employee", employee.ID.String(), false, true)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, employee.ID)
}

func (u *employeeUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.employeeRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee: %+v", err)
		return err
	}
	if employee == nil {
		return ErrEmployeeNotFound
	}

	affected, err := u.employeeRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete employee: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionEmployeeDelete, "employee", id.String(), employee.EmployeeNumber)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.statsService.Invalidate(ctx)

	return nil
}
