package usecase

import (
	"context"
	"errors"
	"net/url"

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
	ErrLocationCodeExists      = errors.New("location code or name already exists")
	ErrLocationAlreadyInactive = errors.New("location is already deactivated")
)

type LocationUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	Get(ctx context.Context, id uint) (*dto.LocationResponse, error)
	List(ctx context.Context, query url.Values) (*dto.LocationListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	Deactivate(ctx context.Context, actorID *uuid.UUID, id uint) (*dto.LocationResponse, error)
}

type locationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
	statsService service.StatsService
}

func NewLocationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	statsService service.StatsService,
) LocationUsecase {
	return &locationUsecase{
		db:           db,
		log:          log,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		auditService: auditService,
		statsService: statsService,
	}
}

func (u *locationUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	location := &entity.Location{
		Name:       req.Name,
		Code:       req.Code,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		Email:      req.Email,
		Notes:      req.Notes,
		IsActive:   true,
	}
	if location.Country == "" {
		location.Country = "CH"
	}

	if err := u.applyDecimals(location, req.LaborBudget, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	if req.ManagerID != "" {
		managerID, err := uuid.Parse(req.ManagerID)
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
		location.ManagerID = &managerID
	}

	if err := u.locationRepo.Create(tx, location); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "code") {
			return nil, ErrLocationCodeExists
		}
		u.log.Warnf("Failed to create location: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, location.ID)
}

func (u *locationUsecase) Get(ctx context.Context, id uint) (*dto.LocationResponse, error) {
	db := u.db.WithContext(ctx)

	location, err := u.locationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	count, err := u.locationRepo.CountActiveEmployees(db, id)
	if err != nil {
		u.log.Warnf("Failed to count location employees: %+v", err)
		return nil, err
	}

	return converter.LocationToResponse(location, count), nil
}

func (u *locationUsecase) List(ctx context.Context, query url.Values) (*dto.LocationListResponse, error) {
	set := filter.NewSet(
		filter.Text("search", "Search", "").
			Across("locations.name", "locations.code", "locations.city").
			Placeholder("Name, code or city"),
		filter.Text("city", "City", "locations.city"),
		filter.Boolean("is_active", "Active", "locations.is_active"),
		filter.NullCheck("has_manager", "Has manager", "locations.manager_id"),
		filter.Number("min_budget", "Labor budget at least", "locations.labor_budget", filter.OpGte).Bounds(0, 10000000),
	)
	set.Bind(query)

	locations, err := u.locationRepo.List(u.db.WithContext(ctx), set.Scope())
	if err != nil {
		u.log.Warnf("Failed to list locations: %+v", err)
		return nil, err
	}

	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
		Filters:   set.Contexts(),
	}, nil
}

func (u *locationUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	location, err := u.locationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	if req.Name != "" {
		location.Name = req.Name
	}
	if req.Code != "" {
		location.Code = req.Code
	}
	if req.Address != "" {
		location.Address = req.Address
	}
	if req.City != "" {
		location.City = req.City
	}
	if req.PostalCode != "" {
		location.PostalCode = req.PostalCode
	}
	if req.Country != "" {
		location.Country = req.Country
	}
	if req.Phone != "" {
		location.Phone = req.Phone
	}
	if req.Email != "" {
		location.Email = req.Email
	}
	if req.Notes != "" {
		location.Notes = req.Notes
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}

	if err := u.applyDecimals(location, req.LaborBudget, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	if req.ManagerID != "" {
		managerID, err := uuid.Parse(req.ManagerID)
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
		location.ManagerID = &managerID
	}

	if err := u.locationRepo.Update(tx, location); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "code") {
			return nil, ErrLocationCodeExists
		}
		u.log.Warnf("Failed to update location: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, location.ID)
}

// Deactivate soft-deletes the location. Locations are never hard-deleted;
// shift history must keep resolving.
func (u *locationUsecase) Deactivate(ctx context.Context, actorID *uuid.UUID, id uint) (*dto.LocationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	location, err := u.locationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	if !location.IsActive {
		return nil, ErrLocationAlreadyInactive
	}

	location.IsActive = false
	if err := u.locationRepo.Update(tx, location); err != nil {
		u.log.Warnf("Failed to deactivate location: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, location.ID)
}

func (u *locationUsecase) applyDecimals(location *entity.Location, budget, latitude, longitude string) error {
	if budget != "" {
		parsed, err := decimal.NewFromString(budget)
		if err != nil {
			return ErrInvalidDecimal
		}
		location.LaborBudget = parsed
	}
	if latitude != "" {
		parsed, err := decimal.NewFromString(latitude)
		if err != nil {
			return ErrInvalidDecimal
		}
		location.Latitude = &parsed
	}
	if longitude != "" {
		parsed, err := decimal.NewFromString(longitude)
		if err != nil {
			return ErrInvalidDecimal
		}
		location.Longitude = &parsed
	}
	return nil
}
