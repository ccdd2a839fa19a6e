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
	ErrPositionCodeExists   = errors.New("position code or title already exists")
	ErrPositionHasEmployees = errors.New("position has active employees and cannot be deleted")
	ErrInvalidRateRange     = errors.New("minimum hourly rate must not exceed maximum")
)

type PositionUsecase interface {
	Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreatePositionRequest) (*dto.PositionResponse, error)
	Get(ctx context.Context, id uint) (*dto.PositionResponse, error)
	List(ctx context.Context, query url.Values) (*dto.PositionListResponse, error)
	Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdatePositionRequest) (*dto.PositionResponse, error)
	Delete(ctx context.Context, actorID *uuid.UUID, id uint) error
}

type positionUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	positionRepo repository.PositionRepository
	auditService service.AuditService
	statsService service.StatsService
}

func NewPositionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	positionRepo repository.PositionRepository,
	auditService service.AuditService,
	statsService service.StatsService,
) PositionUsecase {
	return &positionUsecase{
		db:           db,
		log:          log,
		positionRepo: positionRepo,
		auditService: auditService,
		statsService: statsService,
	}
}

func (u *positionUsecase) Create(ctx context.Context, actorID *uuid.UUID, req *dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	minRate, err := decimal.NewFromString(req.MinHourlyRate)
	if err != nil {
		return nil, ErrInvalidDecimal
	}
	maxRate, err := decimal.NewFromString(req.MaxHourlyRate)
	if err != nil {
		return nil, ErrInvalidDecimal
	}
	if minRate.GreaterThan(maxRate) {
		return nil, ErrInvalidRateRange
	}

	position := &entity.Position{
		Title:                 req.Title,
		Code:                  req.Code,
		Description:           req.Description,
		RequiresCertification: req.RequiresCertification,
		MinHourlyRate:         minRate,
		MaxHourlyRate:         maxRate,
		IsActive:              true,
	}

	if err := u.positionRepo.Create(tx, position); err != nil {
		if isDuplicateKeyError(err, "title") || isDuplicateKeyError(err, "code") {
			return nil, ErrPositionCodeExists
		}
		u.log.Warnf("Failed to create position: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, position.ID)
}

func (u *positionUsecase) Get(ctx context.Context, id uint) (*dto.PositionResponse, error) {
	db := u.db.WithContext(ctx)

	position, err := u.positionRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find position: %+v", err)
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}

	count, err := u.positionRepo.CountActiveEmployees(db, id)
	if err != nil {
		u.log.Warnf("Failed to count position employees: %+v", err)
		return nil, err
	}

	return converter.PositionToResponse(position, count), nil
}

func (u *positionUsecase) List(ctx context.Context, query url.Values) (*dto.PositionListResponse, error) {
	set := filter.NewSet(
		filter.Text("search", "Search", "").
			Across("positions.title", "positions.code", "positions.description").
			Placeholder("Title, code or description"),
		filter.Boolean("is_active", "Active", "positions.is_active"),
		filter.Boolean("requires_certification", "Requires certification", "positions.requires_certification"),
		filter.Number("min_rate", "Minimum rate at least", "positions.min_hourly_rate", filter.OpGte).Bounds(0, 500),
		filter.Number("max_rate", "Maximum rate at most", "positions.max_hourly_rate", filter.OpLte).Bounds(0, 500),
	)
	set.Bind(query)

	positions, err := u.positionRepo.List(u.db.WithContext(ctx), set.Scope())
	if err != nil {
		u.log.Warnf("Failed to list positions: %+v", err)
		return nil, err
	}

	return &dto.PositionListResponse{
		Positions: converter.PositionsToResponses(positions),
		Total:     len(positions),
		Filters:   set.Contexts(),
	}, nil
}

func (u *positionUsecase) Update(ctx context.Context, actorID *uuid.UUID, id uint, req *dto.UpdatePositionRequest) (*dto.PositionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	position, err := u.positionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find position: %+v", err)
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}

	if req.Title != "" {
		position.Title = req.Title
	}
	if req.Code != "" {
		position.Code = req.Code
	}
	if req.Description != "" {
		position.Description = req.Description
	}
	if req.RequiresCertification != nil {
		position.RequiresCertification = *req.RequiresCertification
	}
	if req.MinHourlyRate != "" {
		minRate, err := decimal.NewFromString(req.MinHourlyRate)
		if err != nil {
			return nil, ErrInvalidDecimal
		}
		position.MinHourlyRate = minRate
	}
	if req.MaxHourlyRate != "" {
		maxRate, err := decimal.NewFromString(req.MaxHourlyRate)
		if err != nil {
			return nil, ErrInvalidDecimal
		}
		position.MaxHourlyRate = maxRate
	}
	if position.MinHourlyRate.GreaterThan(position.MaxHourlyRate) {
		return nil, ErrInvalidRateRange
	}
	if req.IsActive != nil {
		position.IsActive = *req.IsActive
	}

	if err := u.positionRepo.Update(tx, position); err != nil {
		if isDuplicateKeyError(err, "title") || isDuplicateKeyError(err, "code") {
			return nil, ErrPositionCodeExists
		}
		u.log.Warnf("Failed to update position: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.statsService.Invalidate(ctx)

	return u.Get(ctx, position.ID)
}

func (u *positionUsecase) Delete(ctx context.Context, actorID *uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	position, err := u.positionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find position: %+v", err)
		return err
	}
	if position == nil {
		return ErrPositionNotFound
	}

	count, err := u.positionRepo.CountActiveEmployees(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count position employees: %+v", err)
		return err
	}
	if count > 0 {
		return ErrPositionHasEmployees
	}

	affected, err := u.positionRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete position: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPositionNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.statsService.Invalidate(ctx)

	return nil
}
