package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shiftSwapRepository struct{}

func NewShiftSwapRepository() domainRepo.ShiftSwapRepository {
	return &shiftSwapRepository{}
}

func (r *shiftSwapRepository) Create(db *gorm.DB, request *entity.ShiftSwapRequest) error {
	return db.Create(request).Error
}

func (r *shiftSwapRepository) FindByID(db *gorm.DB, id uint) (*entity.ShiftSwapRequest, error) {
	var request entity.ShiftSwapRequest
	err := db.Preload("Shift").
		Preload("RequestingEmployee.User").
		Preload("TargetEmployee.User").
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *shiftSwapRepository) ListByEmployee(db *gorm.DB, employeeID uuid.UUID) ([]entity.ShiftSwapRequest, error) {
	var requests []entity.ShiftSwapRequest
	err := db.Preload("Shift").
		Preload("RequestingEmployee.User").
		Preload("TargetEmployee.User").
		Where("requesting_employee_id = ? OR target_employee_id = ?", employeeID, employeeID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *shiftSwapRepository) ListPending(db *gorm.DB) ([]entity.ShiftSwapRequest, error) {
	var requests []entity.ShiftSwapRequest
	err := db.Preload("Shift").
		Preload("RequestingEmployee.User").
		Preload("TargetEmployee.User").
		Where("status IN ?", []entity.SwapStatus{entity.SwapStatusPending, entity.SwapStatusAccepted}).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *shiftSwapRepository) Update(db *gorm.DB, request *entity.ShiftSwapRequest) error {
	return db.Omit("Shift", "RequestingEmployee", "TargetEmployee").Save(request).Error
}
