package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type shiftRepository struct{}

func NewShiftRepository() domainRepo.ShiftRepository {
	return &shiftRepository{}
}

func (r *shiftRepository) Create(db *gorm.DB, shift *entity.Shift) error {
	return db.Create(shift).Error
}

func (r *shiftRepository) FindByID(db *gorm.DB, id uint) (*entity.Shift, error) {
	var shift entity.Shift
	err := db.
		Preload("Employee.User").Preload("Location").Preload("Position").
		Where("id = ?", id).First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) List(db *gorm.DB, scope domainRepo.Scope) ([]entity.Shift, error) {
	var shifts []entity.Shift
	query := db.Preload("Employee.User").Preload("Location").Preload("Position")
	if scope != nil {
		query = query.Scopes(scope)
	}
	err := query.Order("start_datetime DESC").Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) FindCommittedByEmployee(db *gorm.DB, employeeID uuid.UUID, excludeID uint) ([]entity.Shift, error) {
	var shifts []entity.Shift
	query := db.
		Where("employee_id = ?", employeeID).
		Where("status <> ?", entity.ShiftStatusCancelled)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Order("start_datetime ASC").Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) Update(db *gorm.DB, shift *entity.Shift) error {
	return db.Omit("Employee", "Location", "Position").Save(shift).Error
}

func (r *shiftRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Shift{})
	return result.RowsAffected, result.Error
}
