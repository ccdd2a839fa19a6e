package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type unavailabilityRepository struct{}

func NewUnavailabilityRepository() domainRepo.UnavailabilityRepository {
	return &unavailabilityRepository{}
}

func (r *unavailabilityRepository) Create(db *gorm.DB, unavailability *entity.Unavailability) error {
	return db.Create(unavailability).Error
}

func (r *unavailabilityRepository) FindByID(db *gorm.DB, id uint) (*entity.Unavailability, error) {
	var unavailability entity.Unavailability
	err := db.Preload("Employee.User").Where("id = ?", id).First(&unavailability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unavailability, nil
}

func (r *unavailabilityRepository) FindByEmployee(db *gorm.DB, employeeID uuid.UUID, excludeID uint) ([]entity.Unavailability, error) {
	var unavailabilities []entity.Unavailability
	query := db.Where("employee_id = ?", employeeID)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Order("start_datetime ASC").Find(&unavailabilities).Error
	if err != nil {
		return nil, err
	}
	return unavailabilities, nil
}

func (r *unavailabilityRepository) List(db *gorm.DB, scope domainRepo.Scope) ([]entity.Unavailability, error) {
	var unavailabilities []entity.Unavailability
	query := db.Preload("Employee.User")
	if scope != nil {
		query = query.Scopes(scope)
	}
	err := query.Order("start_datetime DESC").Find(&unavailabilities).Error
	if err != nil {
		return nil, err
	}
	return unavailabilities, nil
}

func (r *unavailabilityRepository) Update(db *gorm.DB, unavailability *entity.Unavailability) error {
	return db.Omit("Employee").Save(unavailability).Error
}

func (r *unavailabilityRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Unavailability{})
	return result.RowsAffected, result.Error
}
