package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type locationRepository struct{}

func NewLocationRepository() domainRepo.LocationRepository {
	return &locationRepository{}
}

func (r *locationRepository) Create(db *gorm.DB, location *entity.Location) error {
	return db.Create(location).Error
}

func (r *locationRepository) FindByID(db *gorm.DB, id uint) (*entity.Location, error) {
	var location entity.Location
	err := db.Preload("Manager").Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(db *gorm.DB, scope domainRepo.Scope) ([]entity.Location, error) {
	var locations []entity.Location
	query := db.Preload("Manager")
	if scope != nil {
		query = query.Scopes(scope)
	}
	err := query.Order("name ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) Update(db *gorm.DB, location *entity.Location) error {
	return db.Omit("Manager", "Employees", "Shifts").Save(location).Error
}

func (r *locationRepository) CountActiveEmployees(db *gorm.DB, id uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Employee{}).
		Where("location_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}
