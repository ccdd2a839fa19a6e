package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(db *gorm.DB, location *entity.Location) error
	FindByID(db *gorm.DB, id uint) (*entity.Location, error)
	List(db *gorm.DB, scope Scope) ([]entity.Location, error)
	Update(db *gorm.DB, location *entity.Location) error
	CountActiveEmployees(db *gorm.DB, id uint) (int64, error)
}
