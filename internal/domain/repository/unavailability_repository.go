package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnavailabilityRepository interface {
	Create(db *gorm.DB, unavailability *entity.Unavailability) error
	FindByID(db *gorm.DB, id uint) (*entity.Unavailability, error)
	// FindByEmployee returns the employee's unavailability intervals,
	// excluding excludeID (0 to exclude nothing). Input for the overlap scan.
	FindByEmployee(db *gorm.DB, employeeID uuid.UUID, excludeID uint) ([]entity.Unavailability, error)
	List(db *gorm.DB, scope Scope) ([]entity.Unavailability, error)
	Update(db *gorm.DB, unavailability *entity.Unavailability) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
