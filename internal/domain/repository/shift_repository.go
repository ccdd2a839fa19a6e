package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftRepository interface {
	Create(db *gorm.DB, shift *entity.Shift) error
	FindByID(db *gorm.DB, id uint) (*entity.Shift, error)
	List(db *gorm.DB, scope Scope) ([]entity.Shift, error)
	// FindCommittedByEmployee returns the employee's non-cancelled shifts,
	// excluding excludeID (0 to exclude nothing). Input for the overlap scan.
	FindCommittedByEmployee(db *gorm.DB, employeeID uuid.UUID, excludeID uint) ([]entity.Shift, error)
	Update(db *gorm.DB, shift *entity.Shift) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
