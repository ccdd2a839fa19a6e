package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

// Scope narrows a list query; built by the filter engine, applied by the
// repository.
type Scope = func(*gorm.DB) *gorm.DB

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindByID(db *gorm.DB, id uint) (*entity.Department, error)
	List(db *gorm.DB, scope Scope) ([]entity.Department, error)
	Update(db *gorm.DB, department *entity.Department) error
	Delete(db *gorm.DB, id uint) (int64, error)
	CountActiveEmployees(db *gorm.DB, id uint) (int64, error)
}
