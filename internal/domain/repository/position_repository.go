package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type PositionRepository interface {
	Create(db *gorm.DB, position *entity.Position) error
	FindByID(db *gorm.DB, id uint) (*entity.Position, error)
	List(db *gorm.DB, scope Scope) ([]entity.Position, error)
	Update(db *gorm.DB, position *entity.Position) error
	Delete(db *gorm.DB, id uint) (int64, error)
	CountActiveEmployees(db *gorm.DB, id uint) (int64, error)
}
