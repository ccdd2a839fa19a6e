package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type ShiftTemplateRepository interface {
	Create(db *gorm.DB, template *entity.ShiftTemplate) error
	FindByID(db *gorm.DB, id uint) (*entity.ShiftTemplate, error)
	List(db *gorm.DB, scope Scope) ([]entity.ShiftTemplate, error)
	Update(db *gorm.DB, template *entity.ShiftTemplate) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
