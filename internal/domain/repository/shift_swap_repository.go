package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShiftSwapRepository interface {
	Create(db *gorm.DB, request *entity.ShiftSwapRequest) error
	FindByID(db *gorm.DB, id uint) (*entity.ShiftSwapRequest, error)
	ListByEmployee(db *gorm.DB, employeeID uuid.UUID) ([]entity.ShiftSwapRequest, error)
	ListPending(db *gorm.DB) ([]entity.ShiftSwapRequest, error)
	Update(db *gorm.DB, request *entity.ShiftSwapRequest) error
}
