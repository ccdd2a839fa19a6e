package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(db *gorm.DB, employee *entity.Employee) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Employee, error)
	FindByNumber(db *gorm.DB, number string) (*entity.Employee, error)
	List(db *gorm.DB, scope Scope) ([]entity.Employee, error)
	Update(db *gorm.DB, employee *entity.Employee) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
