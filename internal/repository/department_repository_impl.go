package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Create(department).Error
}

func (r *departmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Department, error) {
	var department entity.Department
	err := db.Preload("Manager").Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) List(db *gorm.DB, scope domainRepo.Scope) ([]entity.Department, error) {
	var departments []entity.Department
	query := db.Preload("Manager")
	if scope != nil {
		query = query.Scopes(scope)
	}
	err := query.Order("name ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) Update(db *gorm.DB, department *entity.Department) error {
	return db.Omit("Manager", "Employees").Save(department).Error
}

func (r *departmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Department{})
	return result.RowsAffected, result.Error
}

func (r *departmentRepository) CountActiveEmployees(db *gorm.DB, id uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Employee{}).
		Where("department_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}
