package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct{}

func NewEmployeeRepository() domainRepo.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Create(db *gorm.DB, employee *entity.Employee) error {
	return db.Create(employee).Error
}

func (r *employeeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.
		Preload("User").Preload("Department").Preload("Position").Preload("Location").
		Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Preload("User").Where("user_id = ?", userID).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByNumber(db *gorm.DB, number string) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Where("employee_number = ?", number).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

// List joins users so the multi-field search filter can match name and email
// columns alongside the employee number.
func (r *employeeRepository) List(db *gorm.DB, scope domainRepo.Scope) ([]entity.Employee, error) {
	var employees []entity.Employee
	query := db.
		Joins("JOIN users ON users.id = employees.user_id").
		Preload("User").Preload("Department").Preload("Position").Preload("Location")
	if scope != nil {
		query = query.Scopes(scope)
	}
	err := query.Order("employees.hire_date DESC, users.last_name ASC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) Update(db *gorm.DB, employee *entity.Employee) error {
	return db.Omit("User", "Department", "Position", "Location", "Shifts").Save(employee).Error
}

func (r *employeeRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Employee{})
	return result.RowsAffected, result.Error
}
