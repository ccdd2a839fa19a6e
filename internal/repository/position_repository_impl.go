package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type positionRepository struct{}

func NewPositionRepository() domainRepo.PositionRepository {
	return &positionRepository{}
}

func (r *positionRepository) Create(db *gorm.DB, position *entity.Position) error {
	return db.Create(position).Error
}

func (r *positionRepository) FindByID(db *gorm.DB, id uint) (*entity.Position, error) {
	var position entity.Position
	err := db.Where("id = ?", id).First(&position).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &position, nil
}

func (r *positionRepository) List(db *gorm.DB, scope domainRepo.Scope) ([]entity.Position, error) {
	var positions []entity.Position
	query := db
	if scope != nil {
		query = query.Scopes(scope)
	}
	err := query.Order("title ASC").Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *positionRepository) Update(db *gorm.DB, position *entity.Position) error {
	return db.Omit("Employees").Save(position).Error
}

func (r *positionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Position{})
	return result.RowsAffected, result.Error
}

func (r *positionRepository) CountActiveEmployees(db *gorm.DB, id uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Employee{}).
		Where("position_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}
