package repository

import (
	"errors"

	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type shiftTemplateRepository struct{}

func NewShiftTemplateRepository() domainRepo.ShiftTemplateRepository {
	return &shiftTemplateRepository{}
}

func (r *shiftTemplateRepository) Create(db *gorm.DB, template *entity.ShiftTemplate) error {
	return db.Create(template).Error
}

func (r *shiftTemplateRepository) FindByID(db *gorm.DB, id uint) (*entity.ShiftTemplate, error) {
	var template entity.ShiftTemplate
	err := db.Preload("Location").Preload("Position").Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *shiftTemplateRepository) List(db *gorm.DB, scope domainRepo.Scope) ([]entity.ShiftTemplate, error) {
	var templates []entity.ShiftTemplate
	query := db.Preload("Location").Preload("Position")
	if scope != nil {
		query = query.Scopes(scope)
	}
	err := query.Order("name ASC").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *shiftTemplateRepository) Update(db *gorm.DB, template *entity.ShiftTemplate) error {
	return db.Omit("Location", "Position").Save(template).Error
}

func (r *shiftTemplateRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.ShiftTemplate{})
	return result.RowsAffected, result.Error
}
