package repository

import (
	"medshift-scheduler/internal/domain/entity"
	domainRepo "medshift-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type statsRepository struct{}

func NewStatsRepository() domainRepo.StatsRepository {
	return &statsRepository{}
}

func (r *statsRepository) CountActiveEmployees(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Employee{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountActiveDepartments(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Department{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountActivePositions(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Position{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountActiveLocations(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Location{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *statsRepository) ShiftCountsByStatus(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := db.Model(&entity.Shift{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *statsRepository) EmployeeCountsByType(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		EmploymentType string
		Total          int64
	}
	err := db.Model(&entity.Employee{}).
		Select("employment_type, COUNT(*) as total").
		Where("is_active = ?", true).
		Group("employment_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.EmploymentType] = row.Total
	}
	return counts, nil
}

func (r *statsRepository) HourlyRateStats(db *gorm.DB) (*domainRepo.RateStats, error) {
	var stats domainRepo.RateStats
	err := db.Model(&entity.Employee{}).
		Select("COALESCE(AVG(hourly_rate), 0) as avg_rate, COALESCE(MIN(hourly_rate), 0) as min_rate, COALESCE(MAX(hourly_rate), 0) as max_rate").
		Where("is_active = ?", true).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
