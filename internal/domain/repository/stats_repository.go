package repository

import "gorm.io/gorm"

// RateStats holds hourly-rate aggregates over active employees.
type RateStats struct {
	AvgRate float64 `json:"avg_rate"`
	MinRate float64 `json:"min_rate"`
	MaxRate float64 `json:"max_rate"`
}

// StatsRepository runs the aggregate queries behind the dashboard.
type StatsRepository interface {
	CountActiveEmployees(db *gorm.DB) (int64, error)
	CountActiveDepartments(db *gorm.DB) (int64, error)
	CountActivePositions(db *gorm.DB) (int64, error)
	CountActiveLocations(db *gorm.DB) (int64, error)
	ShiftCountsByStatus(db *gorm.DB) (map[string]int64, error)
	EmployeeCountsByType(db *gorm.DB) (map[string]int64, error)
	HourlyRateStats(db *gorm.DB) (*RateStats, error)
}
