package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Position is a job role for employees.
// Examples: Registered Nurse, Physician, Physician Assistant.
type Position struct {
	ID                    uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title                 string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"title"`
	Code                  string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Description           string          `gorm:"type:text" json:"description,omitempty"`
	RequiresCertification bool            `gorm:"not null;default:false" json:"requires_certification"`
	MinHourlyRate         decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"min_hourly_rate"`
	MaxHourlyRate         decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"max_hourly_rate"`
	IsActive              bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Employees []Employee `gorm:"foreignKey:PositionID" json:"employees,omitempty"`
}

func (Position) TableName() string {
	return "positions"
}

// RateRange returns the formatted hourly rate range.
func (p *Position) RateRange() string {
	return fmt.Sprintf("CHF %s - %s", p.MinHourlyRate.StringFixed(2), p.MaxHourlyRate.StringFixed(2))
}
