package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Location is a physical facility where employees work.
// Examples: Geneva Clinic, Lausanne Medical Center, Bern Hospital.
type Location struct {
	ID            uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Code          string           `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Address       string           `gorm:"type:varchar(255)" json:"address,omitempty"`
	City          string           `gorm:"type:varchar(100);index" json:"city,omitempty"`
	PostalCode    string           `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	Country       string           `gorm:"type:char(2);default:'CH'" json:"country,omitempty"`
	Phone         string           `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email         string           `gorm:"type:varchar(255)" json:"email,omitempty"`
	ManagerID     *uuid.UUID       `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	IsActive      bool             `gorm:"not null;default:true;index" json:"is_active"`
	Notes         string           `gorm:"type:text" json:"notes,omitempty"`
	LaborBudget   decimal.Decimal  `gorm:"type:decimal(10,2);default:0" json:"labor_budget"`
	Latitude      *decimal.Decimal `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude     *decimal.Decimal `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Manager   *User      `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Employees []Employee `gorm:"foreignKey:LocationID" json:"employees,omitempty"`
	Shifts    []Shift    `gorm:"foreignKey:LocationID" json:"shifts,omitempty"`
}

func (Location) TableName() string {
	return "locations"
}

// FullAddress returns the complete formatted address.
func (l *Location) FullAddress() string {
	return l.Address + ", " + l.City + " " + l.PostalCode + ", " + l.Country
}
