package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department is an organizational unit within the facility.
// Examples: Emergency, ICU, Cardiology, Surgery.
type Department struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Code           string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	IsActive       bool       `gorm:"not null;default:true;index" json:"is_active"`
	EffectiveFrom  *time.Time `gorm:"type:date" json:"effective_from,omitempty"`
	EffectiveTo    *time.Time `gorm:"type:date" json:"effective_to,omitempty"`
	PhoneExtension string     `gorm:"type:varchar(10)" json:"phone_extension,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Manager   *User      `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Employees []Employee `gorm:"foreignKey:DepartmentID" json:"employees,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) HasManager() bool {
	return d.ManagerID != nil
}
