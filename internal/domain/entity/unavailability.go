package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnavailabilityReason explains why an employee cannot be scheduled.
type UnavailabilityReason string

const (
	ReasonVacation UnavailabilityReason = "vacation"
	ReasonSick     UnavailabilityReason = "sick"
	ReasonPersonal UnavailabilityReason = "personal"
	ReasonTraining UnavailabilityReason = "training"
	ReasonOther    UnavailabilityReason = "other"
)

// UnavailabilityReasons lists every valid reason.
var UnavailabilityReasons = []UnavailabilityReason{
	ReasonVacation,
	ReasonSick,
	ReasonPersonal,
	ReasonTraining,
	ReasonOther,
}

func (r UnavailabilityReason) Valid() bool {
	for _, known := range UnavailabilityReasons {
		if r == known {
			return true
		}
	}
	return false
}

// Unavailability is a time interval during which an employee must not be
// given shifts: vacations, sick leave, personal time, training.
type Unavailability struct {
	ID                uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID        uuid.UUID            `gorm:"type:uuid;not null;index:idx_unavailabilities_employee_start" json:"employee_id"`
	StartDatetime     time.Time            `gorm:"not null;index:idx_unavailabilities_employee_start" json:"start_datetime"`
	EndDatetime       time.Time            `gorm:"not null" json:"end_datetime"`
	Reason            UnavailabilityReason `gorm:"type:varchar(20);not null;default:'personal'" json:"reason"`
	IsRecurring       bool                 `gorm:"not null;default:false" json:"is_recurring"`
	RecurrencePattern JSON                 `gorm:"type:jsonb" json:"recurrence_pattern,omitempty"`
	Notes             string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time            `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Unavailability) TableName() string {
	return "unavailabilities"
}

// DurationDays is the interval length in whole days.
func (u *Unavailability) DurationDays() int {
	return int(u.EndDatetime.Sub(u.StartDatetime).Hours() / 24)
}
