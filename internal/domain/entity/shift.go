package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ShiftStatus is the workflow state of a shift. The enumeration is flat: any
// status may be set over any other, there is no enforced transition graph.
type ShiftStatus string

const (
	ShiftStatusDraft     ShiftStatus = "draft"
	ShiftStatusPublished ShiftStatus = "published"
	ShiftStatusApproved  ShiftStatus = "approved"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// ShiftStatuses lists every valid shift status.
var ShiftStatuses = []ShiftStatus{
	ShiftStatusDraft,
	ShiftStatusPublished,
	ShiftStatusApproved,
	ShiftStatusCompleted,
	ShiftStatusCancelled,
}

func (s ShiftStatus) Valid() bool {
	for _, known := range ShiftStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Shift is one work interval at a location for a position. EmployeeID is
// nullable: a shift without an employee is an open shift pending assignment.
type Shift struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID    *uuid.UUID  `gorm:"type:uuid;index:idx_shifts_employee_start" json:"employee_id,omitempty"`
	LocationID    uint        `gorm:"not null;index:idx_shifts_location_start" json:"location_id"`
	PositionID    uint        `gorm:"not null;index" json:"position_id"`
	StartDatetime time.Time   `gorm:"not null;index:idx_shifts_employee_start;index:idx_shifts_location_start" json:"start_datetime"`
	EndDatetime   time.Time   `gorm:"not null" json:"end_datetime"`
	BreakDuration int         `gorm:"not null;default:0" json:"break_duration"`
	Status        ShiftStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Notes         string      `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     *uuid.UUID  `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Location Location  `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Position Position  `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}

func (Shift) TableName() string {
	return "shifts"
}

// IsOpen reports whether the shift has no assigned employee.
func (s *Shift) IsOpen() bool {
	return s.EmployeeID == nil
}

func (s *Shift) IsCancelled() bool {
	return s.Status == ShiftStatusCancelled
}

// WorkedHours is the paid duration in hours: total length minus the break.
func (s *Shift) WorkedHours() float64 {
	total := s.EndDatetime.Sub(s.StartDatetime).Minutes()
	worked := total - float64(s.BreakDuration)
	return math.Round(worked/60*100) / 100
}

func (s *Shift) IsPast() bool {
	return s.EndDatetime.Before(time.Now())
}

func (s *Shift) IsOngoing() bool {
	now := time.Now()
	return !s.StartDatetime.After(now) && !s.EndDatetime.Before(now)
}
