package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShiftTemplate is a reusable shift blueprint: time of day, break and
// weekdays, used to materialize draft shifts over a date range.
type ShiftTemplate struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	LocationID    uint       `gorm:"not null;index" json:"location_id"`
	PositionID    uint       `gorm:"not null;index" json:"position_id"`
	StartTime     string     `gorm:"type:time;not null" json:"start_time"` // HH:MM
	EndTime       string     `gorm:"type:time;not null" json:"end_time"`   // HH:MM
	BreakDuration int        `gorm:"not null;default:0" json:"break_duration"`
	DaysOfWeek    JSON       `gorm:"type:jsonb;not null" json:"days_of_week"` // {"days":[0..6]}, 0=Monday
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Position Position `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}

func (ShiftTemplate) TableName() string {
	return "shift_templates"
}

// Weekdays decodes the stored day list. 0 is Monday, 6 is Sunday.
func (t *ShiftTemplate) Weekdays() []int {
	raw, ok := t.DaysOfWeek["days"].([]interface{})
	if !ok {
		return nil
	}
	days := make([]int, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(float64); ok {
			days = append(days, int(f))
		}
	}
	return days
}

// AppliesOn reports whether the template covers the given weekday.
func (t *ShiftTemplate) AppliesOn(day time.Weekday) bool {
	// time.Weekday counts Sunday as 0; templates count Monday as 0
	templateDay := (int(day) + 6) % 7
	for _, d := range t.Weekdays() {
		if d == templateDay {
			return true
		}
	}
	return false
}
