package dto

import "time"

// Request DTOs

type CreateShiftTemplateRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	LocationID    uint   `json:"location_id" validate:"required"`
	PositionID    uint   `json:"position_id" validate:"required"`
	StartTime     string `json:"start_time" validate:"required,hhmm"`
	EndTime       string `json:"end_time" validate:"required,hhmm"`
	BreakDuration int    `json:"break_duration" validate:"omitempty,gte=0"`
	DaysOfWeek    []int  `json:"days_of_week" validate:"required,min=1,dive,gte=0,lte=6"` // 0=Monday
}

type UpdateShiftTemplateRequest struct {
	Name          string `json:"name" validate:"omitempty,min=2,max=100"`
	LocationID    uint   `json:"location_id" validate:"omitempty"`
	PositionID    uint   `json:"position_id" validate:"omitempty"`
	StartTime     string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime       string `json:"end_time" validate:"omitempty,hhmm"`
	BreakDuration *int   `json:"break_duration" validate:"omitempty,gte=0"`
	DaysOfWeek    []int  `json:"days_of_week" validate:"omitempty,min=1,dive,gte=0,lte=6"`
	IsActive      *bool  `json:"is_active" validate:"omitempty"`
}

type GenerateShiftsRequest struct {
	StartDate  string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate    string `json:"end_date" validate:"required"`   // YYYY-MM-DD
	EmployeeID string `json:"employee_id" validate:"omitempty,uuid"`
}

// Response DTOs

type ShiftTemplateResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	LocationID    uint      `json:"location_id"`
	LocationName  string    `json:"location_name,omitempty"`
	PositionID    uint      `json:"position_id"`
	PositionTitle string    `json:"position_title,omitempty"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	BreakDuration int       `json:"break_duration"`
	DaysOfWeek    []int     `json:"days_of_week"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ShiftTemplateListResponse struct {
	Templates []ShiftTemplateResponse `json:"templates"`
	Total     int                     `json:"total"`
}

// GenerateShiftsResponse reports the outcome of materializing a template
// over a date range: the shifts created and the dates skipped with a reason.
type GenerateShiftsResponse struct {
	Created []ShiftResponse `json:"created"`
	Skipped []SkippedDate   `json:"skipped"`
}

type SkippedDate struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
}
