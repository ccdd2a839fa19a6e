package dto

import (
	"time"

	"medshift-scheduler/internal/filter"

	"github.com/google/uuid"
)

// Request DTOs

type CreateShiftRequest struct {
	EmployeeID    string `json:"employee_id" validate:"omitempty,uuid"` // empty means open shift
	LocationID    uint   `json:"location_id" validate:"required"`
	PositionID    uint   `json:"position_id" validate:"required"`
	StartDatetime string `json:"start_datetime" validate:"required"` // RFC 3339
	EndDatetime   string `json:"end_datetime" validate:"required"`   // RFC 3339
	BreakDuration int    `json:"break_duration" validate:"omitempty,gte=0"`
	Status        string `json:"status" validate:"omitempty,oneof=draft published approved completed cancelled"`
	Notes         string `json:"notes" validate:"omitempty"`
}

type UpdateShiftRequest struct {
	EmployeeID    *string `json:"employee_id" validate:"omitempty"` // nil keep, "" unassign, uuid reassign
	LocationID    uint    `json:"location_id" validate:"omitempty"`
	PositionID    uint    `json:"position_id" validate:"omitempty"`
	StartDatetime string  `json:"start_datetime" validate:"omitempty"`
	EndDatetime   string  `json:"end_datetime" validate:"omitempty"`
	BreakDuration *int    `json:"break_duration" validate:"omitempty,gte=0"`
	Notes         *string `json:"notes" validate:"omitempty"`
}

type UpdateShiftStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published approved completed cancelled"`
}

type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
}

// Response DTOs

type ShiftResponse struct {
	ID            uint       `json:"id"`
	EmployeeID    *uuid.UUID `json:"employee_id,omitempty"`
	EmployeeName  string     `json:"employee_name,omitempty"`
	LocationID    uint       `json:"location_id"`
	LocationName  string     `json:"location_name,omitempty"`
	PositionID    uint       `json:"position_id"`
	PositionTitle string     `json:"position_title,omitempty"`
	StartDatetime time.Time  `json:"start_datetime"`
	EndDatetime   time.Time  `json:"end_datetime"`
	BreakDuration int        `json:"break_duration"`
	WorkedHours   float64    `json:"worked_hours"`
	Status        string     `json:"status"`
	IsOpen        bool       `json:"is_open"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ShiftListResponse struct {
	Shifts  []ShiftResponse       `json:"shifts"`
	Total   int                   `json:"total"`
	Filters []filter.FieldContext `json:"filters"`
}
