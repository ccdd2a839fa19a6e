package dto

import (
	"time"

	"medshift-scheduler/internal/filter"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUnavailabilityRequest struct {
	EmployeeID        string                 `json:"employee_id" validate:"required,uuid"`
	StartDatetime     string                 `json:"start_datetime" validate:"required"` // RFC 3339
	EndDatetime       string                 `json:"end_datetime" validate:"required"`   // RFC 3339
	Reason            string                 `json:"reason" validate:"required,oneof=vacation sick personal training other"`
	IsRecurring       bool                   `json:"is_recurring"`
	RecurrencePattern map[string]interface{} `json:"recurrence_pattern" validate:"omitempty"`
	Notes             string                 `json:"notes" validate:"omitempty"`
}

type UpdateUnavailabilityRequest struct {
	StartDatetime     string                 `json:"start_datetime" validate:"omitempty"`
	EndDatetime       string                 `json:"end_datetime" validate:"omitempty"`
	Reason            string                 `json:"reason" validate:"omitempty,oneof=vacation sick personal training other"`
	IsRecurring       *bool                  `json:"is_recurring" validate:"omitempty"`
	RecurrencePattern map[string]interface{} `json:"recurrence_pattern" validate:"omitempty"`
	Notes             *string                `json:"notes" validate:"omitempty"`
}

// Response DTOs

type UnavailabilityResponse struct {
	ID                uint                   `json:"id"`
	EmployeeID        uuid.UUID              `json:"employee_id"`
	EmployeeName      string                 `json:"employee_name,omitempty"`
	StartDatetime     time.Time              `json:"start_datetime"`
	EndDatetime       time.Time              `json:"end_datetime"`
	DurationDays      int                    `json:"duration_days"`
	Reason            string                 `json:"reason"`
	IsRecurring       bool                   `json:"is_recurring"`
	RecurrencePattern map[string]interface{} `json:"recurrence_pattern,omitempty"`
	Notes             string                 `json:"notes,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type UnavailabilityListResponse struct {
	Unavailabilities []UnavailabilityResponse `json:"unavailabilities"`
	Total            int                      `json:"total"`
	Filters          []filter.FieldContext    `json:"filters"`
}
