package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSwapRequest struct {
	ShiftID          uint   `json:"shift_id" validate:"required"`
	TargetEmployeeID string `json:"target_employee_id" validate:"required,uuid"`
	RequestMessage   string `json:"request_message" validate:"omitempty"`
}

type RespondSwapRequest struct {
	Accept          bool   `json:"accept"`
	ResponseMessage string `json:"response_message" validate:"omitempty"`
}

type ReviewSwapRequest struct {
	Approve         bool   `json:"approve"`
	ResponseMessage string `json:"response_message" validate:"omitempty"`
}

// Response DTOs

type ShiftSwapResponse struct {
	ID                     uint       `json:"id"`
	ShiftID                uint       `json:"shift_id"`
	Shift                  *ShiftResponse `json:"shift,omitempty"`
	RequestingEmployeeID   uuid.UUID  `json:"requesting_employee_id"`
	RequestingEmployeeName string     `json:"requesting_employee_name,omitempty"`
	TargetEmployeeID       uuid.UUID  `json:"target_employee_id"`
	TargetEmployeeName     string     `json:"target_employee_name,omitempty"`
	Status                 string     `json:"status"`
	RequestMessage         string     `json:"request_message,omitempty"`
	ResponseMessage        string     `json:"response_message,omitempty"`
	ApprovedBy             *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt             *time.Time `json:"approved_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type ShiftSwapListResponse struct {
	Requests []ShiftSwapResponse `json:"requests"`
	Total    int                 `json:"total"`
}
