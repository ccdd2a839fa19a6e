package dto

import (
	"time"

	"medshift-scheduler/internal/filter"
)

// Request DTOs

type CreatePositionRequest struct {
	Title                 string `json:"title" validate:"required,min=2,max=100"`
	Code                  string `json:"code" validate:"required,min=2,max=20"`
	Description           string `json:"description" validate:"omitempty"`
	RequiresCertification bool   `json:"requires_certification"`
	MinHourlyRate         string `json:"min_hourly_rate" validate:"required"`
	MaxHourlyRate         string `json:"max_hourly_rate" validate:"required"`
}

type UpdatePositionRequest struct {
	Title                 string `json:"title" validate:"omitempty,min=2,max=100"`
	Code                  string `json:"code" validate:"omitempty,min=2,max=20"`
	Description           string `json:"description" validate:"omitempty"`
	RequiresCertification *bool  `json:"requires_certification" validate:"omitempty"`
	MinHourlyRate         string `json:"min_hourly_rate" validate:"omitempty"`
	MaxHourlyRate         string `json:"max_hourly_rate" validate:"omitempty"`
	IsActive              *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type PositionResponse struct {
	ID                    uint      `json:"id"`
	Title                 string    `json:"title"`
	Code                  string    `json:"code"`
	Description           string    `json:"description,omitempty"`
	RequiresCertification bool      `json:"requires_certification"`
	MinHourlyRate         string    `json:"min_hourly_rate"`
	MaxHourlyRate         string    `json:"max_hourly_rate"`
	RateRange             string    `json:"rate_range"`
	IsActive              bool      `json:"is_active"`
	EmployeeCount         int64     `json:"employee_count"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type PositionListResponse struct {
	Positions []PositionResponse    `json:"positions"`
	Total     int                   `json:"total"`
	Filters   []filter.FieldContext `json:"filters"`
}
