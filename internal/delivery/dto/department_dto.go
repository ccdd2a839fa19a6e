package dto

import (
	"time"

	"medshift-scheduler/internal/filter"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDepartmentRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Code           string `json:"code" validate:"required,min=2,max=20"`
	Description    string `json:"description" validate:"omitempty"`
	ManagerID      string `json:"manager_id" validate:"omitempty,uuid"`
	EffectiveFrom  string `json:"effective_from" validate:"omitempty"` // YYYY-MM-DD
	EffectiveTo    string `json:"effective_to" validate:"omitempty"`   // YYYY-MM-DD
	PhoneExtension string `json:"phone_extension" validate:"omitempty,max=10"`
}

type UpdateDepartmentRequest struct {
	Name           string `json:"name" validate:"omitempty,min=2,max=100"`
	Code           string `json:"code" validate:"omitempty,min=2,max=20"`
	Description    string `json:"description" validate:"omitempty"`
	ManagerID      string `json:"manager_id" validate:"omitempty,uuid"`
	EffectiveFrom  string `json:"effective_from" validate:"omitempty"`
	EffectiveTo    string `json:"effective_to" validate:"omitempty"`
	PhoneExtension string `json:"phone_extension" validate:"omitempty,max=10"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type DepartmentResponse struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Description    string     `json:"description,omitempty"`
	ManagerID      *uuid.UUID `json:"manager_id,omitempty"`
	ManagerName    string     `json:"manager_name,omitempty"`
	IsActive       bool       `json:"is_active"`
	EffectiveFrom  *string    `json:"effective_from,omitempty"`
	EffectiveTo    *string    `json:"effective_to,omitempty"`
	PhoneExtension string     `json:"phone_extension,omitempty"`
	EmployeeCount  int64      `json:"employee_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse  `json:"departments"`
	Total       int                   `json:"total"`
	Filters     []filter.FieldContext `json:"filters"`
}
