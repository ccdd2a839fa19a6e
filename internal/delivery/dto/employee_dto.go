package dto

import (
	"time"

	"medshift-scheduler/internal/filter"

	"github.com/google/uuid"
)

// Request DTOs

type CreateEmployeeRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"first_name" validate:"required,min=2,max=100"`
	LastName     string `json:"last_name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"omitempty,min=7,max=20"`
	DepartmentID uint   `json:"department_id" validate:"required"`
	PositionID   uint   `json:"position_id" validate:"required"`
	LocationID   uint   `json:"location_id" validate:"required"`

	EmploymentType string `json:"employment_type" validate:"required,oneof=FT PT CT TM IN"`
	HireDate       string `json:"hire_date" validate:"required"` // YYYY-MM-DD
	HourlyRate     string `json:"hourly_rate" validate:"required"`
	WeeklyHours    string `json:"weekly_hours" validate:"omitempty"`

	EmergencyContactName         string `json:"emergency_contact_name" validate:"omitempty,max=200"`
	EmergencyContactPhone        string `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship" validate:"omitempty,max=50"`
	Notes                        string `json:"notes" validate:"omitempty"`
}

type UpdateEmployeeRequest struct {
	FirstName    string `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName     string `json:"last_name" validate:"omitempty,min=2,max=100"`
	Phone        string `json:"phone" validate:"omitempty,min=7,max=20"`
	DepartmentID uint   `json:"department_id" validate:"omitempty"`
	PositionID   uint   `json:"position_id" validate:"omitempty"`
	LocationID   uint   `json:"location_id" validate:"omitempty"`

	EmploymentType string `json:"employment_type" validate:"omitempty,oneof=FT PT CT TM IN"`
	HourlyRate     string `json:"hourly_rate" validate:"omitempty"`
	WeeklyHours    string `json:"weekly_hours" validate:"omitempty"`

	EmergencyContactName         string `json:"emergency_contact_name" validate:"omitempty,max=200"`
	EmergencyContactPhone        string `json:"emergency_contact_phone" validate:"omitempty,max=20"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship" validate:"omitempty,max=50"`
	Notes                        string `json:"notes" validate:"omitempty"`
}

type DeactivateEmployeeRequest struct {
	TerminationDate string `json:"termination_date" validate:"omitempty"` // YYYY-MM-DD
}

// Response DTOs

type EmployeeResponse struct {
	ID             uuid.UUID `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`

	Department *DepartmentResponse `json:"department,omitempty"`
	Position   *PositionResponse   `json:"position,omitempty"`
	Location   *LocationResponse   `json:"location,omitempty"`

	EmploymentType      string     `json:"employment_type"`
	EmploymentTypeLabel string     `json:"employment_type_label"`
	HireDate            string     `json:"hire_date"`
	TerminationDate     *string    `json:"termination_date,omitempty"`
	YearsOfService      float64    `json:"years_of_service"`
	HourlyRate          string     `json:"hourly_rate"`
	WeeklyHours         string     `json:"weekly_hours"`
	IsActive            bool       `json:"is_active"`

	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`
	Notes                        string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse   `json:"employees"`
	Total     int                  `json:"total"`
	Filters   []filter.FieldContext `json:"filters"`
}
