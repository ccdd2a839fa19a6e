package dto

import (
	"time"

	"medshift-scheduler/internal/filter"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Code        string `json:"code" validate:"required,min=2,max=20"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	City        string `json:"city" validate:"omitempty,max=100"`
	PostalCode  string `json:"postal_code" validate:"omitempty,max=20"`
	Country     string `json:"country" validate:"omitempty,len=2"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	ManagerID   string `json:"manager_id" validate:"omitempty,uuid"`
	Notes       string `json:"notes" validate:"omitempty"`
	LaborBudget string `json:"labor_budget" validate:"omitempty"`
	Latitude    string `json:"latitude" validate:"omitempty"`
	Longitude   string `json:"longitude" validate:"omitempty"`
}

type UpdateLocationRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
	Code        string `json:"code" validate:"omitempty,min=2,max=20"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	City        string `json:"city" validate:"omitempty,max=100"`
	PostalCode  string `json:"postal_code" validate:"omitempty,max=20"`
	Country     string `json:"country" validate:"omitempty,len=2"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	ManagerID   string `json:"manager_id" validate:"omitempty,uuid"`
	Notes       string `json:"notes" validate:"omitempty"`
	LaborBudget string `json:"labor_budget" validate:"omitempty"`
	Latitude    string `json:"latitude" validate:"omitempty"`
	Longitude   string `json:"longitude" validate:"omitempty"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type LocationResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Code          string     `json:"code"`
	Address       string     `json:"address,omitempty"`
	City          string     `json:"city,omitempty"`
	PostalCode    string     `json:"postal_code,omitempty"`
	Country       string     `json:"country,omitempty"`
	FullAddress   string     `json:"full_address,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	ManagerID     *uuid.UUID `json:"manager_id,omitempty"`
	ManagerName   string     `json:"manager_name,omitempty"`
	IsActive      bool       `json:"is_active"`
	Notes         string     `json:"notes,omitempty"`
	LaborBudget   string     `json:"labor_budget"`
	Latitude      *string    `json:"latitude,omitempty"`
	Longitude     *string    `json:"longitude,omitempty"`
	EmployeeCount int64      `json:"employee_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type LocationListResponse struct {
	Locations []LocationResponse    `json:"locations"`
	Total     int                   `json:"total"`
	Filters   []filter.FieldContext `json:"filters"`
}
