package converter

import (
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
)

// DepartmentToResponse converts a Department entity to its DTO. Pass the
// active-employee count when the caller has it; zero otherwise.
func DepartmentToResponse(department *entity.Department, employeeCount int64) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	resp := &dto.DepartmentResponse{
		ID:             department.ID,
		Name:           department.Name,
		Code:           department.Code,
		Description:    department.Description,
		ManagerID:      department.ManagerID,
		IsActive:       department.IsActive,
		PhoneExtension: department.PhoneExtension,
		EmployeeCount:  employeeCount,
		CreatedAt:      department.CreatedAt,
		UpdatedAt:      department.UpdatedAt,
	}

	if department.Manager != nil {
		resp.ManagerName = department.Manager.FullName()
	}
	if department.EffectiveFrom != nil {
		formatted := department.EffectiveFrom.Format("2006-01-02")
		resp.EffectiveFrom = &formatted
	}
	if department.EffectiveTo != nil {
		formatted := department.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &formatted
	}

	return resp
}

func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i], 0)
	}
	return responses
}

// PositionToResponse converts a Position entity to its DTO.
func PositionToResponse(position *entity.Position, employeeCount int64) *dto.PositionResponse {
	if position == nil {
		return nil
	}

	return &dto.PositionResponse{
		ID:                    position.ID,
		Title:                 position.Title,
		Code:                  position.Code,
		Description:           position.Description,
		RequiresCertification: position.RequiresCertification,
		MinHourlyRate:         position.MinHourlyRate.StringFixed(2),
		MaxHourlyRate:         position.MaxHourlyRate.StringFixed(2),
		RateRange:             position.RateRange(),
		IsActive:              position.IsActive,
		EmployeeCount:         employeeCount,
		CreatedAt:             position.CreatedAt,
		UpdatedAt:             position.UpdatedAt,
	}
}

func PositionsToResponses(positions []entity.Position) []dto.PositionResponse {
	responses := make([]dto.PositionResponse, len(positions))
	for i := range positions {
		responses[i] = *PositionToResponse(&positions[i], 0)
	}
	return responses
}

// LocationToResponse converts a Location entity to its DTO.
func LocationToResponse(location *entity.Location, employeeCount int64) *dto.LocationResponse {
	if location == nil {
		return nil
	}

	resp := &dto.LocationResponse{
		ID:            location.ID,
		Name:          location.Name,
		Code:          location.Code,
		Address:       location.Address,
		City:          location.City,
		PostalCode:    location.PostalCode,
		Country:       location.Country,
		FullAddress:   location.FullAddress(),
		Phone:         location.Phone,
		Email:         location.Email,
		ManagerID:     location.ManagerID,
		IsActive:      location.IsActive,
		Notes:         location.Notes,
		LaborBudget:   location.LaborBudget.StringFixed(2),
		EmployeeCount: employeeCount,
		CreatedAt:     location.CreatedAt,
		UpdatedAt:     location.UpdatedAt,
	}

	if location.Manager != nil {
		resp.ManagerName = location.Manager.FullName()
	}
	if location.Latitude != nil {
		formatted := location.Latitude.String()
		resp.Latitude = &formatted
	}
	if location.Longitude != nil {
		formatted := location.Longitude.String()
		resp.Longitude = &formatted
	}

	return resp
}

func LocationsToResponses(locations []entity.Location) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		responses[i] = *LocationToResponse(&locations[i], 0)
	}
	return responses
}
