package converter

import (
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
)

// EmployeeToResponse converts an Employee entity to EmployeeResponse DTO.
// Expects User, Department, Position and Location to be preloaded.
func EmployeeToResponse(employee *entity.Employee) *dto.EmployeeResponse {
	if employee == nil {
		return nil
	}

	resp := &dto.EmployeeResponse{
		ID:             employee.ID,
		EmployeeNumber: employee.EmployeeNumber,
		Email:          employee.User.Email,
		FirstName:      employee.User.FirstName,
		LastName:       employee.User.LastName,
		FullName:       employee.User.FullName(),
		Phone:          employee.User.Phone,

		EmploymentType:      string(employee.EmploymentType),
		EmploymentTypeLabel: employee.EmploymentType.Label(),
		HireDate:            employee.HireDate.Format("2006-01-02"),
		YearsOfService:      employee.YearsOfService(),
		HourlyRate:          employee.HourlyRate.StringFixed(2),
		WeeklyHours:         employee.WeeklyHours.StringFixed(2),
		IsActive:            employee.IsActive,

		EmergencyContactName:         employee.EmergencyContactName,
		EmergencyContactPhone:        employee.EmergencyContactPhone,
		EmergencyContactRelationship: employee.EmergencyContactRelationship,
		Notes:                        employee.Notes,

		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}

	if employee.TerminationDate != nil {
		formatted := employee.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &formatted
	}

	if employee.Department.ID != 0 {
		resp.Department = DepartmentToResponse(&employee.Department, 0)
	}
	if employee.Position.ID != 0 {
		resp.Position = PositionToResponse(&employee.Position, 0)
	}
	if employee.Location.ID != 0 {
		resp.Location = LocationToResponse(&employee.Location, 0)
	}

	return resp
}

// EmployeesToResponses converts a slice of Employee entities to DTOs.
func EmployeesToResponses(employees []entity.Employee) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *EmployeeToResponse(&employees[i])
	}
	return responses
}
