package converter

import (
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
)

// ShiftToResponse converts a Shift entity to its DTO. Expects Employee.User,
// Location and Position to be preloaded.
func ShiftToResponse(shift *entity.Shift) *dto.ShiftResponse {
	if shift == nil {
		return nil
	}

	resp := &dto.ShiftResponse{
		ID:            shift.ID,
		EmployeeID:    shift.EmployeeID,
		LocationID:    shift.LocationID,
		LocationName:  shift.Location.Name,
		PositionID:    shift.PositionID,
		PositionTitle: shift.Position.Title,
		StartDatetime: shift.StartDatetime,
		EndDatetime:   shift.EndDatetime,
		BreakDuration: shift.BreakDuration,
		WorkedHours:   shift.WorkedHours(),
		Status:        string(shift.Status),
		IsOpen:        shift.IsOpen(),
		Notes:         shift.Notes,
		CreatedAt:     shift.CreatedAt,
		UpdatedAt:     shift.UpdatedAt,
	}

	if shift.Employee != nil {
		resp.EmployeeName = shift.Employee.User.FullName()
	}

	return resp
}

func ShiftsToResponses(shifts []entity.Shift) []dto.ShiftResponse {
	responses := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *ShiftToResponse(&shifts[i])
	}
	return responses
}

// UnavailabilityToResponse converts an Unavailability entity to its DTO.
func UnavailabilityToResponse(unavailability *entity.Unavailability) *dto.UnavailabilityResponse {
	if unavailability == nil {
		return nil
	}

	return &dto.UnavailabilityResponse{
		ID:                unavailability.ID,
		EmployeeID:        unavailability.EmployeeID,
		EmployeeName:      unavailability.Employee.User.FullName(),
		StartDatetime:     unavailability.StartDatetime,
		EndDatetime:       unavailability.EndDatetime,
		DurationDays:      unavailability.DurationDays(),
		Reason:            string(unavailability.Reason),
		IsRecurring:       unavailability.IsRecurring,
		RecurrencePattern: unavailability.RecurrencePattern,
		Notes:             unavailability.Notes,
		CreatedAt:         unavailability.CreatedAt,
		UpdatedAt:         unavailability.UpdatedAt,
	}
}

func UnavailabilitiesToResponses(unavailabilities []entity.Unavailability) []dto.UnavailabilityResponse {
	responses := make([]dto.UnavailabilityResponse, len(unavailabilities))
	for i := range unavailabilities {
		responses[i] = *UnavailabilityToResponse(&unavailabilities[i])
	}
	return responses
}

// ShiftTemplateToResponse converts a ShiftTemplate entity to its DTO.
func ShiftTemplateToResponse(template *entity.ShiftTemplate) *dto.ShiftTemplateResponse {
	if template == nil {
		return nil
	}

	return &dto.ShiftTemplateResponse{
		ID:            template.ID,
		Name:          template.Name,
		LocationID:    template.LocationID,
		LocationName:  template.Location.Name,
		PositionID:    template.PositionID,
		PositionTitle: template.Position.Title,
		StartTime:     template.StartTime,
		EndTime:       template.EndTime,
		BreakDuration: template.BreakDuration,
		DaysOfWeek:    template.Weekdays(),
		IsActive:      template.IsActive,
		CreatedAt:     template.CreatedAt,
		UpdatedAt:     template.UpdatedAt,
	}
}

func ShiftTemplatesToResponses(templates []entity.ShiftTemplate) []dto.ShiftTemplateResponse {
	responses := make([]dto.ShiftTemplateResponse, len(templates))
	for i := range templates {
		responses[i] = *ShiftTemplateToResponse(&templates[i])
	}
	return responses
}

// SwapToResponse converts a ShiftSwapRequest entity to its DTO.
func SwapToResponse(request *entity.ShiftSwapRequest) *dto.ShiftSwapResponse {
	if request == nil {
		return nil
	}

	return &dto.ShiftSwapResponse{
		ID:                     request.ID,
		ShiftID:                request.ShiftID,
		Shift:                  ShiftToResponse(&request.Shift),
		RequestingEmployeeID:   request.RequestingEmployeeID,
		RequestingEmployeeName: request.RequestingEmployee.User.FullName(),
		TargetEmployeeID:       request.TargetEmployeeID,
		TargetEmployeeName:     request.TargetEmployee.User.FullName(),
		Status:                 string(request.Status),
		RequestMessage:         request.RequestMessage,
		ResponseMessage:        request.ResponseMessage,
		ApprovedBy:             request.ApprovedBy,
		ApprovedAt:             request.ApprovedAt,
		CreatedAt:              request.CreatedAt,
		UpdatedAt:              request.UpdatedAt,
	}
}

func SwapsToResponses(requests []entity.ShiftSwapRequest) []dto.ShiftSwapResponse {
	responses := make([]dto.ShiftSwapResponse, len(requests))
	for i := range requests {
		responses[i] = *SwapToResponse(&requests[i])
	}
	return responses
}
