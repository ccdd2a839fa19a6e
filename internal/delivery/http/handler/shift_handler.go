package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/schedule"
	"medshift-scheduler/internal/usecase"
	"medshift-scheduler/pkg/response"
	"medshift-scheduler/pkg/validator"
)

type ShiftHandler struct {
	shiftUsecase usecase.ShiftUsecase
	validator    *validator.CustomValidator
}

func NewShiftHandler(shiftUsecase usecase.ShiftUsecase, validator *validator.CustomValidator) *ShiftHandler {
	return &ShiftHandler{
		shiftUsecase: shiftUsecase,
		validator:    validator,
	}
}

// writeShiftError maps domain errors shared by create, update and assign
// to HTTP responses. Returns false when the error was not recognized.
func writeShiftError(w http.ResponseWriter, err error) bool {
	var fieldErrs schedule.FieldErrors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(w, fieldErrs)
		return true
	}

	var conflict *usecase.ShiftConflictError
	if errors.As(err, &conflict) {
		response.Conflict(w, "Shift overlaps an existing shift for this employee", map[string]uint{
			"conflicting_shift_id": conflict.ConflictingShiftID,
		})
		return true
	}

	switch err {
	case usecase.ErrShiftNotFound:
		response.NotFound(w, "Shift not found")
	case usecase.ErrInvalidDatetime:
		response.Error(w, http.StatusBadRequest, "Invalid datetime, expected RFC3339", nil)
	case usecase.ErrLocationNotFound:
		response.Error(w, http.StatusBadRequest, "Location not found", nil)
	case usecase.ErrPositionNotFound:
		response.Error(w, http.StatusBadRequest, "Position not found", nil)
	case usecase.ErrEmployeeNotFound:
		response.Error(w, http.StatusBadRequest, "Employee not found", nil)
	case usecase.ErrEmployeeInactive:
		response.Error(w, http.StatusConflict, "Employee is inactive", nil)
	case usecase.ErrEmployeeUnavailable:
		response.Conflict(w, "Employee is unavailable during this shift", nil)
	default:
		return false
	}
	return true
}

func (h *ShiftHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	shift, err := h.shiftUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		if !writeShiftError(w, err) {
			response.InternalServerError(w, "Failed to create shift")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Shift created successfully", shift)
}

func (h *ShiftHandler) GetShift(w http.ResponseWriter, r *http.Request) {
	shiftID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shift ID", nil)
		return
	}

	shift, err := h.shiftUsecase.Get(r.Context(), shiftID)
	if err != nil {
		if err == usecase.ErrShiftNotFound {
			response.NotFound(w, "Shift not found")
			return
		}
		response.InternalServerError(w, "Failed to get shift")
		return
	}

	response.Success(w, http.StatusOK, "Shift retrieved successfully", shift)
}

func (h *ShiftHandler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftUsecase.List(r.Context(), r.URL.Query())
	if err != nil {
		response.InternalServerError(w, "Failed to get shifts")
		return
	}

	response.Success(w, http.StatusOK, "Shifts retrieved successfully", shifts)
}

func (h *ShiftHandler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shiftID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shift ID", nil)
		return
	}

	var req dto.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	shift, err := h.shiftUsecase.Update(r.Context(), actorFromContext(r), shiftID, &req)
	if err != nil {
		if !writeShiftError(w, err) {
			response.InternalServerError(w, "Failed to update shift")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shift updated successfully", shift)
}

func (h *ShiftHandler) UpdateShiftStatus(w http.ResponseWriter, r *http.Request) {
	shiftID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shift ID", nil)
		return
	}

	var req dto.UpdateShiftStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	shift, err := h.shiftUsecase.SetStatus(r.Context(), actorFromContext(r), shiftID, &req)
	if err != nil {
		switch err {
		case usecase.ErrShiftNotFound:
			response.NotFound(w, "Shift not found")
		case usecase.ErrInvalidShiftStatus:
			response.Error(w, http.StatusBadRequest, "Invalid shift status", nil)
		default:
			response.InternalServerError(w, "Failed to update shift status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shift status updated successfully", shift)
}

func (h *ShiftHandler) AssignShift(w http.ResponseWriter, r *http.Request) {
	shiftID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shift ID", nil)
		return
	}

	var req dto.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	shift, err := h.shiftUsecase.Assign(r.Context(), actorFromContext(r), shiftID, &req)
	if err != nil {
		if err == usecase.ErrShiftNotOpen {
			response.Conflict(w, "Shift is not open for assignment", nil)
			return
		}
		if !writeShiftError(w, err) {
			response.InternalServerError(w, "Failed to assign shift")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shift assigned successfully", shift)
}

func (h *ShiftHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid shift ID", nil)
		return
	}

	if err := h.shiftUsecase.Delete(r.Context(), actorFromContext(r), shiftID); err != nil {
		switch err {
		case usecase.ErrShiftNotFound:
			response.NotFound(w, "Shift not found")
		default:
			response.InternalServerError(w, "Failed to delete shift")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shift deleted successfully", nil)
}
