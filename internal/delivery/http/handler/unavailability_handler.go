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

type UnavailabilityHandler struct {
	unavailabilityUsecase usecase.UnavailabilityUsecase
	validator             *validator.CustomValidator
}

func NewUnavailabilityHandler(unavailabilityUsecase usecase.UnavailabilityUsecase, validator *validator.CustomValidator) *UnavailabilityHandler {
	return &UnavailabilityHandler{
		unavailabilityUsecase: unavailabilityUsecase,
		validator:             validator,
	}
}

func writeUnavailabilityError(w http.ResponseWriter, err error) bool {
	var fieldErrs schedule.FieldErrors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(w, fieldErrs)
		return true
	}

	var conflict *usecase.UnavailabilityConflictError
	if errors.As(err, &conflict) {
		response.Conflict(w, "Period overlaps an existing unavailability", map[string]uint{
			"conflicting_id": conflict.ConflictingID,
		})
		return true
	}

	switch err {
	case usecase.ErrUnavailabilityNotFound:
		response.NotFound(w, "Unavailability not found")
	case usecase.ErrEmployeeNotFound:
		response.Error(w, http.StatusBadRequest, "Employee not found", nil)
	case usecase.ErrInvalidDatetime:
		response.Error(w, http.StatusBadRequest, "Invalid datetime, expected RFC3339", nil)
	case usecase.ErrInvalidReason:
		response.Error(w, http.StatusBadRequest, "Invalid reason", nil)
	default:
		return false
	}
	return true
}

func (h *UnavailabilityHandler) CreateUnavailability(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUnavailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	unavailability, err := h.unavailabilityUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		if !writeUnavailabilityError(w, err) {
			response.InternalServerError(w, "Failed to create unavailability")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Unavailability created successfully", unavailability)
}

func (h *UnavailabilityHandler) GetUnavailability(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid unavailability ID", nil)
		return
	}

	unavailability, err := h.unavailabilityUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrUnavailabilityNotFound {
			response.NotFound(w, "Unavailability not found")
			return
		}
		response.InternalServerError(w, "Failed to get unavailability")
		return
	}

	response.Success(w, http.StatusOK, "Unavailability retrieved successfully", unavailability)
}

func (h *UnavailabilityHandler) GetAllUnavailabilities(w http.ResponseWriter, r *http.Request) {
	unavailabilities, err := h.unavailabilityUsecase.List(r.Context(), r.URL.Query())
	if err != nil {
		response.InternalServerError(w, "Failed to get unavailabilities")
		return
	}

	response.Success(w, http.StatusOK, "Unavailabilities retrieved successfully", unavailabilities)
}

func (h *UnavailabilityHandler) UpdateUnavailability(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid unavailability ID", nil)
		return
	}

	var req dto.UpdateUnavailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	unavailability, err := h.unavailabilityUsecase.Update(r.Context(), actorFromContext(r), id, &req)
	if err != nil {
		if !writeUnavailabilityError(w, err) {
			response.InternalServerError(w, "Failed to update unavailability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Unavailability updated successfully", unavailability)
}

func (h *UnavailabilityHandler) DeleteUnavailability(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid unavailability ID", nil)
		return
	}

	if err := h.unavailabilityUsecase.Delete(r.Context(), actorFromContext(r), id); err != nil {
		switch err {
		case usecase.ErrUnavailabilityNotFound:
			response.NotFound(w, "Unavailability not found")
		default:
			response.InternalServerError(w, "Failed to delete unavailability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Unavailability deleted successfully", nil)
}
