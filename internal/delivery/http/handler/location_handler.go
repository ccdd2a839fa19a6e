package handler

import (
	"encoding/json"
	"net/http"

	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/usecase"
	"medshift-scheduler/pkg/response"
	"medshift-scheduler/pkg/validator"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrLocationCodeExists:
			response.Error(w, http.StatusConflict, "Location code already exists", nil)
		case usecase.ErrManagerNotFound:
			response.Error(w, http.StatusBadRequest, "Manager not found", nil)
		case usecase.ErrInvalidDecimal:
			response.Error(w, http.StatusBadRequest, "Invalid decimal value", nil)
		default:
			response.InternalServerError(w, "Failed to create location")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Location created successfully", location)
}

func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	location, err := h.locationUsecase.Get(r.Context(), locationID)
	if err != nil {
		if err == usecase.ErrLocationNotFound {
			response.NotFound(w, "Location not found")
			return
		}
		response.InternalServerError(w, "Failed to get location")
		return
	}

	response.Success(w, http.StatusOK, "Location retrieved successfully", location)
}

func (h *LocationHandler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationUsecase.List(r.Context(), r.URL.Query())
	if err != nil {
		response.InternalServerError(w, "Failed to get locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	var req dto.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.Update(r.Context(), actorFromContext(r), locationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationCodeExists:
			response.Error(w, http.StatusConflict, "Location code already exists", nil)
		case usecase.ErrManagerNotFound:
			response.Error(w, http.StatusBadRequest, "Manager not found", nil)
		case usecase.ErrInvalidDecimal:
			response.Error(w, http.StatusBadRequest, "Invalid decimal value", nil)
		default:
			response.InternalServerError(w, "Failed to update location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location updated successfully", location)
}

func (h *LocationHandler) DeactivateLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	location, err := h.locationUsecase.Deactivate(r.Context(), actorFromContext(r), locationID)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationAlreadyInactive:
			response.Error(w, http.StatusConflict, "Location is already inactive", nil)
		default:
			response.InternalServerError(w, "Failed to deactivate location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location deactivated successfully", location)
}
