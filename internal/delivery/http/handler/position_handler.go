package handler

import (
	"encoding/json"
	"net/http"

	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/usecase"
	"medshift-scheduler/pkg/response"
	"medshift-scheduler/pkg/validator"
)

type PositionHandler struct {
	positionUsecase usecase.PositionUsecase
	validator       *validator.CustomValidator
}

func NewPositionHandler(positionUsecase usecase.PositionUsecase, validator *validator.CustomValidator) *PositionHandler {
	return &PositionHandler{
		positionUsecase: positionUsecase,
		validator:       validator,
	}
}

func (h *PositionHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	position, err := h.positionUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrPositionCodeExists:
			response.Error(w, http.StatusConflict, "Position code already exists", nil)
		case usecase.ErrInvalidRateRange:
			response.Error(w, http.StatusBadRequest, "Minimum rate cannot exceed maximum rate", nil)
		case usecase.ErrInvalidDecimal:
			response.Error(w, http.StatusBadRequest, "Invalid decimal value", nil)
		default:
			response.InternalServerError(w, "Failed to create position")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Position created successfully", position)
}

func (h *PositionHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid position ID", nil)
		return
	}

	position, err := h.positionUsecase.Get(r.Context(), positionID)
	if err != nil {
		if err == usecase.ErrPositionNotFound {
			response.NotFound(w, "Position not found")
			return
		}
		response.InternalServerError(w, "Failed to get position")
		return
	}

	response.Success(w, http.StatusOK, "Position retrieved successfully", position)
}

func (h *PositionHandler) GetAllPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.positionUsecase.List(r.Context(), r.URL.Query())
	if err != nil {
		response.InternalServerError(w, "Failed to get positions")
		return
	}

	response.Success(w, http.StatusOK, "Positions retrieved successfully", positions)
}

func (h *PositionHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid position ID", nil)
		return
	}

	var req dto.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	position, err := h.positionUsecase.Update(r.Context(), actorFromContext(r), positionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPositionNotFound:
			response.NotFound(w, "Position not found")
		case usecase.ErrPositionCodeExists:
			response.Error(w, http.StatusConflict, "Position code already exists", nil)
		case usecase.ErrInvalidRateRange:
			response.Error(w, http.StatusBadRequest, "Minimum rate cannot exceed maximum rate", nil)
		case usecase.ErrInvalidDecimal:
			response.Error(w, http.StatusBadRequest, "Invalid decimal value", nil)
		default:
			response.InternalServerError(w, "Failed to update position")
		}
		return
	}

	response.Success(w, http.StatusOK, "Position updated successfully", position)
}

func (h *PositionHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid position ID", nil)
		return
	}

	if err := h.positionUsecase.Delete(r.Context(), actorFromContext(r), positionID); err != nil {
		switch err {
		case usecase.ErrPositionNotFound:
			response.NotFound(w, "Position not found")
		case usecase.ErrPositionHasEmployees:
			response.Conflict(w, "Position still has active employees", nil)
		default:
			response.InternalServerError(w, "Failed to delete position")
		}
		return
	}

	response.Success(w, http.StatusOK, "Position deleted successfully", nil)
}
