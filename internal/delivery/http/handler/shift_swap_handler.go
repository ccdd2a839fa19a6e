package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/delivery/http/middleware"
	"medshift-scheduler/internal/usecase"
	"medshift-scheduler/pkg/response"
	"medshift-scheduler/pkg/validator"
)

type ShiftSwapHandler struct {
	swapUsecase usecase.ShiftSwapUsecase
	validator   *validator.CustomValidator
}

func NewShiftSwapHandler(swapUsecase usecase.ShiftSwapUsecase, validator *validator.CustomValidator) *ShiftSwapHandler {
	return &ShiftSwapHandler{
		swapUsecase: swapUsecase,
		validator:   validator,
	}
}

func (h *ShiftSwapHandler) CreateSwap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	swap, err := h.swapUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrShiftNotFound:
			response.Error(w, http.StatusBadRequest, "Shift not found", nil)
		case usecase.ErrEmployeeNotFound:
			response.Error(w, http.StatusBadRequest, "Employee not found", nil)
		case usecase.ErrEmployeeInactive:
			response.Error(w, http.StatusConflict, "Target employee is inactive", nil)
		case usecase.ErrSwapSelfTarget:
			response.Error(w, http.StatusBadRequest, "Cannot request a swap with yourself", nil)
		case usecase.ErrSwapNotShiftOwner:
			response.Forbidden(w, "You can only offer your own shifts")
		default:
			response.InternalServerError(w, "Failed to create swap request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Swap request created successfully", swap)
}

func (h *ShiftSwapHandler) GetSwap(w http.ResponseWriter, r *http.Request) {
	swapID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid swap ID", nil)
		return
	}

	swap, err := h.swapUsecase.Get(r.Context(), swapID)
	if err != nil {
		if err == usecase.ErrSwapNotFound {
			response.NotFound(w, "Swap request not found")
			return
		}
		response.InternalServerError(w, "Failed to get swap request")
		return
	}

	response.Success(w, http.StatusOK, "Swap request retrieved successfully", swap)
}

func (h *ShiftSwapHandler) GetMySwaps(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	swaps, err := h.swapUsecase.ListMine(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrEmployeeNotFound {
			response.NotFound(w, "Employee profile not found")
			return
		}
		response.InternalServerError(w, "Failed to get swap requests")
		return
	}

	response.Success(w, http.StatusOK, "Swap requests retrieved successfully", swaps)
}

func (h *ShiftSwapHandler) GetPendingSwaps(w http.ResponseWriter, r *http.Request) {
	swaps, err := h.swapUsecase.ListPending(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get swap requests")
		return
	}

	response.Success(w, http.StatusOK, "Swap requests retrieved successfully", swaps)
}

func (h *ShiftSwapHandler) RespondSwap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	swapID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid swap ID", nil)
		return
	}

	var req dto.RespondSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	swap, err := h.swapUsecase.Respond(r.Context(), userID, swapID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSwapNotFound:
			response.NotFound(w, "Swap request not found")
		case usecase.ErrSwapNotPending:
			response.Conflict(w, "Swap request is no longer pending", nil)
		case usecase.ErrSwapNotTargetEmployee:
			response.Forbidden(w, "Only the targeted employee can respond")
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee profile not found")
		default:
			response.InternalServerError(w, "Failed to respond to swap request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Swap response recorded successfully", swap)
}

func (h *ShiftSwapHandler) ReviewSwap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	swapID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid swap ID", nil)
		return
	}

	var req dto.ReviewSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	swap, err := h.swapUsecase.Review(r.Context(), userID, swapID, &req)
	if err != nil {
		var conflict *usecase.ShiftConflictError
		if errors.As(err, &conflict) {
			response.Conflict(w, "Target employee has a conflicting shift", map[string]uint{
				"conflicting_shift_id": conflict.ConflictingShiftID,
			})
			return
		}
		switch err {
		case usecase.ErrSwapNotFound:
			response.NotFound(w, "Swap request not found")
		case usecase.ErrSwapNotAccepted:
			response.Conflict(w, "Swap request has not been accepted by the target employee", nil)
		case usecase.ErrShiftNotFound:
			response.Error(w, http.StatusConflict, "Shift no longer exists", nil)
		case usecase.ErrEmployeeUnavailable:
			response.Conflict(w, "Target employee is unavailable during this shift", nil)
		default:
			response.InternalServerError(w, "Failed to review swap request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Swap request reviewed successfully", swap)
}
