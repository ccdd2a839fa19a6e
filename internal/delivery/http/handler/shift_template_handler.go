package handler

import (
	"encoding/json"
	"net/http"

	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/usecase"
	"medshift-scheduler/pkg/response"
	"medshift-scheduler/pkg/validator"
)

type ShiftTemplateHandler struct {
	templateUsecase usecase.ShiftTemplateUsecase
	validator       *validator.CustomValidator
}

func NewShiftTemplateHandler(templateUsecase usecase.ShiftTemplateUsecase, validator *validator.CustomValidator) *ShiftTemplateHandler {
	return &ShiftTemplateHandler{
		templateUsecase: templateUsecase,
		validator:       validator,
	}
}

func (h *ShiftTemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShiftTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.templateUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.Error(w, http.StatusBadRequest, "Location not found", nil)
		case usecase.ErrPositionNotFound:
			response.Error(w, http.StatusBadRequest, "Position not found", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, expected HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to create shift template")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Shift template created successfully", template)
}

func (h *ShiftTemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	template, err := h.templateUsecase.Get(r.Context(), templateID)
	if err != nil {
		if err == usecase.ErrTemplateNotFound {
			response.NotFound(w, "Shift template not found")
			return
		}
		response.InternalServerError(w, "Failed to get shift template")
		return
	}

	response.Success(w, http.StatusOK, "Shift template retrieved successfully", template)
}

func (h *ShiftTemplateHandler) GetAllTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get shift templates")
		return
	}

	response.Success(w, http.StatusOK, "Shift templates retrieved successfully", templates)
}

func (h *ShiftTemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	var req dto.UpdateShiftTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.templateUsecase.Update(r.Context(), actorFromContext(r), templateID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Shift template not found")
		case usecase.ErrLocationNotFound:
			response.Error(w, http.StatusBadRequest, "Location not found", nil)
		case usecase.ErrPositionNotFound:
			response.Error(w, http.StatusBadRequest, "Position not found", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, expected HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to update shift template")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shift template updated successfully", template)
}

func (h *ShiftTemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	if err := h.templateUsecase.Delete(r.Context(), actorFromContext(r), templateID); err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Shift template not found")
		default:
			response.InternalServerError(w, "Failed to delete shift template")
		}
		return
	}

	response.Success(w, http.StatusOK, "Shift template deleted successfully", nil)
}

func (h *ShiftTemplateHandler) GenerateShifts(w http.ResponseWriter, r *http.Request) {
	templateID, err := parseUintVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	var req dto.GenerateShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.templateUsecase.GenerateShifts(r.Context(), actorFromContext(r), templateID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTemplateNotFound:
			response.NotFound(w, "Shift template not found")
		case usecase.ErrTemplateInactive:
			response.Conflict(w, "Shift template is inactive", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "End date must not be before start date", nil)
		case usecase.ErrGenerationTooLarge:
			response.Error(w, http.StatusBadRequest, "Date range exceeds the generation limit", nil)
		case usecase.ErrEmployeeNotFound:
			response.Error(w, http.StatusBadRequest, "Employee not found", nil)
		case usecase.ErrEmployeeInactive:
			response.Error(w, http.StatusConflict, "Employee is inactive", nil)
		default:
			response.InternalServerError(w, "Failed to generate shifts")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Shifts generated successfully", result)
}
