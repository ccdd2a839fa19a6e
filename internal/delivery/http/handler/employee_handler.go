package handler

import (
	"encoding/json"
	"net/http"

	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/usecase"
	"medshift-scheduler/pkg/response"
	"medshift-scheduler/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
		validator:       validator,
	}
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.Create(r.Context(), actorFromContext(r), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrEmployeeNumberTaken:
			response.Error(w, http.StatusConflict, "Employee number already taken, please retry", nil)
		case usecase.ErrDepartmentNotFound:
			response.Error(w, http.StatusBadRequest, "Department not found", nil)
		case usecase.ErrPositionNotFound:
			response.Error(w, http.StatusBadRequest, "Position not found", nil)
		case usecase.ErrLocationNotFound:
			response.Error(w, http.StatusBadRequest, "Location not found", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrInvalidDecimal:
			response.Error(w, http.StatusBadRequest, "Invalid decimal value", nil)
		default:
			response.InternalServerError(w, "Failed to create employee")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Employee created successfully", employee)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	employee, err := h.employeeUsecase.Get(r.Context(), employeeID)
	if err != nil {
		if err == usecase.ErrEmployeeNotFound {
			response.NotFound(w, "Employee not found")
			return
		}
		response.InternalServerError(w, "Failed to get employee")
		return
	}

	response.Success(w, http.StatusOK, "Employee retrieved successfully", employee)
}

func (h *EmployeeHandler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeUsecase.List(r.Context(), r.URL.Query())
	if err != nil {
		response.InternalServerError(w, "Failed to get employees")
		return
	}

	response.Success(w, http.StatusOK, "Employees retrieved successfully", employees)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.Update(r.Context(), actorFromContext(r), employeeID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found")
		case usecase.ErrDepartmentNotFound:
			response.Error(w, http.StatusBadRequest, "Department not found", nil)
		case usecase.ErrPositionNotFound:
			response.Error(w, http.StatusBadRequest, "Position not found", nil)
		case usecase.ErrLocationNotFound:
			response.Error(w, http.StatusBadRequest, "Location not found", nil)
		case usecase.ErrInvalidDecimal:
			response.Error(w, http.StatusBadRequest, "Invalid decimal value", nil)
		default:
			response.InternalServerError(w, "Failed to update employee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Employee updated successfully", employee)
}

func (h *EmployeeHandler) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	var req dto.DeactivateEmployeeRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	employee, err := h.employeeUsecase.Deactivate(r.Context(), actorFromContext(r), employeeID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found")
		case usecase.ErrEmployeeAlreadyInactive:
			response.Error(w, http.StatusConflict, "Employee is already inactive", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to deactivate employee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Employee deactivated successfully", employee)
}

func (h *EmployeeHandler) ReactivateEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	employee, err := h.employeeUsecase.Reactivate(r.Context(), actorFromContext(r), employeeID)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found")
		case usecase.ErrEmployeeAlreadyActive:
			response.Error(w, http.StatusConflict, "Employee is already active", nil)
		default:
			response.InternalServerError(w, "Failed to reactivate employee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Employee reactivated successfully", employee)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	if err := h.employeeUsecase.Delete(r.Context(), actorFromContext(r), employeeID); err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found")
		default:
			response.InternalServerError(w, "Failed to delete employee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Employee deleted successfully", nil)
}
