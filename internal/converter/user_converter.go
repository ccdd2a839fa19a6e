package converter

import (
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Phone:     user.Phone,
		Role:      user.Role.RoleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Employee != nil {
		resp.Employee = EmployeeToResponse(user.Employee)
	}

	return resp
}
