package converter

import (
	"medshift-scheduler/internal/delivery/dto"
	"medshift-scheduler/internal/domain/entity"
)

// AuditLogsToResponses converts audit log entities to DTOs.
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = dto.AuditLogResponse{
			ID:        log.ID,
			Action:    log.Action,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		}
		if log.User != nil {
			responses[i].UserEmail = log.User.Email
		}
	}
	return responses
}
