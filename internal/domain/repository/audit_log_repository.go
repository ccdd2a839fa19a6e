package repository

import (
	"medshift-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	List(db *gorm.DB, limit int) ([]entity.AuditLog, error)
}
