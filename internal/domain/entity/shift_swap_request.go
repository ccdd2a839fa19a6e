package entity

import (
	"time"

	"github.com/google/uuid"
)

// SwapStatus is the state of a shift swap request.
type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "pending"
	SwapStatusAccepted SwapStatus = "accepted_by_employee"
	SwapStatusDeclined SwapStatus = "declined_by_employee"
	SwapStatusApproved SwapStatus = "approved"
	SwapStatusRejected SwapStatus = "rejected"
)

// ShiftSwapRequest asks a target employee to take over the requester's shift.
// The target accepts or declines; a manager then approves or rejects.
type ShiftSwapRequest struct {
	ID                    uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ShiftID               uint       `gorm:"not null;index" json:"shift_id"`
	RequestingEmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"requesting_employee_id"`
	TargetEmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"target_employee_id"`
	Status                SwapStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	RequestMessage        string     `gorm:"type:text" json:"request_message,omitempty"`
	ResponseMessage       string     `gorm:"type:text" json:"response_message,omitempty"`
	ApprovedBy            *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt            *time.Time `json:"approved_at,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Shift              Shift    `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
	RequestingEmployee Employee `gorm:"foreignKey:RequestingEmployeeID" json:"requesting_employee,omitempty"`
	TargetEmployee     Employee `gorm:"foreignKey:TargetEmployeeID" json:"target_employee,omitempty"`
}

func (ShiftSwapRequest) TableName() string {
	return "shift_swap_requests"
}

func (r *ShiftSwapRequest) IsPending() bool {
	return r.Status == SwapStatusPending
}

func (r *ShiftSwapRequest) IsAccepted() bool {
	return r.Status == SwapStatusAccepted
}
