package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmploymentType is the contractual type of an employee.
type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "FT"
	EmploymentPartTime  EmploymentType = "PT"
	EmploymentContract  EmploymentType = "CT"
	EmploymentTemporary EmploymentType = "TM"
	EmploymentIntern    EmploymentType = "IN"
)

// EmploymentTypes lists every valid employment type, in display order.
var EmploymentTypes = []EmploymentType{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentContract,
	EmploymentTemporary,
	EmploymentIntern,
}

func (t EmploymentType) Valid() bool {
	for _, known := range EmploymentTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t EmploymentType) Label() string {
	switch t {
	case EmploymentFullTime:
		return "Full-time"
	case EmploymentPartTime:
		return "Part-time"
	case EmploymentContract:
		return "Contract"
	case EmploymentTemporary:
		return "Temporary"
	case EmploymentIntern:
		return "Intern"
	default:
		return string(t)
	}
}

// Employee is the employment profile linked to a User account.
type Employee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	EmployeeNumber string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"employee_number"`
	DepartmentID   uint           `gorm:"not null;index:idx_employees_department_active" json:"department_id"`
	PositionID     uint           `gorm:"not null;index:idx_employees_position_active" json:"position_id"`
	LocationID     uint           `gorm:"not null;index" json:"location_id"`
	EmploymentType EmploymentType `gorm:"type:varchar(2);not null;default:'FT'" json:"employment_type"`
	HireDate       time.Time      `gorm:"type:date;not null" json:"hire_date"`
	TerminationDate *time.Time    `gorm:"type:date" json:"termination_date,omitempty"`
	IsActive       bool           `gorm:"not null;default:true;index:idx_employees_department_active;index:idx_employees_position_active" json:"is_active"`

	// Compensation
	HourlyRate  decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"hourly_rate"`
	WeeklyHours decimal.Decimal `gorm:"type:decimal(5,2);not null;default:42.00" json:"weekly_hours"`

	// Emergency contact
	EmergencyContactName         string `gorm:"type:varchar(200)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `gorm:"type:varchar(50)" json:"emergency_contact_relationship,omitempty"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Position   Position   `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Location   Location   `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Shifts     []Shift    `gorm:"foreignKey:EmployeeID" json:"shifts,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// Deactivate marks the employee inactive as of the given date (now if zero).
func (e *Employee) Deactivate(terminationDate time.Time) {
	if terminationDate.IsZero() {
		terminationDate = time.Now()
	}
	e.IsActive = false
	e.TerminationDate = &terminationDate
}

// Reactivate clears the termination and marks the employee active again.
func (e *Employee) Reactivate() {
	e.IsActive = true
	e.TerminationDate = nil
}

// YearsOfService returns the length of employment in years, using the
// termination date when set.
func (e *Employee) YearsOfService() float64 {
	end := time.Now()
	if e.TerminationDate != nil {
		end = *e.TerminationDate
	}
	days := end.Sub(e.HireDate).Hours() / 24
	return float64(int(days/365.25*10+0.5)) / 10
}
