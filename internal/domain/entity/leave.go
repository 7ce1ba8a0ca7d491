package entity

import (
	"time"

	"github.com/openstock/openstock-api/internal/domain/enum"
)

// LeaveType is a configured category of leave (vacation, sick, ...).
type LeaveType struct {
	ID          string    `gorm:"size:64;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	DefaultDays int       `gorm:"default:0" json:"default_days"`
	IsPaid      bool      `gorm:"default:true" json:"is_paid"`
	Color       string    `gorm:"size:20;default:#6B7280" json:"color"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// LeaveRequest is an employee's request for a span of leave days.
type LeaveRequest struct {
	ID          string           `gorm:"size:64;primaryKey" json:"id"`
	EmployeeID  string           `gorm:"size:64;not null;index" json:"employee_id"`
	LeaveTypeID string           `gorm:"size:64;not null" json:"leave_type_id"`
	StartDate   string           `gorm:"size:10;not null" json:"start_date"`
	EndDate     string           `gorm:"size:10;not null" json:"end_date"`
	TotalDays   float64          `gorm:"not null" json:"total_days"`
	Reason      *string          `gorm:"type:text" json:"reason,omitempty"`
	Status      enum.LeaveStatus `gorm:"size:20;default:pending" json:"status"`
	ApprovedBy  *string          `gorm:"size:64" json:"approved_by,omitempty"`
	ApprovedAt  *time.Time       `json:"approved_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Employee  *Employee  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID" json:"leave_type,omitempty"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
