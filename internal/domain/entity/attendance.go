package entity

import (
	"time"

	"github.com/openstock/openstock-api/internal/domain/enum"
)

// Attendance is one employee-day record. Clock times are plain HH:MM
// strings; a record is created on clock-in and completed on clock-out.
type Attendance struct {
	ID              string                `gorm:"size:64;primaryKey" json:"id"`
	EmployeeID      string                `gorm:"size:64;not null;index:idx_attendance_employee_date" json:"employee_id"`
	Date            string                `gorm:"size:10;not null;index:idx_attendance_employee_date" json:"date"`
	ClockIn         *string               `gorm:"size:5" json:"clock_in,omitempty"`
	ClockOut        *string               `gorm:"size:5" json:"clock_out,omitempty"`
	BreakMinutes    int                   `gorm:"default:0" json:"break_minutes"`
	OvertimeMinutes int                   `gorm:"default:0" json:"overtime_minutes"`
	Status          enum.AttendanceStatus `gorm:"size:20;default:present" json:"status"`
	Notes           *string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}
