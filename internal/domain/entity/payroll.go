package entity

import (
	"time"

	"github.com/openstock/openstock-api/internal/domain/enum"
)

// PayrollPeriod is a pay window. Generation moves a draft period to
// processing; completed and cancelled are terminal.
type PayrollPeriod struct {
	ID          string            `gorm:"size:64;primaryKey" json:"id"`
	Name        string            `gorm:"size:100;not null" json:"name"`
	StartDate   string            `gorm:"size:10;not null" json:"start_date"`
	EndDate     string            `gorm:"size:10;not null" json:"end_date"`
	Status      enum.PeriodStatus `gorm:"size:20;default:draft" json:"status"`
	ProcessedBy *string           `gorm:"size:64" json:"processed_by,omitempty"`
	ProcessedAt *time.Time        `json:"processed_at,omitempty"`
	Notes       *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}

// PayrollRun is one employee's computed compensation within one period.
// GrossPay = BaseSalary + OvertimePay + Bonuses; NetPay = GrossPay minus
// the sum of all deduction components.
type PayrollRun struct {
	ID                  string         `gorm:"size:64;primaryKey" json:"id"`
	PayrollPeriodID     string         `gorm:"size:64;not null;index" json:"payroll_period_id"`
	EmployeeID          string         `gorm:"size:64;not null;index" json:"employee_id"`
	BaseSalary          float64        `gorm:"not null" json:"base_salary"`
	WorkedDays          float64        `gorm:"default:0" json:"worked_days"`
	OvertimeHours       float64        `gorm:"default:0" json:"overtime_hours"`
	OvertimePay         float64        `gorm:"default:0" json:"overtime_pay"`
	Bonuses             float64        `gorm:"default:0" json:"bonuses"`
	BonusNotes          *string        `gorm:"type:text" json:"bonus_notes,omitempty"`
	Deductions          float64        `gorm:"default:0" json:"deductions"`
	DeductionNotes      *string        `gorm:"type:text" json:"deduction_notes,omitempty"`
	TaxAmount           float64        `gorm:"default:0" json:"tax_amount"`
	SocialSecurity      float64        `gorm:"default:0" json:"social_security"`
	HealthInsurance     float64        `gorm:"default:0" json:"health_insurance"`
	OtherDeductions     float64        `gorm:"default:0" json:"other_deductions"`
	OtherDeductionNotes *string        `gorm:"type:text" json:"other_deduction_notes,omitempty"`
	GrossPay            float64        `gorm:"not null" json:"gross_pay"`
	NetPay              float64        `gorm:"not null" json:"net_pay"`
	Status              enum.RunStatus `gorm:"size:20;default:pending" json:"status"`
	PaidAt              *time.Time     `json:"paid_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}
