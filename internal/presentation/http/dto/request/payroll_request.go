package request

// CreatePeriodRequest represents a payroll period creation request
type CreatePeriodRequest struct {
	Name      string  `json:"name" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	Notes     *string `json:"notes"`
}

// UpdatePeriodRequest represents a payroll period update request
type UpdatePeriodRequest struct {
	Name        string  `json:"name" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Status      string  `json:"status"`
	ProcessedBy *string `json:"processed_by"`
	Notes       *string `json:"notes"`
}

// GeneratePayrollRequest represents a bulk payroll generation request
type GeneratePayrollRequest struct {
	WorkingDays float64 `json:"working_days"`
}

// CreateRunRequest represents a manually created payroll run
type CreateRunRequest struct {
	PayrollPeriodID     string  `json:"payroll_period_id" binding:"required"`
	EmployeeID          string  `json:"employee_id" binding:"required"`
	BaseSalary          float64 `json:"base_salary" binding:"min=0"`
	WorkedDays          float64 `json:"worked_days"`
	OvertimeHours       float64 `json:"overtime_hours"`
	OvertimePay         float64 `json:"overtime_pay"`
	Bonuses             float64 `json:"bonuses"`
	BonusNotes          *string `json:"bonus_notes"`
	Deductions          float64 `json:"deductions"`
	DeductionNotes      *string `json:"deduction_notes"`
	TaxAmount           float64 `json:"tax_amount"`
	SocialSecurity      float64 `json:"social_security"`
	HealthInsurance     float64 `json:"health_insurance"`
	OtherDeductions     float64 `json:"other_deductions"`
	OtherDeductionNotes *string `json:"other_deduction_notes"`
}
