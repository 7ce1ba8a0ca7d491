package request

// EmployeeRequest represents an employee create or update request
type EmployeeRequest struct {
	UserID                *string `json:"user_id"`
	EmployeeCode          *string `json:"employee_code"`
	FirstName             string  `json:"first_name" binding:"required"`
	LastName              string  `json:"last_name" binding:"required"`
	Email                 string  `json:"email" binding:"required,email"`
	Phone                 *string `json:"phone"`
	DateOfBirth           *string `json:"date_of_birth"`
	Gender                *string `json:"gender"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	PostalCode            *string `json:"postal_code"`
	Country               string  `json:"country"`
	DepartmentID          *string `json:"department_id"`
	Position              *string `json:"position"`
	EmploymentType        string  `json:"employment_type"`
	HireDate              string  `json:"hire_date" binding:"required"`
	TerminationDate       *string `json:"termination_date"`
	BaseSalary            float64 `json:"base_salary"`
	SalaryFrequency       string  `json:"salary_frequency"`
	BankName              *string `json:"bank_name"`
	BankAccount           *string `json:"bank_account"`
	TaxID                 *string `json:"tax_id"`
	SocialSecurityNumber  *string `json:"social_security_number"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	Status                string  `json:"status"`
	Notes                 *string `json:"notes"`
}

// ClockRequest represents a clock-in or clock-out request
type ClockRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Notes      *string `json:"notes"`
}

// AttendanceRequest represents a manually entered attendance record
type AttendanceRequest struct {
	EmployeeID      string  `json:"employee_id" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	ClockIn         *string `json:"clock_in"`
	ClockOut        *string `json:"clock_out"`
	BreakMinutes    int     `json:"break_minutes" binding:"min=0"`
	OvertimeMinutes int     `json:"overtime_minutes" binding:"min=0"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
}

// UpdateAttendanceRequest represents an attendance record update
type UpdateAttendanceRequest struct {
	ClockIn         *string `json:"clock_in"`
	ClockOut        *string `json:"clock_out"`
	BreakMinutes    int     `json:"break_minutes" binding:"min=0"`
	OvertimeMinutes int     `json:"overtime_minutes" binding:"min=0"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
}

// LeaveRequestRequest represents a leave request submission
type LeaveRequestRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required"`
	LeaveTypeID string  `json:"leave_type_id" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	TotalDays   float64 `json:"total_days"`
	Reason      *string `json:"reason"`
}
