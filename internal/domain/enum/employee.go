package enum

// EmployeeStatus is the employment state of an employee. Only active
// employees participate in payroll generation.
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeOnLeave    EmployeeStatus = "on_leave"
	EmployeeSuspended  EmployeeStatus = "suspended"
	EmployeeTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeActive, EmployeeOnLeave, EmployeeSuspended, EmployeeTerminated:
		return true
	}
	return false
}

// EmploymentType is the contract kind of an employee.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentContract EmploymentType = "contract"
	EmploymentIntern   EmploymentType = "intern"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern:
		return true
	}
	return false
}

// SalaryFrequency is how often the base salary is paid out.
type SalaryFrequency string

const (
	SalaryMonthly  SalaryFrequency = "monthly"
	SalaryBiweekly SalaryFrequency = "biweekly"
	SalaryWeekly   SalaryFrequency = "weekly"
	SalaryHourly   SalaryFrequency = "hourly"
)

func (f SalaryFrequency) Valid() bool {
	switch f {
	case SalaryMonthly, SalaryBiweekly, SalaryWeekly, SalaryHourly:
		return true
	}
	return false
}
