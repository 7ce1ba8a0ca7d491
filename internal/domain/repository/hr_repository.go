package repository

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
)

// DepartmentRepository defines department data access operations
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Department, error)
}

// EmployeeRepository defines employee data access operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Employee, error)
	ListByStatus(ctx context.Context, status enum.EmployeeStatus) ([]entity.Employee, error)
}

// AttendanceFilterParams filters attendance listings
type AttendanceFilterParams struct {
	EmployeeID *string
	Date       *string
	From       *string
	To         *string
}

// AttendanceRepository defines attendance data access operations
type AttendanceRepository interface {
	Create(ctx context.Context, record *entity.Attendance) error
	GetByID(ctx context.Context, id string) (*entity.Attendance, error)
	// GetByEmployeeAndDate returns nil when no record exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*entity.Attendance, error)
	Update(ctx context.Context, record *entity.Attendance) error
	List(ctx context.Context, params *AttendanceFilterParams) ([]entity.Attendance, error)
}

// LeaveTypeRepository defines leave type data access operations
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType *entity.LeaveType) error
	GetByID(ctx context.Context, id string) (*entity.LeaveType, error)
	Update(ctx context.Context, leaveType *entity.LeaveType) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.LeaveType, error)
}

// LeaveRequestRepository defines leave request data access operations
type LeaveRequestRepository interface {
	Create(ctx context.Context, request *entity.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error)
	Update(ctx context.Context, request *entity.LeaveRequest) error
	List(ctx context.Context, employeeID *string) ([]entity.LeaveRequest, error)
}

// PayrollRepository defines payroll period and run data access operations
type PayrollRepository interface {
	CreatePeriod(ctx context.Context, period *entity.PayrollPeriod) error
	GetPeriod(ctx context.Context, id string) (*entity.PayrollPeriod, error)
	UpdatePeriod(ctx context.Context, period *entity.PayrollPeriod) error
	ListPeriods(ctx context.Context) ([]entity.PayrollPeriod, error)

	CreateRun(ctx context.Context, run *entity.PayrollRun) error
	GetRun(ctx context.Context, id string) (*entity.PayrollRun, error)
	UpdateRun(ctx context.Context, run *entity.PayrollRun) error
	ListRuns(ctx context.Context, periodID *string) ([]entity.PayrollRun, error)
	// HasRun reports whether a run already exists for the period/employee pair.
	HasRun(ctx context.Context, periodID, employeeID string) (bool, error)
}
