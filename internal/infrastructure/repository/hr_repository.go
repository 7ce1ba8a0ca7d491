package repository

import (
	"context"
	"errors"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	domainRepo "github.com/openstock/openstock-api/internal/domain/repository"
	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) domainRepo.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	var department entity.Department
	err := r.db.WithContext(ctx).First(&department, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &department, err
}

func (r *departmentRepository) Update(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Department{}, "id = ?", id).Error
}

func (r *departmentRepository) List(ctx context.Context) ([]entity.Department, error) {
	var departments []entity.Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error
	return departments, err
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *employeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("created_at DESC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) ListByStatus(ctx context.Context, status enum.EmployeeStatus) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&employees).Error
	return employees, err
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record *entity.Attendance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*entity.Attendance, error) {
	var record entity.Attendance
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*entity.Attendance, error) {
	var record entity.Attendance
	err := r.db.WithContext(ctx).
		First(&record, "employee_id = ? AND date = ?", employeeID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepository) Update(ctx context.Context, record *entity.Attendance) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepository) List(ctx context.Context, params *domainRepo.AttendanceFilterParams) ([]entity.Attendance, error) {
	query := r.db.WithContext(ctx).Model(&entity.Attendance{})

	if params.EmployeeID != nil {
		query = query.Where("employee_id = ?", *params.EmployeeID)
	}
	if params.Date != nil {
		query = query.Where("date = ?", *params.Date)
	}
	if params.From != nil {
		query = query.Where("date >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("date <= ?", *params.To)
	}

	var records []entity.Attendance
	err := query.Preload("Employee").Order("date DESC").Find(&records).Error
	return records, err
}

type leaveTypeRepository struct {
	db *gorm.DB
}

// NewLeaveTypeRepository creates a new leave type repository
func NewLeaveTypeRepository(db *gorm.DB) domainRepo.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

func (r *leaveTypeRepository) Create(ctx context.Context, leaveType *entity.LeaveType) error {
	return r.db.WithContext(ctx).Create(leaveType).Error
}

func (r *leaveTypeRepository) GetByID(ctx context.Context, id string) (*entity.LeaveType, error) {
	var leaveType entity.LeaveType
	err := r.db.WithContext(ctx).First(&leaveType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &leaveType, err
}

func (r *leaveTypeRepository) Update(ctx context.Context, leaveType *entity.LeaveType) error {
	return r.db.WithContext(ctx).Save(leaveType).Error
}

func (r *leaveTypeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.LeaveType{}, "id = ?", id).Error
}

func (r *leaveTypeRepository) List(ctx context.Context) ([]entity.LeaveType, error) {
	var leaveTypes []entity.LeaveType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&leaveTypes).Error
	return leaveTypes, err
}

type leaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *gorm.DB) domainRepo.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request *entity.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error) {
	var request entity.LeaveRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &request, err
}

func (r *leaveRequestRepository) Update(ctx context.Context, request *entity.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *leaveRequestRepository) List(ctx context.Context, employeeID *string) ([]entity.LeaveRequest, error) {
	query := r.db.WithContext(ctx).Model(&entity.LeaveRequest{})
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	var requests []entity.LeaveRequest
	err := query.
		Preload("Employee").Preload("LeaveType").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) domainRepo.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) CreatePeriod(ctx context.Context, period *entity.PayrollPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *payrollRepository) GetPeriod(ctx context.Context, id string) (*entity.PayrollPeriod, error) {
	var period entity.PayrollPeriod
	err := r.db.WithContext(ctx).First(&period, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &period, err
}

func (r *payrollRepository) UpdatePeriod(ctx context.Context, period *entity.PayrollPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *payrollRepository) ListPeriods(ctx context.Context) ([]entity.PayrollPeriod, error) {
	var periods []entity.PayrollPeriod
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&periods).Error
	return periods, err
}

func (r *payrollRepository) CreateRun(ctx context.Context, run *entity.PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *payrollRepository) GetRun(ctx context.Context, id string) (*entity.PayrollRun, error) {
	var run entity.PayrollRun
	err := r.db.WithContext(ctx).First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &run, err
}

func (r *payrollRepository) UpdateRun(ctx context.Context, run *entity.PayrollRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

func (r *payrollRepository) ListRuns(ctx context.Context, periodID *string) ([]entity.PayrollRun, error) {
	query := r.db.WithContext(ctx).Model(&entity.PayrollRun{})
	if periodID != nil {
		query = query.Where("payroll_period_id = ?", *periodID)
	}

	var runs []entity.PayrollRun
	err := query.Preload("Employee").Order("created_at DESC").Find(&runs).Error
	return runs, err
}

func (r *payrollRepository) HasRun(ctx context.Context, periodID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PayrollRun{}).
		Where("payroll_period_id = ? AND employee_id = ?", periodID, employeeID).
		Count(&count).Error
	return count > 0, err
}
