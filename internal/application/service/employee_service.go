package service

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/pkg/apperror"
	"github.com/openstock/openstock-api/pkg/identifier"
)

// EmployeeService handles departments and employee records
type EmployeeService struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// DepartmentInput represents a department create or update request
type DepartmentInput struct {
	Name        string
	Description *string
	ManagerID   *string
	IsActive    bool
}

// CreateDepartment creates a department
func (s *EmployeeService) CreateDepartment(ctx context.Context, input *DepartmentInput) (*entity.Department, error) {
	department := &entity.Department{
		ID:          identifier.New("dep"),
		Name:        input.Name,
		Description: input.Description,
		ManagerID:   input.ManagerID,
		IsActive:    true,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// UpdateDepartment updates a department
func (s *EmployeeService) UpdateDepartment(ctx context.Context, id string, input *DepartmentInput) (*entity.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, apperror.NewNotFoundError("Department")
	}

	department.Name = input.Name
	department.Description = input.Description
	department.ManagerID = input.ManagerID
	department.IsActive = input.IsActive

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment deletes a department by ID
func (s *EmployeeService) DeleteDepartment(ctx context.Context, id string) error {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if department == nil {
		return apperror.NewNotFoundError("Department")
	}
	return s.departmentRepo.Delete(ctx, id)
}

// ListDepartments lists all departments
func (s *EmployeeService) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	return s.departmentRepo.List(ctx)
}

// EmployeeInput represents an employee create or update request
type EmployeeInput struct {
	UserID                *string
	EmployeeCode          *string
	FirstName             string
	LastName              string
	Email                 string
	Phone                 *string
	DateOfBirth           *string
	Gender                *string
	Address               *string
	City                  *string
	PostalCode            *string
	Country               string
	DepartmentID          *string
	Position              *string
	EmploymentType        enum.EmploymentType
	HireDate              string
	TerminationDate       *string
	BaseSalary            float64
	SalaryFrequency       enum.SalaryFrequency
	BankName              *string
	BankAccount           *string
	TaxID                 *string
	SocialSecurityNumber  *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	Status                enum.EmployeeStatus
	Notes                 *string
}

func (s *EmployeeService) validateEmployeeInput(ctx context.Context, input *EmployeeInput) error {
	if input.EmploymentType != "" && !input.EmploymentType.Valid() {
		return apperror.NewBadRequestError("Invalid employment type")
	}
	if input.SalaryFrequency != "" && !input.SalaryFrequency.Valid() {
		return apperror.NewBadRequestError("Invalid salary frequency")
	}
	if input.Status != "" && !input.Status.Valid() {
		return apperror.NewBadRequestError("Invalid employee status")
	}
	if input.BaseSalary < 0 {
		return apperror.NewBadRequestError("Base salary must not be negative")
	}
	if input.DepartmentID != nil {
		department, err := s.departmentRepo.GetByID(ctx, *input.DepartmentID)
		if err != nil {
			return err
		}
		if department == nil {
			return apperror.NewNotFoundError("Department")
		}
	}
	return nil
}

// CreateEmployee creates an employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *EmployeeInput) (*entity.Employee, error) {
	if err := s.validateEmployeeInput(ctx, input); err != nil {
		return nil, err
	}

	employmentType := input.EmploymentType
	if employmentType == "" {
		employmentType = enum.EmploymentFullTime
	}
	salaryFrequency := input.SalaryFrequency
	if salaryFrequency == "" {
		salaryFrequency = enum.SalaryMonthly
	}
	status := input.Status
	if status == "" {
		status = enum.EmployeeActive
	}
	country := input.Country
	if country == "" {
		country = "France"
	}

	employee := &entity.Employee{
		ID:                    identifier.New("emp"),
		UserID:                input.UserID,
		EmployeeCode:          input.EmployeeCode,
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		Email:                 input.Email,
		Phone:                 input.Phone,
		DateOfBirth:           input.DateOfBirth,
		Gender:                input.Gender,
		Address:               input.Address,
		City:                  input.City,
		PostalCode:            input.PostalCode,
		Country:               country,
		DepartmentID:          input.DepartmentID,
		Position:              input.Position,
		EmploymentType:        employmentType,
		HireDate:              input.HireDate,
		TerminationDate:       input.TerminationDate,
		BaseSalary:            input.BaseSalary,
		SalaryFrequency:       salaryFrequency,
		BankName:              input.BankName,
		BankAccount:           input.BankAccount,
		TaxID:                 input.TaxID,
		SocialSecurityNumber:  input.SocialSecurityNumber,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		Status:                status,
		Notes:                 input.Notes,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// UpdateEmployee updates an employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, input *EmployeeInput) (*entity.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateEmployeeInput(ctx, input); err != nil {
		return nil, err
	}

	employee.UserID = input.UserID
	employee.EmployeeCode = input.EmployeeCode
	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Email = input.Email
	employee.Phone = input.Phone
	employee.DateOfBirth = input.DateOfBirth
	employee.Gender = input.Gender
	employee.Address = input.Address
	employee.City = input.City
	employee.PostalCode = input.PostalCode
	if input.Country != "" {
		employee.Country = input.Country
	}
	employee.DepartmentID = input.DepartmentID
	employee.Position = input.Position
	if input.EmploymentType != "" {
		employee.EmploymentType = input.EmploymentType
	}
	if input.HireDate != "" {
		employee.HireDate = input.HireDate
	}
	employee.TerminationDate = input.TerminationDate
	employee.BaseSalary = input.BaseSalary
	if input.SalaryFrequency != "" {
		employee.SalaryFrequency = input.SalaryFrequency
	}
	employee.BankName = input.BankName
	employee.BankAccount = input.BankAccount
	employee.TaxID = input.TaxID
	employee.SocialSecurityNumber = input.SocialSecurityNumber
	employee.EmergencyContactName = input.EmergencyContactName
	employee.EmergencyContactPhone = input.EmergencyContactPhone
	if input.Status != "" {
		employee.Status = input.Status
	}
	employee.Notes = input.Notes

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee deletes an employee by ID
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees lists all employees
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}
