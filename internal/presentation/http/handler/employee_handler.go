package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/request"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
)

// EmployeeHandler handles department and employee HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

type departmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ManagerID   *string `json:"manager_id"`
	IsActive    bool    `json:"is_active"`
}

// ListDepartments handles listing departments
func (h *EmployeeHandler) ListDepartments(c *gin.Context) {
	departments, err := h.employeeService.ListDepartments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Departments retrieved successfully", departments)
}

// CreateDepartment handles creating a department
func (h *EmployeeHandler) CreateDepartment(c *gin.Context) {
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	department, err := h.employeeService.CreateDepartment(c.Request.Context(), &service.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Department created successfully", department)
}

// UpdateDepartment handles updating a department
func (h *EmployeeHandler) UpdateDepartment(c *gin.Context) {
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	department, err := h.employeeService.UpdateDepartment(c.Request.Context(), c.Param("id"), &service.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Department updated successfully", department)
}

// DeleteDepartment handles deleting a department
func (h *EmployeeHandler) DeleteDepartment(c *gin.Context) {
	if err := h.employeeService.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func employeeInput(req *request.EmployeeRequest) *service.EmployeeInput {
	return &service.EmployeeInput{
		UserID:                req.UserID,
		EmployeeCode:          req.EmployeeCode,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		Address:               req.Address,
		City:                  req.City,
		PostalCode:            req.PostalCode,
		Country:               req.Country,
		DepartmentID:          req.DepartmentID,
		Position:              req.Position,
		EmploymentType:        enum.EmploymentType(req.EmploymentType),
		HireDate:              req.HireDate,
		TerminationDate:       req.TerminationDate,
		BaseSalary:            req.BaseSalary,
		SalaryFrequency:       enum.SalaryFrequency(req.SalaryFrequency),
		BankName:              req.BankName,
		BankAccount:           req.BankAccount,
		TaxID:                 req.TaxID,
		SocialSecurityNumber:  req.SocialSecurityNumber,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Status:                enum.EmployeeStatus(req.Status),
		Notes:                 req.Notes,
	}
}

// List handles listing employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employees retrieved successfully", employees)
}

// Get handles getting a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// Create handles creating an employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req request.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), employeeInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// Update handles updating an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req request.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), employeeInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles deleting an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
