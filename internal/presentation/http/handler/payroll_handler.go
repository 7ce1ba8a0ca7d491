package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/request"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
)

// PayrollHandler handles payroll period and run HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// ListPeriods handles listing payroll periods
func (h *PayrollHandler) ListPeriods(c *gin.Context) {
	periods, err := h.payrollService.ListPeriods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll periods retrieved successfully", periods)
}

// GetPeriod handles getting a single payroll period
func (h *PayrollHandler) GetPeriod(c *gin.Context) {
	period, err := h.payrollService.GetPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll period retrieved successfully", period)
}

// CreatePeriod handles creating a payroll period
func (h *PayrollHandler) CreatePeriod(c *gin.Context) {
	var req request.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	period, err := h.payrollService.CreatePeriod(c.Request.Context(), &service.CreatePeriodInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payroll period created successfully", period)
}

// UpdatePeriod handles updating a payroll period
func (h *PayrollHandler) UpdatePeriod(c *gin.Context) {
	var req request.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	period, err := h.payrollService.UpdatePeriod(c.Request.Context(), c.Param("id"), &service.UpdatePeriodInput{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      enum.PeriodStatus(req.Status),
		ProcessedBy: req.ProcessedBy,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll period updated successfully", period)
}

// Generate handles bulk payroll generation for a period
func (h *PayrollHandler) Generate(c *gin.Context) {
	var req request.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.payrollService.Generate(c.Request.Context(), c.Param("id"), req.WorkingDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payroll generated successfully", result)
}

// ListRuns handles listing payroll runs
func (h *PayrollHandler) ListRuns(c *gin.Context) {
	var periodID *string
	if id := c.Query("period_id"); id != "" {
		periodID = &id
	}

	runs, err := h.payrollService.ListRuns(c.Request.Context(), periodID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll runs retrieved successfully", runs)
}

// CreateRun handles manually creating a payroll run
func (h *PayrollHandler) CreateRun(c *gin.Context) {
	var req request.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	run, err := h.payrollService.CreateRun(c.Request.Context(), &service.CreateRunInput{
		PayrollPeriodID:     req.PayrollPeriodID,
		EmployeeID:          req.EmployeeID,
		BaseSalary:          req.BaseSalary,
		WorkedDays:          req.WorkedDays,
		OvertimeHours:       req.OvertimeHours,
		OvertimePay:         req.OvertimePay,
		Bonuses:             req.Bonuses,
		BonusNotes:          req.BonusNotes,
		Deductions:          req.Deductions,
		DeductionNotes:      req.DeductionNotes,
		TaxAmount:           req.TaxAmount,
		SocialSecurity:      req.SocialSecurity,
		HealthInsurance:     req.HealthInsurance,
		OtherDeductions:     req.OtherDeductions,
		OtherDeductionNotes: req.OtherDeductionNotes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payroll run created successfully", run)
}

// UpdateRunStatus handles moving a payroll run through its lifecycle
func (h *PayrollHandler) UpdateRunStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	run, err := h.payrollService.UpdateRunStatus(c.Request.Context(), c.Param("id"), enum.RunStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll run updated successfully", run)
}
