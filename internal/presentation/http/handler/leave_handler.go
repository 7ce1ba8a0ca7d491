package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/request"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
)

// LeaveHandler handles leave type and leave request HTTP requests
type LeaveHandler struct {
	leaveService *service.LeaveService
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

type leaveTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	DefaultDays int     `json:"default_days" binding:"min=0"`
	IsPaid      bool    `json:"is_paid"`
	Color       string  `json:"color"`
	IsActive    bool    `json:"is_active"`
}

// ListTypes handles listing leave types
func (h *LeaveHandler) ListTypes(c *gin.Context) {
	types, err := h.leaveService.ListLeaveTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave types retrieved successfully", types)
}

// CreateType handles creating a leave type
func (h *LeaveHandler) CreateType(c *gin.Context) {
	var req leaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	leaveType, err := h.leaveService.CreateLeaveType(c.Request.Context(), &service.LeaveTypeInput{
		Name:        req.Name,
		Description: req.Description,
		DefaultDays: req.DefaultDays,
		IsPaid:      req.IsPaid,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Leave type created successfully", leaveType)
}

// UpdateType handles updating a leave type
func (h *LeaveHandler) UpdateType(c *gin.Context) {
	var req leaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	leaveType, err := h.leaveService.UpdateLeaveType(c.Request.Context(), c.Param("id"), &service.LeaveTypeInput{
		Name:        req.Name,
		Description: req.Description,
		DefaultDays: req.DefaultDays,
		IsPaid:      req.IsPaid,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave type updated successfully", leaveType)
}

// DeleteType handles deleting a leave type
func (h *LeaveHandler) DeleteType(c *gin.Context) {
	if err := h.leaveService.DeleteLeaveType(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateRequest handles submitting a leave request
func (h *LeaveHandler) CreateRequest(c *gin.Context) {
	var req request.LeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	leaveRequest, err := h.leaveService.CreateLeaveRequest(c.Request.Context(), &service.CreateLeaveRequestInput{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalDays:   req.TotalDays,
		Reason:      req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Leave request created successfully", leaveRequest)
}

// UpdateRequestStatus handles approving, rejecting or cancelling a request
func (h *LeaveHandler) UpdateRequestStatus(c *gin.Context) {
	var req struct {
		Status     string  `json:"status" binding:"required"`
		ApprovedBy *string `json:"approved_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	leaveRequest, err := h.leaveService.UpdateLeaveStatus(c.Request.Context(), c.Param("id"), enum.LeaveStatus(req.Status), req.ApprovedBy)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave request updated successfully", leaveRequest)
}

// ListRequests handles listing leave requests
func (h *LeaveHandler) ListRequests(c *gin.Context) {
	var employeeID *string
	if id := c.Query("employee_id"); id != "" {
		employeeID = &id
	}

	requests, err := h.leaveService.ListLeaveRequests(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave requests retrieved successfully", requests)
}
