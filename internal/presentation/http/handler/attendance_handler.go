package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/request"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
)

// AttendanceHandler handles attendance HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ClockIn handles opening today's attendance record
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	var req request.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.attendanceService.ClockIn(c.Request.Context(), req.EmployeeID, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Clocked in successfully", record)
}

// ClockOut handles closing today's attendance record
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	var req request.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.attendanceService.ClockOut(c.Request.Context(), req.EmployeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clocked out successfully", record)
}

// Create handles a manually entered attendance record
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req request.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.attendanceService.CreateRecord(c.Request.Context(), &service.CreateRecordInput{
		EmployeeID:      req.EmployeeID,
		Date:            req.Date,
		ClockIn:         req.ClockIn,
		ClockOut:        req.ClockOut,
		BreakMinutes:    req.BreakMinutes,
		OvertimeMinutes: req.OvertimeMinutes,
		Status:          enum.AttendanceStatus(req.Status),
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Attendance record created successfully", record)
}

// Update handles updating an attendance record
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req request.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.attendanceService.UpdateRecord(c.Request.Context(), c.Param("id"), &service.UpdateRecordInput{
		ClockIn:         req.ClockIn,
		ClockOut:        req.ClockOut,
		BreakMinutes:    req.BreakMinutes,
		OvertimeMinutes: req.OvertimeMinutes,
		Status:          enum.AttendanceStatus(req.Status),
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance record updated successfully", record)
}

// List handles listing attendance records
func (h *AttendanceHandler) List(c *gin.Context) {
	params := &repository.AttendanceFilterParams{}
	if employeeID := c.Query("employee_id"); employeeID != "" {
		params.EmployeeID = &employeeID
	}
	if date := c.Query("date"); date != "" {
		params.Date = &date
	}
	if from := c.Query("from"); from != "" {
		params.From = &from
	}
	if to := c.Query("to"); to != "" {
		params.To = &to
	}

	records, err := h.attendanceService.ListRecords(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance records retrieved successfully", records)
}
