package service

import (
	"context"
	"time"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/pkg/apperror"
	"github.com/openstock/openstock-api/pkg/identifier"
)

// LeaveService handles leave types and leave requests
type LeaveService struct {
	leaveTypeRepo    repository.LeaveTypeRepository
	leaveRequestRepo repository.LeaveRequestRepository
	employeeRepo     repository.EmployeeRepository
}

// NewLeaveService creates a new leave service
func NewLeaveService(
	leaveTypeRepo repository.LeaveTypeRepository,
	leaveRequestRepo repository.LeaveRequestRepository,
	employeeRepo repository.EmployeeRepository,
) *LeaveService {
	return &LeaveService{
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
	}
}

// LeaveTypeInput represents a leave type create or update request
type LeaveTypeInput struct {
	Name        string
	Description *string
	DefaultDays int
	IsPaid      bool
	Color       string
	IsActive    bool
}

// CreateLeaveType creates a leave type
func (s *LeaveService) CreateLeaveType(ctx context.Context, input *LeaveTypeInput) (*entity.LeaveType, error) {
	color := input.Color
	if color == "" {
		color = "#6B7280"
	}

	leaveType := &entity.LeaveType{
		ID:          identifier.New("lt"),
		Name:        input.Name,
		Description: input.Description,
		DefaultDays: input.DefaultDays,
		IsPaid:      input.IsPaid,
		Color:       color,
		IsActive:    true,
	}

	if err := s.leaveTypeRepo.Create(ctx, leaveType); err != nil {
		return nil, err
	}
	return leaveType, nil
}

// UpdateLeaveType updates a leave type
func (s *LeaveService) UpdateLeaveType(ctx context.Context, id string, input *LeaveTypeInput) (*entity.LeaveType, error) {
	leaveType, err := s.leaveTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if leaveType == nil {
		return nil, apperror.NewNotFoundError("Leave type")
	}

	leaveType.Name = input.Name
	leaveType.Description = input.Description
	leaveType.DefaultDays = input.DefaultDays
	leaveType.IsPaid = input.IsPaid
	if input.Color != "" {
		leaveType.Color = input.Color
	}
	leaveType.IsActive = input.IsActive

	if err := s.leaveTypeRepo.Update(ctx, leaveType); err != nil {
		return nil, err
	}
	return leaveType, nil
}

// DeleteLeaveType deletes a leave type by ID
func (s *LeaveService) DeleteLeaveType(ctx context.Context, id string) error {
	leaveType, err := s.leaveTypeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if leaveType == nil {
		return apperror.NewNotFoundError("Leave type")
	}
	return s.leaveTypeRepo.Delete(ctx, id)
}

// ListLeaveTypes lists all leave types
func (s *LeaveService) ListLeaveTypes(ctx context.Context) ([]entity.LeaveType, error) {
	return s.leaveTypeRepo.List(ctx)
}

// CreateLeaveRequestInput represents a leave request. A zero TotalDays is
// derived from the date span, counting both endpoints.
type CreateLeaveRequestInput struct {
	EmployeeID  string
	LeaveTypeID string
	StartDate   string
	EndDate     string
	TotalDays   float64
	Reason      *string
}

// spanDays counts calendar days between two ISO dates, inclusive.
func spanDays(startDate, endDate string) (float64, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, apperror.NewBadRequestError("Invalid start date " + startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, apperror.NewBadRequestError("Invalid end date " + endDate)
	}
	if end.Before(start) {
		return 0, apperror.NewBadRequestError("End date must not be earlier than start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// CreateLeaveRequest creates a pending leave request
func (s *LeaveService) CreateLeaveRequest(ctx context.Context, input *CreateLeaveRequestInput) (*entity.LeaveRequest, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	leaveType, err := s.leaveTypeRepo.GetByID(ctx, input.LeaveTypeID)
	if err != nil {
		return nil, err
	}
	if leaveType == nil {
		return nil, apperror.NewNotFoundError("Leave type")
	}

	totalDays := input.TotalDays
	if totalDays <= 0 {
		totalDays, err = spanDays(input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}
	}

	request := &entity.LeaveRequest{
		ID:          identifier.New("lr"),
		EmployeeID:  input.EmployeeID,
		LeaveTypeID: input.LeaveTypeID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalDays:   totalDays,
		Reason:      input.Reason,
		Status:      enum.LeavePending,
	}

	if err := s.leaveRequestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateLeaveStatus moves a leave request through its lifecycle, stamping
// the approver when the decision is made. Only pending requests can be
// approved or rejected.
func (s *LeaveService) UpdateLeaveStatus(ctx context.Context, id string, status enum.LeaveStatus, approvedBy *string) (*entity.LeaveRequest, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid leave status")
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Leave request")
	}

	decision := status == enum.LeaveApproved || status == enum.LeaveRejected
	if decision && request.Status != enum.LeavePending {
		return nil, apperror.NewBadRequestError("Leave request has already been decided")
	}

	request.Status = status
	if decision {
		now := time.Now()
		request.ApprovedBy = approvedBy
		request.ApprovedAt = &now
	}

	if err := s.leaveRequestRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListLeaveRequests lists leave requests, optionally for one employee
func (s *LeaveService) ListLeaveRequests(ctx context.Context, employeeID *string) ([]entity.LeaveRequest, error) {
	return s.leaveRequestRepo.List(ctx, employeeID)
}
