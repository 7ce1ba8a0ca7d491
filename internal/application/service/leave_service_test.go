package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
)

type stubLeaveTypeRepo struct {
	types map[string]*entity.LeaveType
}

func newStubLeaveTypeRepo(types ...*entity.LeaveType) *stubLeaveTypeRepo {
	repo := &stubLeaveTypeRepo{types: map[string]*entity.LeaveType{}}
	for _, lt := range types {
		repo.types[lt.ID] = lt
	}
	return repo
}

func (r *stubLeaveTypeRepo) Create(_ context.Context, leaveType *entity.LeaveType) error {
	r.types[leaveType.ID] = leaveType
	return nil
}

func (r *stubLeaveTypeRepo) GetByID(_ context.Context, id string) (*entity.LeaveType, error) {
	return r.types[id], nil
}

func (r *stubLeaveTypeRepo) Update(_ context.Context, leaveType *entity.LeaveType) error {
	r.types[leaveType.ID] = leaveType
	return nil
}

func (r *stubLeaveTypeRepo) Delete(_ context.Context, id string) error {
	delete(r.types, id)
	return nil
}

func (r *stubLeaveTypeRepo) List(_ context.Context) ([]entity.LeaveType, error) {
	out := make([]entity.LeaveType, 0, len(r.types))
	for _, lt := range r.types {
		out = append(out, *lt)
	}
	return out, nil
}

type stubLeaveRequestRepo struct {
	requests map[string]*entity.LeaveRequest
}

func newStubLeaveRequestRepo() *stubLeaveRequestRepo {
	return &stubLeaveRequestRepo{requests: map[string]*entity.LeaveRequest{}}
}

func (r *stubLeaveRequestRepo) Create(_ context.Context, request *entity.LeaveRequest) error {
	r.requests[request.ID] = request
	return nil
}

func (r *stubLeaveRequestRepo) GetByID(_ context.Context, id string) (*entity.LeaveRequest, error) {
	return r.requests[id], nil
}

func (r *stubLeaveRequestRepo) Update(_ context.Context, request *entity.LeaveRequest) error {
	r.requests[request.ID] = request
	return nil
}

func (r *stubLeaveRequestRepo) List(_ context.Context, employeeID *string) ([]entity.LeaveRequest, error) {
	var out []entity.LeaveRequest
	for _, req := range r.requests {
		if employeeID == nil || req.EmployeeID == *employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func newLeaveFixture() *LeaveService {
	leaveTypes := newStubLeaveTypeRepo(&entity.LeaveType{
		ID:     "lt_1",
		Name:   "Vacation",
		IsPaid: true,
	})
	employees := newStubEmployeeRepo(&entity.Employee{
		ID:     "emp_1",
		Status: enum.EmployeeActive,
	})
	return NewLeaveService(leaveTypes, newStubLeaveRequestRepo(), employees)
}

func TestCreateLeaveRequestDerivesTotalDays(t *testing.T) {
	svc := newLeaveFixture()

	request, err := svc.CreateLeaveRequest(context.Background(), &CreateLeaveRequestInput{
		EmployeeID:  "emp_1",
		LeaveTypeID: "lt_1",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-05",
	})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, request.TotalDays, 0.001)
	assert.Equal(t, enum.LeavePending, request.Status)
}

func TestCreateLeaveRequestRejectsReversedDates(t *testing.T) {
	svc := newLeaveFixture()

	_, err := svc.CreateLeaveRequest(context.Background(), &CreateLeaveRequestInput{
		EmployeeID:  "emp_1",
		LeaveTypeID: "lt_1",
		StartDate:   "2024-07-05",
		EndDate:     "2024-07-01",
	})
	require.Error(t, err)
}

func TestCreateLeaveRequestUnknownType(t *testing.T) {
	svc := newLeaveFixture()

	_, err := svc.CreateLeaveRequest(context.Background(), &CreateLeaveRequestInput{
		EmployeeID:  "emp_1",
		LeaveTypeID: "lt_missing",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-02",
	})
	require.Error(t, err)
}

func TestUpdateLeaveStatusStampsApproval(t *testing.T) {
	svc := newLeaveFixture()

	request, err := svc.CreateLeaveRequest(context.Background(), &CreateLeaveRequestInput{
		EmployeeID:  "emp_1",
		LeaveTypeID: "lt_1",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-05",
	})
	require.NoError(t, err)

	approver := "usr_1"
	approved, err := svc.UpdateLeaveStatus(context.Background(), request.ID, enum.LeaveApproved, &approver)
	require.NoError(t, err)

	assert.Equal(t, enum.LeaveApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "usr_1", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	// Decided requests cannot be re-decided.
	_, err = svc.UpdateLeaveStatus(context.Background(), request.ID, enum.LeaveRejected, &approver)
	require.Error(t, err)
}

func TestSpanDays(t *testing.T) {
	days, err := spanDays("2024-07-01", "2024-07-01")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, days, 0.001)

	days, err = spanDays("2024-02-27", "2024-03-02")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, days, 0.001)

	_, err = spanDays("not-a-date", "2024-07-01")
	require.Error(t, err)
}
