package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/pkg/apperror"
	"github.com/openstock/openstock-api/pkg/identifier"
)

// standardWorkdayMinutes is the reference day used for overtime.
const standardWorkdayMinutes = 8 * 60

// AttendanceService handles clock-in/out and attendance records
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// parseClock converts an HH:MM string to minutes since midnight.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, apperror.NewBadRequestError("Invalid clock time " + value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, apperror.NewBadRequestError("Invalid clock time " + value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, apperror.NewBadRequestError("Invalid clock time " + value)
	}
	return hours*60 + minutes, nil
}

// computeWorkedMinutes returns worked and overtime minutes for a same-day
// clock pair. Spans crossing midnight are not supported and come back as an
// error rather than negative time.
func computeWorkedMinutes(clockIn, clockOut string, breakMinutes int) (worked, overtime int, err error) {
	in, err := parseClock(clockIn)
	if err != nil {
		return 0, 0, err
	}
	out, err := parseClock(clockOut)
	if err != nil {
		return 0, 0, err
	}
	if out < in {
		return 0, 0, apperror.NewBadRequestError("Clock-out must not be earlier than clock-in")
	}

	worked = out - in - breakMinutes
	if worked < 0 {
		worked = 0
	}
	if worked > standardWorkdayMinutes {
		overtime = worked - standardWorkdayMinutes
	}
	return worked, overtime, nil
}

// ClockIn opens today's attendance record for an employee. At most one
// record exists per (employee, date); a second clock-in is rejected.
func (s *AttendanceService) ClockIn(ctx context.Context, employeeID string, notes *string) (*entity.Attendance, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	today := s.now().Format("2006-01-02")
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewBadRequestError("Already clocked in today")
	}

	clockIn := s.now().Format("15:04")
	record := &entity.Attendance{
		ID:         identifier.New("att"),
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    &clockIn,
		Status:     enum.AttendancePresent,
		Notes:      notes,
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ClockOut closes today's attendance record and computes overtime against
// the 8-hour reference day.
func (s *AttendanceService) ClockOut(ctx context.Context, employeeID string) (*entity.Attendance, error) {
	today := s.now().Format("2006-01-02")
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewBadRequestError("No clock-in record found for today")
	}
	if record.ClockOut != nil {
		return nil, apperror.NewBadRequestError("Already clocked out today")
	}

	clockOut := s.now().Format("15:04")
	if record.ClockIn != nil {
		_, overtime, err := computeWorkedMinutes(*record.ClockIn, clockOut, record.BreakMinutes)
		if err != nil {
			return nil, err
		}
		record.OvertimeMinutes = overtime
	}
	record.ClockOut = &clockOut

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// CreateRecordInput represents a manually entered attendance record
type CreateRecordInput struct {
	EmployeeID      string
	Date            string
	ClockIn         *string
	ClockOut        *string
	BreakMinutes    int
	OvertimeMinutes int
	Status          enum.AttendanceStatus
	Notes           *string
}

// CreateRecord stores a manually entered attendance record as-is.
func (s *AttendanceService) CreateRecord(ctx context.Context, input *CreateRecordInput) (*entity.Attendance, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	status := input.Status
	if status == "" {
		status = enum.AttendancePresent
	}

	record := &entity.Attendance{
		ID:              identifier.New("att"),
		EmployeeID:      input.EmployeeID,
		Date:            input.Date,
		ClockIn:         input.ClockIn,
		ClockOut:        input.ClockOut,
		BreakMinutes:    input.BreakMinutes,
		OvertimeMinutes: input.OvertimeMinutes,
		Status:          status,
		Notes:           input.Notes,
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateRecordInput represents an attendance record update
type UpdateRecordInput struct {
	ClockIn         *string
	ClockOut        *string
	BreakMinutes    int
	OvertimeMinutes int
	Status          enum.AttendanceStatus
	Notes           *string
}

// UpdateRecord overwrites an attendance record's fields
func (s *AttendanceService) UpdateRecord(ctx context.Context, id string, input *UpdateRecordInput) (*entity.Attendance, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Attendance record")
	}

	record.ClockIn = input.ClockIn
	record.ClockOut = input.ClockOut
	record.BreakMinutes = input.BreakMinutes
	record.OvertimeMinutes = input.OvertimeMinutes
	if input.Status != "" {
		record.Status = input.Status
	}
	record.Notes = input.Notes

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListRecords lists attendance records with filtering
func (s *AttendanceService) ListRecords(ctx context.Context, params *repository.AttendanceFilterParams) ([]entity.Attendance, error) {
	return s.attendanceRepo.List(ctx, params)
}
