package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
)

type stubEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newStubEmployeeRepo(employees ...*entity.Employee) *stubEmployeeRepo {
	repo := &stubEmployeeRepo{employees: map[string]*entity.Employee{}}
	for _, e := range employees {
		repo.employees[e.ID] = e
	}
	return repo
}

func (r *stubEmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	r.employees[employee.ID] = employee
	return nil
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.employees[id], nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, employee *entity.Employee) error {
	r.employees[employee.ID] = employee
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(r.employees, id)
	return nil
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]entity.Employee, error) {
	out := make([]entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) ListByStatus(_ context.Context, status enum.EmployeeStatus) ([]entity.Employee, error) {
	var out []entity.Employee
	for _, e := range r.employees {
		if e.Status == status {
			out = append(out, *e)
		}
	}
	return out, nil
}

type stubAttendanceRepo struct {
	records map[string]*entity.Attendance
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: map[string]*entity.Attendance{}}
}

func (r *stubAttendanceRepo) Create(_ context.Context, record *entity.Attendance) error {
	r.records[record.ID] = record
	return nil
}

func (r *stubAttendanceRepo) GetByID(_ context.Context, id string) (*entity.Attendance, error) {
	return r.records[id], nil
}

func (r *stubAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*entity.Attendance, error) {
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date == date {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *stubAttendanceRepo) Update(_ context.Context, record *entity.Attendance) error {
	r.records[record.ID] = record
	return nil
}

func (r *stubAttendanceRepo) List(_ context.Context, _ *repository.AttendanceFilterParams) ([]entity.Attendance, error) {
	out := make([]entity.Attendance, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

func newAttendanceFixture(now time.Time) (*AttendanceService, *stubAttendanceRepo) {
	employees := newStubEmployeeRepo(&entity.Employee{
		ID:        "emp_1",
		FirstName: "Ama",
		LastName:  "Mensah",
		Status:    enum.EmployeeActive,
	})
	records := newStubAttendanceRepo()
	svc := NewAttendanceService(records, employees)
	svc.now = func() time.Time { return now }
	return svc, records
}

func TestClockInCreatesRecord(t *testing.T) {
	now := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	svc, _ := newAttendanceFixture(now)

	record, err := svc.ClockIn(context.Background(), "emp_1", nil)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-12", record.Date)
	require.NotNil(t, record.ClockIn)
	assert.Equal(t, "09:00", *record.ClockIn)
	assert.Equal(t, enum.AttendancePresent, record.Status)
}

func TestClockInTwiceRejected(t *testing.T) {
	now := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	svc, _ := newAttendanceFixture(now)

	_, err := svc.ClockIn(context.Background(), "emp_1", nil)
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), "emp_1", nil)
	require.Error(t, err)
}

func TestClockInUnknownEmployee(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Now())

	_, err := svc.ClockIn(context.Background(), "emp_missing", nil)
	require.Error(t, err)
}

func TestClockOutComputesOvertime(t *testing.T) {
	in := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	svc, _ := newAttendanceFixture(in)

	record, err := svc.ClockIn(context.Background(), "emp_1", nil)
	require.NoError(t, err)
	record.BreakMinutes = 30

	// 09:00 -> 18:30 with a 30 minute break is 540 worked minutes,
	// 60 over the 480 minute reference day.
	svc.now = func() time.Time { return time.Date(2024, 3, 12, 18, 30, 0, 0, time.UTC) }
	record, err = svc.ClockOut(context.Background(), "emp_1")
	require.NoError(t, err)

	require.NotNil(t, record.ClockOut)
	assert.Equal(t, "18:30", *record.ClockOut)
	assert.Equal(t, 60, record.OvertimeMinutes)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Now())

	_, err := svc.ClockOut(context.Background(), "emp_1")
	require.Error(t, err)
}

func TestClockOutTwiceRejected(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp_1", nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 12, 17, 0, 0, 0, time.UTC) }
	_, err = svc.ClockOut(context.Background(), "emp_1")
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "emp_1")
	require.Error(t, err)
}

func TestComputeWorkedMinutes(t *testing.T) {
	tests := []struct {
		name         string
		clockIn      string
		clockOut     string
		breakMinutes int
		wantWorked   int
		wantOvertime int
		wantErr      bool
	}{
		{"standard day", "09:00", "17:00", 0, 480, 0, false},
		{"with break", "09:00", "17:30", 30, 480, 0, false},
		{"overtime", "09:00", "18:30", 30, 540, 60, false},
		{"short day", "10:00", "12:00", 0, 120, 0, false},
		{"break exceeds span", "09:00", "09:30", 60, 0, 0, false},
		{"out before in", "17:00", "09:00", 0, 0, 0, true},
		{"bad format", "nine", "17:00", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worked, overtime, err := computeWorkedMinutes(tt.clockIn, tt.clockOut, tt.breakMinutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWorked, worked)
			assert.Equal(t, tt.wantOvertime, overtime)
		})
	}
}
