package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
)

type stubPayrollRepo struct {
	periods map[string]*entity.PayrollPeriod
	runs    map[string]*entity.PayrollRun
}

func newStubPayrollRepo(periods ...*entity.PayrollPeriod) *stubPayrollRepo {
	repo := &stubPayrollRepo{
		periods: map[string]*entity.PayrollPeriod{},
		runs:    map[string]*entity.PayrollRun{},
	}
	for _, p := range periods {
		repo.periods[p.ID] = p
	}
	return repo
}

func (r *stubPayrollRepo) CreatePeriod(_ context.Context, period *entity.PayrollPeriod) error {
	r.periods[period.ID] = period
	return nil
}

func (r *stubPayrollRepo) GetPeriod(_ context.Context, id string) (*entity.PayrollPeriod, error) {
	return r.periods[id], nil
}

func (r *stubPayrollRepo) UpdatePeriod(_ context.Context, period *entity.PayrollPeriod) error {
	r.periods[period.ID] = period
	return nil
}

func (r *stubPayrollRepo) ListPeriods(_ context.Context) ([]entity.PayrollPeriod, error) {
	out := make([]entity.PayrollPeriod, 0, len(r.periods))
	for _, p := range r.periods {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPayrollRepo) CreateRun(_ context.Context, run *entity.PayrollRun) error {
	r.runs[run.ID] = run
	return nil
}

func (r *stubPayrollRepo) GetRun(_ context.Context, id string) (*entity.PayrollRun, error) {
	return r.runs[id], nil
}

func (r *stubPayrollRepo) UpdateRun(_ context.Context, run *entity.PayrollRun) error {
	r.runs[run.ID] = run
	return nil
}

func (r *stubPayrollRepo) ListRuns(_ context.Context, periodID *string) ([]entity.PayrollRun, error) {
	var out []entity.PayrollRun
	for _, run := range r.runs {
		if periodID == nil || run.PayrollPeriodID == *periodID {
			out = append(out, *run)
		}
	}
	return out, nil
}

func (r *stubPayrollRepo) HasRun(_ context.Context, periodID, employeeID string) (bool, error) {
	for _, run := range r.runs {
		if run.PayrollPeriodID == periodID && run.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func newPayrollFixture(employees ...*entity.Employee) (*PayrollService, *stubPayrollRepo) {
	payrollRepo := newStubPayrollRepo(&entity.PayrollPeriod{
		ID:        "pp_1",
		Name:      "March 2024",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Status:    enum.PeriodDraft,
	})
	employeeRepo := newStubEmployeeRepo(employees...)
	return NewPayrollService(payrollRepo, employeeRepo), payrollRepo
}

func TestGenerateAppliesDefaultRates(t *testing.T) {
	svc, repo := newPayrollFixture(&entity.Employee{
		ID:         "emp_1",
		BaseSalary: 3000,
		Status:     enum.EmployeeActive,
	})

	result, err := svc.Generate(context.Background(), "pp_1", 0)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Runs, 1)

	run := result.Runs[0]
	assert.InDelta(t, 3000.0, run.GrossPay, 0.001)
	assert.InDelta(t, 450.0, run.TaxAmount, 0.001)
	assert.InDelta(t, 240.0, run.SocialSecurity, 0.001)
	assert.InDelta(t, 90.0, run.HealthInsurance, 0.001)
	assert.InDelta(t, 2220.0, run.NetPay, 0.001)
	assert.InDelta(t, 22.0, run.WorkedDays, 0.001)
	assert.Equal(t, enum.RunPending, run.Status)

	assert.Equal(t, enum.PeriodProcessing, repo.periods["pp_1"].Status)
}

func TestGenerateSkipsInactiveEmployees(t *testing.T) {
	svc, _ := newPayrollFixture(
		&entity.Employee{ID: "emp_1", BaseSalary: 3000, Status: enum.EmployeeActive},
		&entity.Employee{ID: "emp_2", BaseSalary: 2500, Status: enum.EmployeeTerminated},
	)

	result, err := svc.Generate(context.Background(), "pp_1", 22)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
}

func TestGenerateSkipsExistingRuns(t *testing.T) {
	svc, repo := newPayrollFixture(&entity.Employee{
		ID:         "emp_1",
		BaseSalary: 3000,
		Status:     enum.EmployeeActive,
	})

	first, err := svc.Generate(context.Background(), "pp_1", 22)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Generated)

	second, err := svc.Generate(context.Background(), "pp_1", 22)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Generated)
	assert.Equal(t, 1, second.Skipped)
	assert.Len(t, repo.runs, 1)
}

func TestGenerateRejectsTerminalPeriod(t *testing.T) {
	svc, repo := newPayrollFixture(&entity.Employee{
		ID:         "emp_1",
		BaseSalary: 3000,
		Status:     enum.EmployeeActive,
	})
	repo.periods["pp_1"].Status = enum.PeriodCompleted

	_, err := svc.Generate(context.Background(), "pp_1", 22)
	require.Error(t, err)
}

func TestCreateRunRecomputesTotals(t *testing.T) {
	svc, _ := newPayrollFixture(&entity.Employee{
		ID:         "emp_1",
		BaseSalary: 2000,
		Status:     enum.EmployeeActive,
	})

	run, err := svc.CreateRun(context.Background(), &CreateRunInput{
		PayrollPeriodID: "pp_1",
		EmployeeID:      "emp_1",
		BaseSalary:      2000,
		OvertimePay:     100,
		Bonuses:         50,
		Deductions:      20,
		TaxAmount:       300,
	})
	require.NoError(t, err)

	assert.InDelta(t, 2150.0, run.GrossPay, 0.001)
	assert.InDelta(t, 1830.0, run.NetPay, 0.001)
}

func TestCreateRunUnknownEmployee(t *testing.T) {
	svc, _ := newPayrollFixture()

	_, err := svc.CreateRun(context.Background(), &CreateRunInput{
		PayrollPeriodID: "pp_1",
		EmployeeID:      "emp_missing",
		BaseSalary:      2000,
	})
	require.Error(t, err)
}

func TestUpdateRunStatusStampsPaidAt(t *testing.T) {
	svc, repo := newPayrollFixture(&entity.Employee{
		ID:         "emp_1",
		BaseSalary: 3000,
		Status:     enum.EmployeeActive,
	})

	result, err := svc.Generate(context.Background(), "pp_1", 22)
	require.NoError(t, err)
	runID := result.Runs[0].ID

	run, err := svc.UpdateRunStatus(context.Background(), runID, enum.RunPaid)
	require.NoError(t, err)
	assert.Equal(t, enum.RunPaid, run.Status)
	assert.NotNil(t, run.PaidAt)
	assert.NotNil(t, repo.runs[runID].PaidAt)
}

func TestUpdatePeriodTerminalStatus(t *testing.T) {
	svc, repo := newPayrollFixture()
	repo.periods["pp_1"].Status = enum.PeriodCancelled

	_, err := svc.UpdatePeriod(context.Background(), "pp_1", &UpdatePeriodInput{
		Name:      "March 2024",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Status:    enum.PeriodProcessing,
	})
	require.Error(t, err)
}
