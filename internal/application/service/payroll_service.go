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

// Default deduction rates applied during payroll generation.
const (
	taxRate             = 0.15
	socialSecurityRate  = 0.08
	healthInsuranceRate = 0.03
)

// defaultWorkingDays is used when generation is not told otherwise.
const defaultWorkingDays = 22

// PayrollService handles payroll periods and runs
type PayrollService struct {
	payrollRepo  repository.PayrollRepository
	employeeRepo repository.EmployeeRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	payrollRepo repository.PayrollRepository,
	employeeRepo repository.EmployeeRepository,
) *PayrollService {
	return &PayrollService{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// CreatePeriodInput represents a payroll period creation request
type CreatePeriodInput struct {
	Name      string
	StartDate string
	EndDate   string
	Notes     *string
}

// CreatePeriod creates a payroll period in draft status
func (s *PayrollService) CreatePeriod(ctx context.Context, input *CreatePeriodInput) (*entity.PayrollPeriod, error) {
	period := &entity.PayrollPeriod{
		ID:        identifier.New("pp"),
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    enum.PeriodDraft,
		Notes:     input.Notes,
	}

	if err := s.payrollRepo.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

// GetPeriod retrieves a payroll period by ID
func (s *PayrollService) GetPeriod(ctx context.Context, id string) (*entity.PayrollPeriod, error) {
	period, err := s.payrollRepo.GetPeriod(ctx, id)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, apperror.NewNotFoundError("Payroll period")
	}
	return period, nil
}

// ListPeriods lists all payroll periods
func (s *PayrollService) ListPeriods(ctx context.Context) ([]entity.PayrollPeriod, error) {
	return s.payrollRepo.ListPeriods(ctx)
}

// UpdatePeriodInput represents a payroll period update
type UpdatePeriodInput struct {
	Name        string
	StartDate   string
	EndDate     string
	Status      enum.PeriodStatus
	ProcessedBy *string
	Notes       *string
}

// UpdatePeriod updates a payroll period. Completed and cancelled are
// terminal; a period in either state cannot change status again.
func (s *PayrollService) UpdatePeriod(ctx context.Context, id string, input *UpdatePeriodInput) (*entity.PayrollPeriod, error) {
	period, err := s.GetPeriod(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" && !input.Status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid period status")
	}

	terminal := period.Status == enum.PeriodCompleted || period.Status == enum.PeriodCancelled
	if terminal && input.Status != "" && input.Status != period.Status {
		return nil, apperror.NewBadRequestError("Period status is terminal")
	}

	period.Name = input.Name
	period.StartDate = input.StartDate
	period.EndDate = input.EndDate
	period.ProcessedBy = input.ProcessedBy
	period.Notes = input.Notes
	if input.Status != "" {
		period.Status = input.Status
		if input.Status == enum.PeriodCompleted {
			now := time.Now()
			period.ProcessedAt = &now
		}
	}

	if err := s.payrollRepo.UpdatePeriod(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

// GenerateResult summarizes one bulk payroll generation.
type GenerateResult struct {
	Generated int                 `json:"generated"`
	Skipped   int                 `json:"skipped"`
	Runs      []entity.PayrollRun `json:"runs"`
}

// Generate creates one pending run per active employee for the period,
// applying the default deduction rates against a gross equal to the base
// salary. Employees that already have a run in the period are skipped, so
// regeneration never duplicates. The period moves to processing.
func (s *PayrollService) Generate(ctx context.Context, periodID string, workingDays float64) (*GenerateResult, error) {
	period, err := s.GetPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status == enum.PeriodCompleted || period.Status == enum.PeriodCancelled {
		return nil, apperror.NewBadRequestError("Cannot generate payroll for a " + string(period.Status) + " period")
	}

	if workingDays <= 0 {
		workingDays = defaultWorkingDays
	}

	employees, err := s.employeeRepo.ListByStatus(ctx, enum.EmployeeActive)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Runs: []entity.PayrollRun{}}

	for _, emp := range employees {
		exists, err := s.payrollRepo.HasRun(ctx, periodID, emp.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped++
			continue
		}

		grossPay := emp.BaseSalary
		taxAmount := grossPay * taxRate
		socialSecurity := grossPay * socialSecurityRate
		healthInsurance := grossPay * healthInsuranceRate
		netPay := grossPay - (taxAmount + socialSecurity + healthInsurance)

		run := entity.PayrollRun{
			ID:              identifier.New("pr"),
			PayrollPeriodID: periodID,
			EmployeeID:      emp.ID,
			BaseSalary:      emp.BaseSalary,
			WorkedDays:      workingDays,
			TaxAmount:       taxAmount,
			SocialSecurity:  socialSecurity,
			HealthInsurance: healthInsurance,
			GrossPay:        grossPay,
			NetPay:          netPay,
			Status:          enum.RunPending,
		}

		if err := s.payrollRepo.CreateRun(ctx, &run); err != nil {
			return nil, err
		}

		result.Generated++
		result.Runs = append(result.Runs, run)
	}

	period.Status = enum.PeriodProcessing
	if err := s.payrollRepo.UpdatePeriod(ctx, period); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateRunInput represents a manually created payroll run
type CreateRunInput struct {
	PayrollPeriodID     string
	EmployeeID          string
	BaseSalary          float64
	WorkedDays          float64
	OvertimeHours       float64
	OvertimePay         float64
	Bonuses             float64
	BonusNotes          *string
	Deductions          float64
	DeductionNotes      *string
	TaxAmount           float64
	SocialSecurity      float64
	HealthInsurance     float64
	OtherDeductions     float64
	OtherDeductionNotes *string
}

// CreateRun creates a payroll run from caller-supplied components. Gross
// and net pay are always recomputed from the components; caller-supplied
// totals are never trusted.
func (s *PayrollService) CreateRun(ctx context.Context, input *CreateRunInput) (*entity.PayrollRun, error) {
	period, err := s.payrollRepo.GetPeriod(ctx, input.PayrollPeriodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, apperror.NewNotFoundError("Payroll period")
	}

	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	grossPay := input.BaseSalary + input.OvertimePay + input.Bonuses
	totalDeductions := input.Deductions + input.TaxAmount + input.SocialSecurity +
		input.HealthInsurance + input.OtherDeductions
	netPay := grossPay - totalDeductions

	run := &entity.PayrollRun{
		ID:                  identifier.New("pr"),
		PayrollPeriodID:     input.PayrollPeriodID,
		EmployeeID:          input.EmployeeID,
		BaseSalary:          input.BaseSalary,
		WorkedDays:          input.WorkedDays,
		OvertimeHours:       input.OvertimeHours,
		OvertimePay:         input.OvertimePay,
		Bonuses:             input.Bonuses,
		BonusNotes:          input.BonusNotes,
		Deductions:          input.Deductions,
		DeductionNotes:      input.DeductionNotes,
		TaxAmount:           input.TaxAmount,
		SocialSecurity:      input.SocialSecurity,
		HealthInsurance:     input.HealthInsurance,
		OtherDeductions:     input.OtherDeductions,
		OtherDeductionNotes: input.OtherDeductionNotes,
		GrossPay:            grossPay,
		NetPay:              netPay,
		Status:              enum.RunPending,
	}

	if err := s.payrollRepo.CreateRun(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// UpdateRunStatus moves a payroll run through its payout lifecycle,
// stamping PaidAt when it becomes paid.
func (s *PayrollService) UpdateRunStatus(ctx context.Context, id string, status enum.RunStatus) (*entity.PayrollRun, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid run status")
	}

	run, err := s.payrollRepo.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, apperror.NewNotFoundError("Payroll run")
	}

	run.Status = status
	if status == enum.RunPaid {
		now := time.Now()
		run.PaidAt = &now
	}

	if err := s.payrollRepo.UpdateRun(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns lists payroll runs, optionally for one period
func (s *PayrollService) ListRuns(ctx context.Context, periodID *string) ([]entity.PayrollRun, error) {
	return s.payrollRepo.ListRuns(ctx, periodID)
}
