package enum

// PeriodStatus is the lifecycle state of a payroll period.
// draft -> processing (on generation) -> completed or cancelled (terminal).
type PeriodStatus string

const (
	PeriodDraft      PeriodStatus = "draft"
	PeriodProcessing PeriodStatus = "processing"
	PeriodCompleted  PeriodStatus = "completed"
	PeriodCancelled  PeriodStatus = "cancelled"
)

func (s PeriodStatus) Valid() bool {
	switch s {
	case PeriodDraft, PeriodProcessing, PeriodCompleted, PeriodCancelled:
		return true
	}
	return false
}

// RunStatus is the payout state of a single payroll run.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunApproved  RunStatus = "approved"
	RunPaid      RunStatus = "paid"
	RunCancelled RunStatus = "cancelled"
)

func (s RunStatus) Valid() bool {
	switch s {
	case RunPending, RunApproved, RunPaid, RunCancelled:
		return true
	}
	return false
}
