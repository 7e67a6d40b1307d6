package contest

import "time"

const (
	StatusOpen      = "OPEN"
	StatusLocked    = "LOCKED"
	StatusFinalized = "FINALIZED"
)

const (
	FinalizeReasonAllFinal       = "ALL_FINAL"
	FinalizeReasonScheduledReset = "SCHEDULED_RESET"
)

// Contest is one daily pick'em contest. Scoring fields are written once,
// by the finalize commit that wins the guard.
type Contest struct {
	ID               string
	WindowStart      time.Time
	WindowEnd        time.Time
	LockTime         *time.Time
	ResetTime        time.Time
	GameIDs          []string
	FinalizedAt      *time.Time
	FinalizeReason   string
	WinnersByGame    map[string]string
	ActualTiebreaker *int
	WinnerEntrantIDs []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c Contest) IsFinalized() bool {
	return c.FinalizedAt != nil
}

// StatusAt projects the lifecycle state from stored fields; lock state is
// never persisted.
func (c Contest) StatusAt(now time.Time) string {
	if c.IsFinalized() {
		return StatusFinalized
	}
	if c.AcceptsAt(now) {
		return StatusOpen
	}
	return StatusLocked
}

// AcceptsAt reports whether a submission arriving at now is accepted.
// A contest without games never accepts, and now equal to the lock time
// is already locked.
func (c Contest) AcceptsAt(now time.Time) bool {
	if c.IsFinalized() || c.LockTime == nil {
		return false
	}
	return now.Before(*c.LockTime)
}
