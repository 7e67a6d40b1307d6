package submission

import "context"

// ScoreUpdate carries the engine-written fields for one entrant.
type ScoreUpdate struct {
	EntrantID    string
	CorrectCount int
	TieDiff      *int
	IsWinner     bool
}

// Repository exposes submission persistence operations.
type Repository interface {
	GetByContestAndEntrant(ctx context.Context, contestID, entrantID string) (Submission, bool, error)
	ListByContest(ctx context.Context, contestID string) ([]Submission, error)
	// InsertOnce stores the submission unless one already exists for the
	// same contest and entrant, and reports whether it was inserted.
	InsertOnce(ctx context.Context, item Submission) (bool, error)
	// UpdateScores writes scoring projections; entrant picks are untouched.
	UpdateScores(ctx context.Context, contestID string, updates []ScoreUpdate) error
}
