package contest

import (
	"context"
	"time"
)

// FinalizeCommit carries the fields written by the single finalize commit.
type FinalizeCommit struct {
	FinalizedAt      time.Time
	Reason           string
	WinnersByGame    map[string]string
	ActualTiebreaker *int
	WinnerEntrantIDs []string
}

// Repository exposes contest persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Contest, bool, error)
	// Upsert creates or refreshes a contest record. A finalized contest is
	// never overwritten.
	Upsert(ctx context.Context, item Contest) error
	// FinalizeOnce applies the commit only while the contest is still
	// unfinalized and reports whether this caller won the write.
	FinalizeOnce(ctx context.Context, id string, commit FinalizeCommit) (bool, error)
	ListUnfinalized(ctx context.Context) ([]Contest, error)
}
