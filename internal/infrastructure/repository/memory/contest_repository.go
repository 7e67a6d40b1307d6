package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
)

type ContestRepository struct {
	mu    sync.Mutex
	items map[string]contest.Contest
}

func NewContestRepository() *ContestRepository {
	return &ContestRepository{items: make(map[string]contest.Contest)}
}

func (r *ContestRepository) GetByID(_ context.Context, id string) (contest.Contest, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return contest.Contest{}, false, nil
	}
	return cloneContest(item), true, nil
}

func (r *ContestRepository) Upsert(_ context.Context, item contest.Contest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ID]; ok && existing.IsFinalized() {
		return nil
	}
	r.items[item.ID] = cloneContest(item)
	return nil
}

func (r *ContestRepository) FinalizeOnce(_ context.Context, id string, commit contest.FinalizeCommit) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.IsFinalized() {
		return false, nil
	}

	finalizedAt := commit.FinalizedAt
	item.FinalizedAt = &finalizedAt
	item.FinalizeReason = commit.Reason
	item.WinnersByGame = cloneStringMap(commit.WinnersByGame)
	item.ActualTiebreaker = cloneIntPtr(commit.ActualTiebreaker)
	item.WinnerEntrantIDs = append([]string(nil), commit.WinnerEntrantIDs...)
	item.UpdatedAt = finalizedAt
	r.items[id] = item
	return true, nil
}

func (r *ContestRepository) ListUnfinalized(_ context.Context) ([]contest.Contest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]contest.Contest, 0, len(r.items))
	for _, item := range r.items {
		if item.IsFinalized() {
			continue
		}
		items = append(items, cloneContest(item))
	}
	return items, nil
}

func cloneContest(item contest.Contest) contest.Contest {
	copied := item
	copied.GameIDs = append([]string(nil), item.GameIDs...)
	copied.WinnerEntrantIDs = append([]string(nil), item.WinnerEntrantIDs...)
	copied.WinnersByGame = cloneStringMap(item.WinnersByGame)
	copied.LockTime = cloneTimePtr(item.LockTime)
	copied.FinalizedAt = cloneTimePtr(item.FinalizedAt)
	copied.ActualTiebreaker = cloneIntPtr(item.ActualTiebreaker)
	return copied
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	copied := make(map[string]string, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneIntPtr(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
