package memory

import (
	"context"
	"sync"

	"github.com/pickemlab/daily-pickem/internal/domain/submission"
)

type SubmissionRepository struct {
	mu    sync.Mutex
	items map[string]submission.Submission
}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{items: make(map[string]submission.Submission)}
}

func (r *SubmissionRepository) GetByContestAndEntrant(_ context.Context, contestID, entrantID string) (submission.Submission, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[submissionKey(contestID, entrantID)]
	if !ok {
		return submission.Submission{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *SubmissionRepository) ListByContest(_ context.Context, contestID string) ([]submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]submission.Submission, 0)
	for _, item := range r.items {
		if item.ContestID == contestID {
			items = append(items, item.Clone())
		}
	}
	return items, nil
}

func (r *SubmissionRepository) InsertOnce(_ context.Context, item submission.Submission) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := submissionKey(item.ContestID, item.EntrantID)
	if _, exists := r.items[key]; exists {
		return false, nil
	}
	r.items[key] = item.Clone()
	return true, nil
}

func (r *SubmissionRepository) UpdateScores(_ context.Context, contestID string, updates []submission.ScoreUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, update := range updates {
		key := submissionKey(contestID, update.EntrantID)
		item, ok := r.items[key]
		if !ok {
			continue
		}
		correct := update.CorrectCount
		item.CorrectCount = &correct
		item.TieDiff = cloneIntPtr(update.TieDiff)
		item.IsWinner = update.IsWinner
		r.items[key] = item
	}
	return nil
}

func submissionKey(contestID, entrantID string) string {
	return contestID + "::" + entrantID
}
