package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
	"github.com/pickemlab/daily-pickem/internal/domain/game"
	contestmock "github.com/pickemlab/daily-pickem/internal/mocks/domain/contest"
	submissionmock "github.com/pickemlab/daily-pickem/internal/mocks/domain/submission"
	usecasemock "github.com/pickemlab/daily-pickem/internal/mocks/usecase"
)

func mockService(t *testing.T, now time.Time) (*ContestService, *contestmock.Repository, *submissionmock.Repository, *usecasemock.ScheduleProvider) {
	t.Helper()

	contestRepo := contestmock.NewRepository(t)
	submissionRepo := submissionmock.NewRepository(t)
	schedule := usecasemock.NewScheduleProvider(t)

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	service := NewContestService(contestRepo, submissionRepo, schedule, ContestConfig{
		Location:     loc,
		BoundaryHour: 7,
		LockBuffer:   30 * time.Minute,
	})
	service.now = func() time.Time { return now }
	return service, contestRepo, submissionRepo, schedule
}

func TestGetOrOpenContest_UpsertFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, time.February, 11, 17, 0, 0, 0, time.UTC)
	service, contestRepo, _, schedule := mockService(t, now)

	anyCtx := mock.MatchedBy(func(context.Context) bool { return true })
	schedule.
		On("GamesForWindow", anyCtx, mock.AnythingOfType("contest.Window")).
		Return([]game.Game{}, nil).
		Once()
	contestRepo.
		On("GetByID", anyCtx, "2026-02-11").
		Return(contest.Contest{}, false, nil).
		Once()
	storeErr := errors.New("connection reset")
	contestRepo.
		On("Upsert", anyCtx, mock.AnythingOfType("contest.Contest")).
		Return(storeErr).
		Once()

	_, err := service.GetOrOpenContest(ctx)
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}

func TestMaybeFinalize_LostCommitIsNoOpUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	windowStart := time.Date(2026, time.February, 11, 12, 0, 0, 0, time.UTC)
	now := windowStart.Add(30 * time.Hour)
	service, contestRepo, submissionRepo, schedule := mockService(t, now)

	pending := contest.Contest{
		ID:          "2026-02-11",
		WindowStart: windowStart,
		WindowEnd:   windowStart.Add(24 * time.Hour),
		ResetTime:   windowStart.Add(24 * time.Hour),
		GameIDs:     []string{"g1"},
	}
	finalizedAt := now
	committed := pending
	committed.FinalizedAt = &finalizedAt
	committed.FinalizeReason = contest.FinalizeReasonScheduledReset

	anyCtx := mock.MatchedBy(func(context.Context) bool { return true })
	contestRepo.
		On("GetByID", anyCtx, "2026-02-11").
		Return(pending, true, nil).
		Once()
	schedule.
		On("GamesForWindow", anyCtx, mock.AnythingOfType("contest.Window")).
		Return([]game.Game{{ID: "g1", StartTimeUTC: windowStart.Add(time.Hour), Status: game.StatusLive}}, nil).
		Once()
	submissionRepo.
		On("ListByContest", anyCtx, "2026-02-11").
		Return(nil, nil).
		Once()
	// Another process commits first.
	contestRepo.
		On("FinalizeOnce", anyCtx, "2026-02-11", mock.AnythingOfType("contest.FinalizeCommit")).
		Return(false, nil).
		Once()
	contestRepo.
		On("GetByID", anyCtx, "2026-02-11").
		Return(committed, true, nil).
		Once()

	item, finalized, err := service.MaybeFinalize(ctx, "2026-02-11")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if finalized {
		t.Fatal("losing the commit must report a no-op")
	}
	if !item.IsFinalized() {
		t.Fatal("re-read must surface the committed record")
	}
}
