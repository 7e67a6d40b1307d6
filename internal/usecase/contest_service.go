package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
	"github.com/pickemlab/daily-pickem/internal/domain/game"
	"github.com/pickemlab/daily-pickem/internal/domain/scoring"
	"github.com/pickemlab/daily-pickem/internal/domain/submission"
	"github.com/pickemlab/daily-pickem/internal/platform/resilience"
)

// ScheduleProvider serves normalized games overlapping a contest window.
// Implementations may return games outside the window; callers filter.
type ScheduleProvider interface {
	GamesForWindow(ctx context.Context, w contest.Window) ([]game.Game, error)
}

type ContestConfig struct {
	Location     *time.Location
	BoundaryHour int
	LockBuffer   time.Duration
	ResetOffset  time.Duration
}

const (
	defaultBoundaryHour = 7
	defaultLockBuffer   = 30 * time.Minute
)

func (c ContestConfig) withDefaults() ContestConfig {
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.BoundaryHour <= 0 || c.BoundaryHour > 23 {
		c.BoundaryHour = defaultBoundaryHour
	}
	if c.LockBuffer <= 0 {
		c.LockBuffer = defaultLockBuffer
	}
	if c.ResetOffset < 0 {
		c.ResetOffset = 0
	}
	return c
}

// ContestService drives the daily contest lifecycle: opening, submission
// gating, finalization and results.
type ContestService struct {
	contestRepo    contest.Repository
	submissionRepo submission.Repository
	schedule       ScheduleProvider
	cfg            ContestConfig
	now            func() time.Time
	finalizeFlight resilience.SingleFlight
}

func NewContestService(
	contestRepo contest.Repository,
	submissionRepo submission.Repository,
	schedule ScheduleProvider,
	cfg ContestConfig,
) *ContestService {
	return &ContestService{
		contestRepo:    contestRepo,
		submissionRepo: submissionRepo,
		schedule:       schedule,
		cfg:            cfg.withDefaults(),
		now:            time.Now,
	}
}

// ContestSnapshot is the current contest with its games and projected state.
type ContestSnapshot struct {
	Contest contest.Contest
	Games   []game.Game
	Status  string
}

// ContestResults is the finalized standing of one contest.
type ContestResults struct {
	Contest          contest.Contest
	ResultsByGame    map[string]string
	ActualTiebreaker *int
	WinnerEntrantIDs []string
	Scored           []scoring.Scored
	FinalizeReason   string
}

// GetOrOpenContest resolves the window containing now, fetches the slate
// and upserts the contest record. Opening is idempotent and a finalized
// contest is returned as stored, never rebuilt.
func (s *ContestService) GetOrOpenContest(ctx context.Context) (ContestSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.GetOrOpenContest")
	defer span.End()

	now := s.now().UTC()
	w := contest.ResolveWindow(now, s.cfg.Location, s.cfg.BoundaryHour)

	games, err := s.fetchWindowGames(ctx, w)
	if err != nil {
		return ContestSnapshot{}, err
	}

	existing, found, err := s.contestRepo.GetByID(ctx, w.ID)
	if err != nil {
		return ContestSnapshot{}, fmt.Errorf("get contest %s: %w", w.ID, err)
	}
	if found && existing.IsFinalized() {
		return ContestSnapshot{Contest: existing, Games: games, Status: existing.StatusAt(now)}, nil
	}

	item := contest.Contest{
		ID:          w.ID,
		WindowStart: w.Start,
		WindowEnd:   w.End,
		ResetTime:   w.End.Add(s.cfg.ResetOffset),
		GameIDs:     gameIDs(games),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if found {
		item.CreatedAt = existing.CreatedAt
	}
	if earliest, ok := game.EarliestStart(games); ok {
		lock := earliest.Add(-s.cfg.LockBuffer)
		item.LockTime = &lock
	}

	if err := s.contestRepo.Upsert(ctx, item); err != nil {
		return ContestSnapshot{}, fmt.Errorf("upsert contest %s: %w", w.ID, err)
	}

	return ContestSnapshot{Contest: item, Games: games, Status: item.StatusAt(now)}, nil
}

// SubmitPicks records one entrant's picks for the current contest.
func (s *ContestService) SubmitPicks(ctx context.Context, entrantID string, picks map[string]string, tiebreaker *int) (submission.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.SubmitPicks")
	defer span.End()

	if entrantID == "" {
		return submission.Submission{}, fmt.Errorf("entrant id is required: %w", ErrInvalidInput)
	}
	if len(picks) == 0 {
		return submission.Submission{}, fmt.Errorf("picks are required: %w", ErrInvalidInput)
	}

	now := s.now().UTC()
	w := contest.ResolveWindow(now, s.cfg.Location, s.cfg.BoundaryHour)

	item, found, err := s.contestRepo.GetByID(ctx, w.ID)
	if err != nil {
		return submission.Submission{}, fmt.Errorf("get contest %s: %w", w.ID, err)
	}
	if !found {
		return submission.Submission{}, fmt.Errorf("contest %s: %w", w.ID, ErrContestNotFound)
	}
	if !item.AcceptsAt(now) {
		return submission.Submission{}, fmt.Errorf("contest %s: %w", w.ID, ErrContestLocked)
	}

	known := make(map[string]struct{}, len(item.GameIDs))
	for _, id := range item.GameIDs {
		known[id] = struct{}{}
	}
	for gameID := range picks {
		if _, ok := known[gameID]; !ok {
			return submission.Submission{}, fmt.Errorf("pick references unknown game %s: %w", gameID, ErrInvalidInput)
		}
	}

	sub := submission.Submission{
		ContestID:   item.ID,
		EntrantID:   entrantID,
		Picks:       picks,
		Tiebreaker:  tiebreaker,
		SubmittedAt: now,
	}
	inserted, err := s.submissionRepo.InsertOnce(ctx, sub)
	if err != nil {
		return submission.Submission{}, fmt.Errorf("insert submission for %s: %w", item.ID, err)
	}
	if !inserted {
		return submission.Submission{}, fmt.Errorf("entrant %s already submitted for %s: %w", entrantID, item.ID, ErrDuplicateSubmission)
	}

	return sub, nil
}

// GetSubmission returns one entrant's submission for a contest.
func (s *ContestService) GetSubmission(ctx context.Context, contestID, entrantID string) (submission.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.GetSubmission")
	defer span.End()

	if _, err := s.requireContest(ctx, contestID); err != nil {
		return submission.Submission{}, err
	}

	sub, found, err := s.submissionRepo.GetByContestAndEntrant(ctx, contestID, entrantID)
	if err != nil {
		return submission.Submission{}, fmt.Errorf("get submission %s/%s: %w", contestID, entrantID, err)
	}
	if !found {
		return submission.Submission{}, fmt.Errorf("submission %s/%s: %w", contestID, entrantID, ErrContestNotFound)
	}
	return sub, nil
}

// ListSubmissions returns every submission for a contest, newest first.
func (s *ContestService) ListSubmissions(ctx context.Context, contestID string) ([]submission.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.ListSubmissions")
	defer span.End()

	if _, err := s.requireContest(ctx, contestID); err != nil {
		return nil, err
	}

	subs, err := s.submissionRepo.ListByContest(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("list submissions for %s: %w", contestID, err)
	}
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
		}
		return subs[i].EntrantID < subs[j].EntrantID
	})
	return subs, nil
}

// MaybeFinalize closes out a contest when every game finished or the reset
// deadline passed. It reports whether this call performed the finalization;
// an already finalized contest is a no-op. Concurrent callers collapse onto
// one in-process run and the store's conditional commit guards the rest.
func (s *ContestService) MaybeFinalize(ctx context.Context, contestID string) (contest.Contest, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.MaybeFinalize")
	defer span.End()

	result, err, _ := s.finalizeFlight.Do("finalize:"+contestID, func() (any, error) {
		item, finalized, runErr := s.maybeFinalizeOnce(ctx, contestID)
		if runErr != nil {
			return nil, runErr
		}
		return finalizeOutcome{contest: item, finalized: finalized}, nil
	})
	if err != nil {
		return contest.Contest{}, false, err
	}
	outcome := result.(finalizeOutcome)
	return outcome.contest, outcome.finalized, nil
}

type finalizeOutcome struct {
	contest   contest.Contest
	finalized bool
}

func (s *ContestService) maybeFinalizeOnce(ctx context.Context, contestID string) (contest.Contest, bool, error) {
	item, err := s.requireContest(ctx, contestID)
	if err != nil {
		return contest.Contest{}, false, err
	}
	if item.IsFinalized() {
		return item, false, nil
	}

	now := s.now().UTC()
	w := contest.Window{ID: item.ID, Start: item.WindowStart, End: item.WindowEnd}
	games, err := s.fetchWindowGames(ctx, w)
	if err != nil {
		return contest.Contest{}, false, err
	}
	contestGames := rosterGames(games, item.GameIDs)

	// A roster game absent from the feed is unresolved and blocks the
	// early-completion path.
	allFinal := len(contestGames) == len(item.GameIDs) && game.AllFinal(contestGames)

	var reason string
	switch {
	case allFinal:
		reason = contest.FinalizeReasonAllFinal
	case !now.Before(item.ResetTime):
		reason = contest.FinalizeReasonScheduledReset
	default:
		return item, false, nil
	}

	subs, err := s.submissionRepo.ListByContest(ctx, contestID)
	if err != nil {
		return contest.Contest{}, false, fmt.Errorf("list submissions for %s: %w", contestID, err)
	}

	winners := game.WinnersByGame(contestGames)
	tiebreaker := game.ActualTiebreaker(contestGames)
	standing := scoring.Score(subs, winners, tiebreaker)

	commit := contest.FinalizeCommit{
		FinalizedAt:      now,
		Reason:           reason,
		WinnersByGame:    winners,
		ActualTiebreaker: tiebreaker,
		WinnerEntrantIDs: standing.WinnerEntrantIDs,
	}
	won, err := s.contestRepo.FinalizeOnce(ctx, contestID, commit)
	if err != nil {
		return contest.Contest{}, false, fmt.Errorf("finalize contest %s: %w", contestID, err)
	}
	if !won {
		// Another process committed first; re-read and report no-op.
		item, err = s.requireContest(ctx, contestID)
		if err != nil {
			return contest.Contest{}, false, err
		}
		return item, false, nil
	}

	updates := make([]submission.ScoreUpdate, 0, len(standing.Scored))
	for _, scored := range standing.Scored {
		updates = append(updates, submission.ScoreUpdate{
			EntrantID:    scored.Submission.EntrantID,
			CorrectCount: scored.CorrectCount,
			TieDiff:      scored.TieDiff,
			IsWinner:     scored.IsWinner,
		})
	}
	if err := s.submissionRepo.UpdateScores(ctx, contestID, updates); err != nil {
		return contest.Contest{}, false, fmt.Errorf("persist scores for %s: %w", contestID, err)
	}

	item, err = s.requireContest(ctx, contestID)
	if err != nil {
		return contest.Contest{}, false, err
	}
	return item, true, nil
}

// GetResults serves the finalized standing. Results do not exist before
// finalization; asking earlier reports not found. Scores are recomputed
// from the stored result map so the persisted fields stay a cache.
func (s *ContestService) GetResults(ctx context.Context, contestID string) (ContestResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.GetResults")
	defer span.End()

	item, err := s.requireContest(ctx, contestID)
	if err != nil {
		return ContestResults{}, err
	}
	if !item.IsFinalized() {
		return ContestResults{}, fmt.Errorf("results for %s not available: %w", contestID, ErrContestNotFound)
	}

	subs, err := s.submissionRepo.ListByContest(ctx, contestID)
	if err != nil {
		return ContestResults{}, fmt.Errorf("list submissions for %s: %w", contestID, err)
	}
	standing := scoring.Score(subs, item.WinnersByGame, item.ActualTiebreaker)

	return ContestResults{
		Contest:          item,
		ResultsByGame:    item.WinnersByGame,
		ActualTiebreaker: item.ActualTiebreaker,
		WinnerEntrantIDs: item.WinnerEntrantIDs,
		Scored:           standing.Scored,
		FinalizeReason:   item.FinalizeReason,
	}, nil
}

// ListUnfinalized exposes pending contests for the sweep worker.
func (s *ContestService) ListUnfinalized(ctx context.Context) ([]contest.Contest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.ListUnfinalized")
	defer span.End()

	items, err := s.contestRepo.ListUnfinalized(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unfinalized contests: %w", err)
	}
	return items, nil
}

func (s *ContestService) requireContest(ctx context.Context, contestID string) (contest.Contest, error) {
	if contestID == "" {
		return contest.Contest{}, fmt.Errorf("contest id is required: %w", ErrInvalidInput)
	}
	item, found, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return contest.Contest{}, fmt.Errorf("get contest %s: %w", contestID, err)
	}
	if !found {
		return contest.Contest{}, fmt.Errorf("contest %s: %w", contestID, ErrContestNotFound)
	}
	return item, nil
}

func (s *ContestService) fetchWindowGames(ctx context.Context, w contest.Window) ([]game.Game, error) {
	games, err := s.schedule.GamesForWindow(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("fetch games for %s: %w: %w", w.ID, ErrUpstreamUnavailable, err)
	}
	return game.FilterByWindow(games, w), nil
}

func gameIDs(games []game.Game) []string {
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	sort.Strings(ids)
	return ids
}

func rosterGames(games []game.Game, roster []string) []game.Game {
	known := make(map[string]struct{}, len(roster))
	for _, id := range roster {
		known[id] = struct{}{}
	}
	kept := make([]game.Game, 0, len(roster))
	for _, g := range games {
		if _, ok := known[g.ID]; ok {
			kept = append(kept, g)
		}
	}
	return kept
}
