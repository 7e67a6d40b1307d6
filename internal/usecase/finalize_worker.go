package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/pickemlab/daily-pickem/internal/platform/logging"
)

const (
	defaultFinalizePollInterval = 3 * time.Minute
	defaultFinalizeMaxWorkers   = 4

	sweepStatusFinalized = "finalized"
	sweepStatusPending   = "pending"
	sweepStatusFailed    = "failed"
)

// FinalizeWorker periodically sweeps unfinalized contests through
// MaybeFinalize. The sweep is safe to run from several processes at once;
// the store's conditional commit keeps finalization write-once.
type FinalizeWorker struct {
	service      *ContestService
	logger       *logging.Logger
	pollInterval time.Duration
	maxWorkers   int
}

type SweepResult struct {
	Pending   int              `json:"pending"`
	Finalized int              `json:"finalized"`
	Failed    int              `json:"failed"`
	Contests  []SweepTaskResult `json:"contests"`
}

type SweepTaskResult struct {
	ContestID  string `json:"contest_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

func NewFinalizeWorker(service *ContestService, logger *logging.Logger, pollInterval time.Duration, maxWorkers int) *FinalizeWorker {
	if logger == nil {
		logger = logging.NewNop()
	}
	if pollInterval <= 0 {
		pollInterval = defaultFinalizePollInterval
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultFinalizeMaxWorkers
	}
	return &FinalizeWorker{
		service:      service,
		logger:       logger,
		pollInterval: pollInterval,
		maxWorkers:   maxWorkers,
	}
}

// Run blocks until ctx is cancelled, sweeping once immediately and then on
// every poll tick.
func (w *FinalizeWorker) Run(ctx context.Context) {
	var loops conc.WaitGroup
	loops.Go(func() {
		w.sweepLoop(ctx)
	})
	loops.Wait()
}

func (w *FinalizeWorker) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		if result, err := w.Sweep(ctx); err != nil {
			w.logger.WarnContext(ctx, "finalize sweep failed", "error", err)
		} else if result.Pending > 0 {
			w.logger.InfoContext(ctx, "finalize sweep done",
				"pending", result.Pending,
				"finalized", result.Finalized,
				"failed", result.Failed,
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sweep runs MaybeFinalize across every unfinalized contest on a bounded
// worker pool and reports the per-contest outcomes.
func (w *FinalizeWorker) Sweep(ctx context.Context) (SweepResult, error) {
	items, err := w.service.ListUnfinalized(ctx)
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{Pending: len(items)}
	if len(items) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(w.maxWorkers)
	if err != nil {
		return SweepResult{}, fmt.Errorf("create finalize pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan SweepTaskResult, len(items))
	var finalizedCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, item := range items {
		contestID := item.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := SweepTaskResult{ContestID: contestID}

			finalized, runErr := w.finalizeOne(ctx, contestID, &row)
			row.DurationMs = time.Since(start).Milliseconds()
			if runErr != nil {
				failedCount.Add(1)
			} else if finalized {
				finalizedCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return SweepResult{}, fmt.Errorf("submit contest to finalize pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Contests = append(result.Contests, row)
	}
	sort.SliceStable(result.Contests, func(i, j int) bool {
		return result.Contests[i].ContestID < result.Contests[j].ContestID
	})

	result.Finalized = int(finalizedCount.Load())
	result.Failed = int(failedCount.Load())
	return result, nil
}

func (w *FinalizeWorker) finalizeOne(ctx context.Context, contestID string, row *SweepTaskResult) (bool, error) {
	item, finalized, err := w.service.MaybeFinalize(ctx, contestID)
	if err != nil {
		row.Status = sweepStatusFailed
		row.Message = err.Error()
		w.logger.WarnContext(ctx, "finalize attempt failed", "contest_id", contestID, "error", err)
		return false, err
	}
	if !finalized {
		row.Status = sweepStatusPending
		return false, nil
	}

	row.Status = sweepStatusFinalized
	row.Reason = item.FinalizeReason
	w.logger.InfoContext(ctx, "contest finalized",
		"contest_id", contestID,
		"reason", item.FinalizeReason,
		"winners", len(item.WinnerEntrantIDs),
	)
	return true, nil
}
