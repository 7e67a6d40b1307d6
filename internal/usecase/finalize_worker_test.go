package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/pickemlab/daily-pickem/internal/domain/game"
	"github.com/pickemlab/daily-pickem/internal/platform/logging"
)

func TestSweep_FinalizesCompletedContest(t *testing.T) {
	now := middayEastern(t)
	gameStart := now.Add(7 * time.Hour)
	f := newServiceFixture(t, now, slate(gameStart))

	if _, err := f.service.GetOrOpenContest(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}

	f.setNow(gameStart.Add(6 * time.Hour))
	f.schedule.setGames(finishedSlate(gameStart))

	worker := NewFinalizeWorker(f.service, logging.NewNop(), time.Minute, 2)
	result, err := worker.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if result.Finalized != 1 {
		t.Fatalf("expected 1 finalized, got %+v", result)
	}
	if result.Pending != 0 || result.Failed != 0 {
		t.Fatalf("expected no pending or failed contests, got %+v", result)
	}
	if len(result.Contests) != 1 || result.Contests[0].Status != "finalized" {
		t.Fatalf("unexpected sweep rows: %+v", result.Contests)
	}

	remaining, err := f.service.ListUnfinalized(context.Background())
	if err != nil {
		t.Fatalf("list unfinalized: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no unfinalized contests, got %d", len(remaining))
	}
}

func TestSweep_ReportsPendingWhileGamesRun(t *testing.T) {
	now := middayEastern(t)
	gameStart := now.Add(7 * time.Hour)
	f := newServiceFixture(t, now, slate(gameStart))

	if _, err := f.service.GetOrOpenContest(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}

	f.setNow(gameStart.Add(time.Hour))
	games := finishedSlate(gameStart)
	games[1].Status = game.StatusLive
	f.schedule.setGames(games)

	worker := NewFinalizeWorker(f.service, logging.NewNop(), time.Minute, 2)
	result, err := worker.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if result.Pending != 1 || result.Finalized != 0 {
		t.Fatalf("expected 1 pending, got %+v", result)
	}
}

func TestSweep_EmptyWhenNothingToFinalize(t *testing.T) {
	now := middayEastern(t)
	f := newServiceFixture(t, now, nil)

	worker := NewFinalizeWorker(f.service, logging.NewNop(), time.Minute, 2)
	result, err := worker.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if result.Pending != 0 || result.Finalized != 0 || result.Failed != 0 {
		t.Fatalf("expected empty sweep, got %+v", result)
	}
	if len(result.Contests) != 0 {
		t.Fatalf("expected no rows, got %+v", result.Contests)
	}
}
