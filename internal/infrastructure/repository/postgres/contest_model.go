package postgres

import (
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
)

type contestTableModel struct {
	ID               string        `db:"id"`
	WindowStart      time.Time     `db:"window_start"`
	WindowEnd        time.Time     `db:"window_end"`
	LockTime         *time.Time    `db:"lock_time"`
	ResetTime        time.Time     `db:"reset_time"`
	GameIDs          []byte        `db:"game_ids"`
	FinalizedAt      *time.Time    `db:"finalized_at"`
	FinalizeReason   string        `db:"finalize_reason"`
	WinnersByGame    []byte        `db:"winners_by_game"`
	ActualTiebreaker sql.NullInt64 `db:"actual_tiebreaker"`
	WinnerEntrantIDs []byte        `db:"winner_entrant_ids"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

func newContestTableModel(item contest.Contest) (contestTableModel, error) {
	gameIDs, err := sonic.Marshal(item.GameIDs)
	if err != nil {
		return contestTableModel{}, fmt.Errorf("encode game ids: %w", err)
	}
	winnersByGame, err := sonic.Marshal(item.WinnersByGame)
	if err != nil {
		return contestTableModel{}, fmt.Errorf("encode winners by game: %w", err)
	}
	winnerEntrants, err := sonic.Marshal(item.WinnerEntrantIDs)
	if err != nil {
		return contestTableModel{}, fmt.Errorf("encode winner entrants: %w", err)
	}

	return contestTableModel{
		ID:               item.ID,
		WindowStart:      item.WindowStart.UTC(),
		WindowEnd:        item.WindowEnd.UTC(),
		LockTime:         item.LockTime,
		ResetTime:        item.ResetTime.UTC(),
		GameIDs:          gameIDs,
		FinalizedAt:      item.FinalizedAt,
		FinalizeReason:   item.FinalizeReason,
		WinnersByGame:    winnersByGame,
		ActualTiebreaker: ptrToNullInt(item.ActualTiebreaker),
		WinnerEntrantIDs: winnerEntrants,
		CreatedAt:        item.CreatedAt.UTC(),
		UpdatedAt:        item.UpdatedAt.UTC(),
	}, nil
}

func (m contestTableModel) toDomain() (contest.Contest, error) {
	item := contest.Contest{
		ID:               m.ID,
		WindowStart:      m.WindowStart.UTC(),
		WindowEnd:        m.WindowEnd.UTC(),
		LockTime:         m.LockTime,
		ResetTime:        m.ResetTime.UTC(),
		FinalizedAt:      m.FinalizedAt,
		FinalizeReason:   m.FinalizeReason,
		ActualTiebreaker: nullIntToPtr(m.ActualTiebreaker),
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
	if len(m.GameIDs) > 0 {
		if err := sonic.Unmarshal(m.GameIDs, &item.GameIDs); err != nil {
			return contest.Contest{}, fmt.Errorf("decode game ids for %s: %w", m.ID, err)
		}
	}
	if len(m.WinnersByGame) > 0 {
		if err := sonic.Unmarshal(m.WinnersByGame, &item.WinnersByGame); err != nil {
			return contest.Contest{}, fmt.Errorf("decode winners by game for %s: %w", m.ID, err)
		}
	}
	if len(m.WinnerEntrantIDs) > 0 {
		if err := sonic.Unmarshal(m.WinnerEntrantIDs, &item.WinnerEntrantIDs); err != nil {
			return contest.Contest{}, fmt.Errorf("decode winner entrants for %s: %w", m.ID, err)
		}
	}
	return item, nil
}
