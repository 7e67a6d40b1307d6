package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
	qb "github.com/pickemlab/daily-pickem/internal/platform/querybuilder"
)

type ContestRepository struct {
	db *sqlx.DB
}

func NewContestRepository(db *sqlx.DB) *ContestRepository {
	return &ContestRepository{db: db}
}

func (r *ContestRepository) GetByID(ctx context.Context, id string) (contest.Contest, bool, error) {
	query, args, err := qb.Select("*").From("contests").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return contest.Contest{}, false, fmt.Errorf("build select contest query: %w", err)
	}

	var row contestTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contest.Contest{}, false, nil
		}
		return contest.Contest{}, false, fmt.Errorf("select contest: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return contest.Contest{}, false, err
	}
	return item, true, nil
}

func (r *ContestRepository) Upsert(ctx context.Context, item contest.Contest) error {
	row, err := newContestTableModel(item)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("contests").
		Columns("id", "window_start", "window_end", "lock_time", "reset_time", "game_ids", "finalize_reason", "created_at", "updated_at").
		Values(row.ID, row.WindowStart, row.WindowEnd, row.LockTime, row.ResetTime, row.GameIDs, row.FinalizeReason, row.CreatedAt, row.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			lock_time = EXCLUDED.lock_time,
			reset_time = EXCLUDED.reset_time,
			game_ids = EXCLUDED.game_ids,
			updated_at = EXCLUDED.updated_at
		WHERE contests.finalized_at IS NULL`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert contest query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert contest: %w", err)
	}
	return nil
}

func (r *ContestRepository) FinalizeOnce(ctx context.Context, id string, commit contest.FinalizeCommit) (bool, error) {
	winnersByGame, err := sonic.Marshal(commit.WinnersByGame)
	if err != nil {
		return false, fmt.Errorf("encode winners by game: %w", err)
	}
	winnerEntrants, err := sonic.Marshal(commit.WinnerEntrantIDs)
	if err != nil {
		return false, fmt.Errorf("encode winner entrants: %w", err)
	}

	query, args, err := qb.Update("contests").
		Set("finalized_at", commit.FinalizedAt.UTC()).
		Set("finalize_reason", commit.Reason).
		Set("winners_by_game", winnersByGame).
		Set("actual_tiebreaker", ptrToNullInt(commit.ActualTiebreaker)).
		Set("winner_entrant_ids", winnerEntrants).
		Set("updated_at", commit.FinalizedAt.UTC()).
		Where(
			qb.Eq("id", id),
			qb.IsNull("finalized_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build finalize contest query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("finalize contest: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("finalize contest rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *ContestRepository) ListUnfinalized(ctx context.Context) ([]contest.Contest, error) {
	query, args, err := qb.Select("*").From("contests").
		Where(qb.IsNull("finalized_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unfinalized contests query: %w", err)
	}

	var rows []contestTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select unfinalized contests: %w", err)
	}

	out := make([]contest.Contest, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
