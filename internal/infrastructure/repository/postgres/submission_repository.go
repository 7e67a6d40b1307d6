package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/pickemlab/daily-pickem/internal/domain/submission"
	qb "github.com/pickemlab/daily-pickem/internal/platform/querybuilder"
)

type SubmissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) GetByContestAndEntrant(ctx context.Context, contestID, entrantID string) (submission.Submission, bool, error) {
	query, args, err := qb.Select("*").From("submissions").
		Where(
			qb.Eq("contest_id", contestID),
			qb.Eq("entrant_id", entrantID),
		).
		ToSQL()
	if err != nil {
		return submission.Submission{}, false, fmt.Errorf("build select submission query: %w", err)
	}

	var row submissionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return submission.Submission{}, false, nil
		}
		return submission.Submission{}, false, fmt.Errorf("select submission: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return submission.Submission{}, false, err
	}
	return item, true, nil
}

func (r *SubmissionRepository) ListByContest(ctx context.Context, contestID string) ([]submission.Submission, error) {
	query, args, err := qb.Select("*").From("submissions").
		Where(qb.Eq("contest_id", contestID)).
		OrderBy("submitted_at DESC", "entrant_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select submissions query: %w", err)
	}

	var rows []submissionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select submissions: %w", err)
	}

	out := make([]submission.Submission, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *SubmissionRepository) InsertOnce(ctx context.Context, item submission.Submission) (bool, error) {
	picks, err := sonic.Marshal(item.Picks)
	if err != nil {
		return false, fmt.Errorf("encode picks: %w", err)
	}

	query, args, err := qb.InsertInto("submissions").
		Columns("contest_id", "entrant_id", "picks", "tiebreaker", "submitted_at").
		Values(item.ContestID, item.EntrantID, picks, ptrToNullInt(item.Tiebreaker), item.SubmittedAt.UTC()).
		Suffix("ON CONFLICT (contest_id, entrant_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build insert submission query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert submission: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert submission rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *SubmissionRepository) UpdateScores(ctx context.Context, contestID string, updates []submission.ScoreUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin score update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, update := range updates {
		query, args, err := qb.Update("submissions").
			Set("correct_count", update.CorrectCount).
			Set("tie_diff", ptrToNullInt(update.TieDiff)).
			Set("is_winner", update.IsWinner).
			Where(
				qb.Eq("contest_id", contestID),
				qb.Eq("entrant_id", update.EntrantID),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update scores query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update scores for %s/%s: %w", contestID, update.EntrantID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score update: %w", err)
	}
	return nil
}
