package postgres

import (
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/pickemlab/daily-pickem/internal/domain/submission"
)

type submissionTableModel struct {
	ID           int64         `db:"id"`
	ContestID    string        `db:"contest_id"`
	EntrantID    string        `db:"entrant_id"`
	Picks        []byte        `db:"picks"`
	Tiebreaker   sql.NullInt64 `db:"tiebreaker"`
	SubmittedAt  time.Time     `db:"submitted_at"`
	CorrectCount sql.NullInt64 `db:"correct_count"`
	TieDiff      sql.NullInt64 `db:"tie_diff"`
	IsWinner     bool          `db:"is_winner"`
}

func (m submissionTableModel) toDomain() (submission.Submission, error) {
	item := submission.Submission{
		ContestID:    m.ContestID,
		EntrantID:    m.EntrantID,
		Tiebreaker:   nullIntToPtr(m.Tiebreaker),
		SubmittedAt:  m.SubmittedAt.UTC(),
		CorrectCount: nullIntToPtr(m.CorrectCount),
		TieDiff:      nullIntToPtr(m.TieDiff),
		IsWinner:     m.IsWinner,
	}
	if len(m.Picks) > 0 {
		if err := sonic.Unmarshal(m.Picks, &item.Picks); err != nil {
			return submission.Submission{}, fmt.Errorf("decode picks for %s/%s: %w", m.ContestID, m.EntrantID, err)
		}
	}
	return item, nil
}
