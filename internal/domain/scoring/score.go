package scoring

import (
	"sort"

	"github.com/pickemlab/daily-pickem/internal/domain/submission"
)

// Scored is one submission with its computed standing.
type Scored struct {
	Submission   submission.Submission
	CorrectCount int
	TieDiff      *int
	IsWinner     bool
}

// Result is the full scored standing for one contest.
type Result struct {
	Scored           []Scored
	WinnerEntrantIDs []string
}

// Score ranks submissions against the decided winners. A pick on a game
// with no decided winner (tie, unfinished) is never correct. TieDiff is the
// absolute distance between the entrant's tiebreaker guess and the actual
// value; it is nil when either side is absent.
//
// Ranking is correct count descending, then tie diff ascending with nil
// last, then entrant id for determinism. Winners are the leaders on correct
// count narrowed by the best tie diff among them; when no leader has a tie
// diff the tiebreaker cannot discriminate and every leader wins.
func Score(subs []submission.Submission, winnersByGame map[string]string, actualTiebreaker *int) Result {
	scored := make([]Scored, 0, len(subs))
	for _, sub := range subs {
		correct := 0
		for gameID, pick := range sub.Picks {
			if winner, ok := winnersByGame[gameID]; ok && winner == pick {
				correct++
			}
		}

		var tieDiff *int
		if actualTiebreaker != nil && sub.Tiebreaker != nil {
			d := *sub.Tiebreaker - *actualTiebreaker
			if d < 0 {
				d = -d
			}
			tieDiff = &d
		}

		scored = append(scored, Scored{Submission: sub, CorrectCount: correct, TieDiff: tieDiff})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].CorrectCount != scored[j].CorrectCount {
			return scored[i].CorrectCount > scored[j].CorrectCount
		}
		if less, decided := tieDiffLess(scored[i].TieDiff, scored[j].TieDiff); decided {
			return less
		}
		return scored[i].Submission.EntrantID < scored[j].Submission.EntrantID
	})

	winners := selectWinners(scored)
	winnerSet := make(map[string]struct{}, len(winners))
	for _, id := range winners {
		winnerSet[id] = struct{}{}
	}
	for i := range scored {
		_, scored[i].IsWinner = winnerSet[scored[i].Submission.EntrantID]
	}

	return Result{Scored: scored, WinnerEntrantIDs: winners}
}

func tieDiffLess(a, b *int) (less, decided bool) {
	switch {
	case a == nil && b == nil:
		return false, false
	case a == nil:
		return false, true
	case b == nil:
		return true, true
	case *a != *b:
		return *a < *b, true
	default:
		return false, false
	}
}

func selectWinners(scored []Scored) []string {
	if len(scored) == 0 {
		return nil
	}

	top := scored[0].CorrectCount
	leaders := scored[:0:0]
	for _, s := range scored {
		if s.CorrectCount == top {
			leaders = append(leaders, s)
		}
	}

	var best *int
	for _, s := range leaders {
		if s.TieDiff == nil {
			continue
		}
		if best == nil || *s.TieDiff < *best {
			best = s.TieDiff
		}
	}

	winners := make([]string, 0, len(leaders))
	for _, s := range leaders {
		if best == nil || (s.TieDiff != nil && *s.TieDiff == *best) {
			winners = append(winners, s.Submission.EntrantID)
		}
	}
	sort.Strings(winners)
	return winners
}
