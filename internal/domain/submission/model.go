package submission

import "time"

// Submission is one entrant's picks for one contest. CorrectCount, TieDiff
// and IsWinner are engine-written projections filled at finalization.
type Submission struct {
	ContestID    string
	EntrantID    string
	Picks        map[string]string
	Tiebreaker   *int
	SubmittedAt  time.Time
	CorrectCount *int
	TieDiff      *int
	IsWinner     bool
}

func (s Submission) Clone() Submission {
	copied := s
	copied.Picks = make(map[string]string, len(s.Picks))
	for gameID, abbrev := range s.Picks {
		copied.Picks[gameID] = abbrev
	}
	if s.Tiebreaker != nil {
		v := *s.Tiebreaker
		copied.Tiebreaker = &v
	}
	if s.CorrectCount != nil {
		v := *s.CorrectCount
		copied.CorrectCount = &v
	}
	if s.TieDiff != nil {
		v := *s.TieDiff
		copied.TieDiff = &v
	}
	return copied
}
