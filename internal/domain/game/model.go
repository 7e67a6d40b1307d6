package game

import (
	"sort"
	"strings"
	"time"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
)

const (
	StatusUpcoming = "UPCOMING"
	StatusLive     = "LIVE"
	StatusFinal    = "FINAL"
)

// Team identifies one side of a game. Abbrev is the pickable token.
type Team struct {
	Abbrev string
	Name   string
}

// Game is one normalized upstream game. StartTimeUTC is the canonical
// instant; local renderings are derived from it, never stored.
type Game struct {
	ID           string
	StartTimeUTC time.Time
	HomeTeam     Team
	AwayTeam     Team
	HomeScore    *int
	AwayScore    *int
	Status       string
}

// NormalizeStatus maps raw provider states onto the canonical set.
// Unknown states degrade to UPCOMING so a new provider state never
// finalizes a contest early.
func NormalizeStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LIVE", "CRIT":
		return StatusLive
	case "FINAL", "OFF":
		return StatusFinal
	default:
		return StatusUpcoming
	}
}

func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

// Winner returns the winning team abbreviation. There is no winner while
// the game is not final, when a score is missing, or when the game tied.
func (g Game) Winner() (string, bool) {
	if !g.IsFinal() || g.HomeScore == nil || g.AwayScore == nil {
		return "", false
	}
	switch {
	case *g.HomeScore > *g.AwayScore:
		return g.HomeTeam.Abbrev, true
	case *g.AwayScore > *g.HomeScore:
		return g.AwayTeam.Abbrev, true
	default:
		return "", false
	}
}

// CombinedGoals is the tiebreaker contribution of one finished game.
func (g Game) CombinedGoals() (int, bool) {
	if !g.IsFinal() || g.HomeScore == nil || g.AwayScore == nil {
		return 0, false
	}
	return *g.HomeScore + *g.AwayScore, true
}

// FilterByWindow keeps games whose start instant falls inside the half-open
// contest window, sorted by start time then id.
func FilterByWindow(games []Game, w contest.Window) []Game {
	kept := make([]Game, 0, len(games))
	for _, g := range games {
		if w.Contains(g.StartTimeUTC) {
			kept = append(kept, g)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if !kept[i].StartTimeUTC.Equal(kept[j].StartTimeUTC) {
			return kept[i].StartTimeUTC.Before(kept[j].StartTimeUTC)
		}
		return kept[i].ID < kept[j].ID
	})
	return kept
}

// EarliestStart returns the first start instant among games.
func EarliestStart(games []Game) (time.Time, bool) {
	if len(games) == 0 {
		return time.Time{}, false
	}
	earliest := games[0].StartTimeUTC
	for _, g := range games[1:] {
		if g.StartTimeUTC.Before(earliest) {
			earliest = g.StartTimeUTC
		}
	}
	return earliest, true
}

// AllFinal reports whether every game finished. An empty slice is not
// considered final.
func AllFinal(games []Game) bool {
	if len(games) == 0 {
		return false
	}
	for _, g := range games {
		if !g.IsFinal() {
			return false
		}
	}
	return true
}

// WinnersByGame collects decided winners keyed by game id. Ties and
// unfinished games are absent from the map.
func WinnersByGame(games []Game) map[string]string {
	winners := make(map[string]string, len(games))
	for _, g := range games {
		if abbrev, ok := g.Winner(); ok {
			winners[g.ID] = abbrev
		}
	}
	return winners
}

// ActualTiebreaker is the highest combined goal total among finished games,
// nil when no game finished.
func ActualTiebreaker(games []Game) *int {
	var best *int
	for _, g := range games {
		total, ok := g.CombinedGoals()
		if !ok {
			continue
		}
		if best == nil || total > *best {
			v := total
			best = &v
		}
	}
	return best
}
