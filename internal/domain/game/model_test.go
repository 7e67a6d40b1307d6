package game

import (
	"testing"
	"time"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
)

func intPtr(v int) *int { return &v }

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "FUT", want: StatusUpcoming},
		{raw: "PRE", want: StatusUpcoming},
		{raw: "LIVE", want: StatusLive},
		{raw: "CRIT", want: StatusLive},
		{raw: "FINAL", want: StatusFinal},
		{raw: "OFF", want: StatusFinal},
		{raw: "off", want: StatusFinal},
		{raw: " live ", want: StatusLive},
		{raw: "", want: StatusUpcoming},
		{raw: "SOMETHING_NEW", want: StatusUpcoming},
	}
	for _, tc := range cases {
		if got := NormalizeStatus(tc.raw); got != tc.want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestWinner(t *testing.T) {
	home := Team{Abbrev: "BOS"}
	away := Team{Abbrev: "NYR"}

	cases := []struct {
		name     string
		g        Game
		want     string
		wantOK   bool
	}{
		{
			name:   "home wins",
			g:      Game{Status: StatusFinal, HomeTeam: home, AwayTeam: away, HomeScore: intPtr(4), AwayScore: intPtr(2)},
			want:   "BOS",
			wantOK: true,
		},
		{
			name:   "away wins",
			g:      Game{Status: StatusFinal, HomeTeam: home, AwayTeam: away, HomeScore: intPtr(1), AwayScore: intPtr(3)},
			want:   "NYR",
			wantOK: true,
		},
		{
			name: "tie has no winner",
			g:    Game{Status: StatusFinal, HomeTeam: home, AwayTeam: away, HomeScore: intPtr(2), AwayScore: intPtr(2)},
		},
		{
			name: "live game has no winner",
			g:    Game{Status: StatusLive, HomeTeam: home, AwayTeam: away, HomeScore: intPtr(4), AwayScore: intPtr(0)},
		},
		{
			name: "missing score has no winner",
			g:    Game{Status: StatusFinal, HomeTeam: home, AwayTeam: away, HomeScore: intPtr(4)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.g.Winner()
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("Winner() = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestFilterByWindow_HalfOpenAndSorted(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	w := contest.ResolveWindow(time.Date(2026, time.February, 11, 12, 0, 0, 0, loc), loc, 7)

	games := []Game{
		{ID: "late", StartTimeUTC: w.End.Add(-time.Minute)},
		{ID: "at-end", StartTimeUTC: w.End},
		{ID: "early", StartTimeUTC: w.Start},
		{ID: "before", StartTimeUTC: w.Start.Add(-time.Minute)},
		{ID: "mid", StartTimeUTC: w.Start.Add(6 * time.Hour)},
	}

	got := FilterByWindow(games, w)
	if len(got) != 3 {
		t.Fatalf("kept %d games, want 3", len(got))
	}
	for i, wantID := range []string{"early", "mid", "late"} {
		if got[i].ID != wantID {
			t.Fatalf("kept[%d] = %q, want %q", i, got[i].ID, wantID)
		}
	}
}

func TestEarliestStart(t *testing.T) {
	if _, ok := EarliestStart(nil); ok {
		t.Fatal("empty slice must report no start")
	}

	base := time.Date(2026, time.February, 11, 23, 0, 0, 0, time.UTC)
	games := []Game{
		{ID: "b", StartTimeUTC: base.Add(2 * time.Hour)},
		{ID: "a", StartTimeUTC: base},
		{ID: "c", StartTimeUTC: base.Add(time.Hour)},
	}
	got, ok := EarliestStart(games)
	if !ok || !got.Equal(base) {
		t.Fatalf("EarliestStart = (%v, %v), want (%v, true)", got, ok, base)
	}
}

func TestAllFinal(t *testing.T) {
	if AllFinal(nil) {
		t.Fatal("empty slice must not count as final")
	}
	games := []Game{
		{ID: "a", Status: StatusFinal},
		{ID: "b", Status: StatusLive},
	}
	if AllFinal(games) {
		t.Fatal("live game must block AllFinal")
	}
	games[1].Status = StatusFinal
	if !AllFinal(games) {
		t.Fatal("all-final slice must report true")
	}
}

func TestActualTiebreaker(t *testing.T) {
	if got := ActualTiebreaker(nil); got != nil {
		t.Fatalf("no games: tiebreaker = %v, want nil", *got)
	}

	games := []Game{
		{ID: "a", Status: StatusFinal, HomeScore: intPtr(3), AwayScore: intPtr(2)},
		{ID: "b", Status: StatusFinal, HomeScore: intPtr(4), AwayScore: intPtr(2)},
		{ID: "c", Status: StatusLive, HomeScore: intPtr(9), AwayScore: intPtr(9)},
	}
	got := ActualTiebreaker(games)
	if got == nil || *got != 6 {
		t.Fatalf("tiebreaker = %v, want 6", got)
	}

	unfinished := []Game{{ID: "c", Status: StatusLive, HomeScore: intPtr(9), AwayScore: intPtr(9)}}
	if got := ActualTiebreaker(unfinished); got != nil {
		t.Fatalf("unfinished-only: tiebreaker = %v, want nil", *got)
	}
}
