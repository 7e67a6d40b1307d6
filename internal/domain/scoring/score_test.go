package scoring

import (
	"reflect"
	"testing"

	"github.com/pickemlab/daily-pickem/internal/domain/submission"
)

func intPtr(v int) *int { return &v }

func sub(entrantID string, picks map[string]string, tiebreaker *int) submission.Submission {
	return submission.Submission{ContestID: "2026-02-11", EntrantID: entrantID, Picks: picks, Tiebreaker: tiebreaker}
}

func TestScore_EqualTieDiffMeansSharedWin(t *testing.T) {
	winners := map[string]string{"g1": "BOS", "g2": "NYR", "g3": "TOR"}
	threeRight := map[string]string{"g1": "BOS", "g2": "NYR", "g3": "TOR"}

	got := Score([]submission.Submission{
		sub("a", threeRight, intPtr(7)),
		sub("b", threeRight, intPtr(5)),
	}, winners, intPtr(6))

	if !reflect.DeepEqual(got.WinnerEntrantIDs, []string{"a", "b"}) {
		t.Fatalf("winners = %v, want [a b]", got.WinnerEntrantIDs)
	}
	for _, s := range got.Scored {
		if s.CorrectCount != 3 {
			t.Fatalf("entrant %s correct = %d, want 3", s.Submission.EntrantID, s.CorrectCount)
		}
		if s.TieDiff == nil || *s.TieDiff != 1 {
			t.Fatalf("entrant %s tieDiff = %v, want 1", s.Submission.EntrantID, s.TieDiff)
		}
		if !s.IsWinner {
			t.Fatalf("entrant %s should be marked winner", s.Submission.EntrantID)
		}
	}
}

func TestScore_CloserTiebreakerWinsAlone(t *testing.T) {
	winners := map[string]string{"g1": "BOS", "g2": "NYR", "g3": "TOR"}
	threeRight := map[string]string{"g1": "BOS", "g2": "NYR", "g3": "TOR"}

	got := Score([]submission.Submission{
		sub("a", threeRight, intPtr(7)),
		sub("b", threeRight, intPtr(9)),
	}, winners, intPtr(6))

	if !reflect.DeepEqual(got.WinnerEntrantIDs, []string{"a"}) {
		t.Fatalf("winners = %v, want [a]", got.WinnerEntrantIDs)
	}
	if got.Scored[0].Submission.EntrantID != "a" {
		t.Fatalf("ranked first = %s, want a", got.Scored[0].Submission.EntrantID)
	}
}

func TestScore_AllWrongFallsBackToTiebreaker(t *testing.T) {
	winners := map[string]string{"g1": "BOS"}
	wrong := map[string]string{"g1": "NYR"}

	got := Score([]submission.Submission{
		sub("far", wrong, intPtr(10)),
		sub("near", wrong, intPtr(4)),
	}, winners, intPtr(5))

	if !reflect.DeepEqual(got.WinnerEntrantIDs, []string{"near"}) {
		t.Fatalf("winners = %v, want [near]", got.WinnerEntrantIDs)
	}
	if got.Scored[0].Submission.EntrantID != "near" || got.Scored[0].CorrectCount != 0 {
		t.Fatalf("ranked first = %+v, want near with 0 correct", got.Scored[0])
	}
	if got.Scored[1].TieDiff == nil || *got.Scored[1].TieDiff != 5 {
		t.Fatalf("far tieDiff = %v, want 5", got.Scored[1].TieDiff)
	}
}

func TestScore_HigherCorrectCountBeatsTiebreaker(t *testing.T) {
	winners := map[string]string{"g1": "BOS", "g2": "NYR"}

	got := Score([]submission.Submission{
		sub("two", map[string]string{"g1": "BOS", "g2": "NYR"}, intPtr(50)),
		sub("one", map[string]string{"g1": "BOS", "g2": "TOR"}, intPtr(6)),
	}, winners, intPtr(6))

	if !reflect.DeepEqual(got.WinnerEntrantIDs, []string{"two"}) {
		t.Fatalf("winners = %v, want [two]", got.WinnerEntrantIDs)
	}
}

func TestScore_NilActualTiebreakerTiesAllLeaders(t *testing.T) {
	got := Score([]submission.Submission{
		sub("a", map[string]string{"g1": "BOS"}, intPtr(3)),
		sub("b", map[string]string{"g1": "BOS"}, intPtr(8)),
	}, map[string]string{}, nil)

	if !reflect.DeepEqual(got.WinnerEntrantIDs, []string{"a", "b"}) {
		t.Fatalf("winners = %v, want [a b]", got.WinnerEntrantIDs)
	}
	for _, s := range got.Scored {
		if s.TieDiff != nil {
			t.Fatalf("entrant %s tieDiff = %d, want nil", s.Submission.EntrantID, *s.TieDiff)
		}
	}
}

func TestScore_MissingGuessRanksAfterAnyDiff(t *testing.T) {
	winners := map[string]string{"g1": "BOS"}
	right := map[string]string{"g1": "BOS"}

	got := Score([]submission.Submission{
		sub("noguess", right, nil),
		sub("farguess", right, intPtr(40)),
	}, winners, intPtr(5))

	if !reflect.DeepEqual(got.WinnerEntrantIDs, []string{"farguess"}) {
		t.Fatalf("winners = %v, want [farguess]", got.WinnerEntrantIDs)
	}
	if got.Scored[0].Submission.EntrantID != "farguess" {
		t.Fatalf("ranked first = %s, want farguess", got.Scored[0].Submission.EntrantID)
	}
}

func TestScore_UnfinishedGamesNeverCount(t *testing.T) {
	// Only g1 decided; picks on g2 contribute nothing either way.
	winners := map[string]string{"g1": "BOS"}

	got := Score([]submission.Submission{
		sub("a", map[string]string{"g1": "BOS", "g2": "TOR"}, intPtr(5)),
		sub("b", map[string]string{"g1": "NYR", "g2": "TOR"}, intPtr(5)),
	}, winners, intPtr(5))

	if got.Scored[0].Submission.EntrantID != "a" || got.Scored[0].CorrectCount != 1 {
		t.Fatalf("ranked first = %+v, want a with 1 correct", got.Scored[0])
	}
	if got.Scored[1].CorrectCount != 0 {
		t.Fatalf("b correct = %d, want 0", got.Scored[1].CorrectCount)
	}
}

func TestScore_NoSubmissionsNoWinners(t *testing.T) {
	got := Score(nil, map[string]string{"g1": "BOS"}, intPtr(5))
	if len(got.Scored) != 0 || len(got.WinnerEntrantIDs) != 0 {
		t.Fatalf("empty input produced %+v", got)
	}
}
