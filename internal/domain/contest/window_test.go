package contest

import (
	"testing"
	"time"
)

func mustLoadNewYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestResolveWindow_SameWindowForAllInstantsInside(t *testing.T) {
	loc := mustLoadNewYork(t)
	start := time.Date(2026, time.February, 11, 7, 0, 0, 0, loc)

	instants := []time.Time{
		start,
		start.Add(time.Nanosecond),
		start.Add(12 * time.Hour),
		start.Add(24*time.Hour - time.Second),
	}
	for _, now := range instants {
		got := ResolveWindow(now, loc, 7)
		if got.ID != "2026-02-11" {
			t.Fatalf("ResolveWindow(%v) id = %q, want 2026-02-11", now, got.ID)
		}
		if !got.Start.Equal(start) {
			t.Fatalf("ResolveWindow(%v) start = %v, want %v", now, got.Start, start)
		}
	}
}

func TestResolveWindow_BeforeBoundaryBelongsToPreviousDay(t *testing.T) {
	loc := mustLoadNewYork(t)

	now := time.Date(2026, time.February, 12, 6, 59, 59, 0, loc)
	got := ResolveWindow(now, loc, 7)
	if got.ID != "2026-02-11" {
		t.Fatalf("id = %q, want 2026-02-11", got.ID)
	}

	atBoundary := time.Date(2026, time.February, 12, 7, 0, 0, 0, loc)
	got = ResolveWindow(atBoundary, loc, 7)
	if got.ID != "2026-02-12" {
		t.Fatalf("id at boundary = %q, want 2026-02-12", got.ID)
	}
}

func TestResolveWindow_IDUsesCivilDateNotUTCDate(t *testing.T) {
	loc := mustLoadNewYork(t)

	// 02:00 UTC on Feb 12 is still the evening of Feb 11 in New York.
	now := time.Date(2026, time.February, 12, 2, 0, 0, 0, time.UTC)
	got := ResolveWindow(now, loc, 7)
	if got.ID != "2026-02-11" {
		t.Fatalf("id = %q, want 2026-02-11", got.ID)
	}
}

func TestResolveWindow_DSTBoundariesStayAtCivilSeven(t *testing.T) {
	loc := mustLoadNewYork(t)

	cases := []struct {
		name     string
		now      time.Time
		wantID   string
		wantSpan time.Duration
	}{
		{
			name:     "spring forward day is 23 hours",
			now:      time.Date(2024, time.March, 9, 12, 0, 0, 0, loc),
			wantID:   "2024-03-09",
			wantSpan: 23 * time.Hour,
		},
		{
			name:     "fall back day is 25 hours",
			now:      time.Date(2024, time.November, 2, 12, 0, 0, 0, loc),
			wantID:   "2024-11-02",
			wantSpan: 25 * time.Hour,
		},
		{
			name:     "ordinary day is 24 hours",
			now:      time.Date(2024, time.June, 10, 12, 0, 0, 0, loc),
			wantID:   "2024-06-10",
			wantSpan: 24 * time.Hour,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveWindow(tc.now, loc, 7)
			if got.ID != tc.wantID {
				t.Fatalf("id = %q, want %q", got.ID, tc.wantID)
			}
			if h, m := got.Start.In(loc).Hour(), got.Start.In(loc).Minute(); h != 7 || m != 0 {
				t.Fatalf("start civil time = %02d:%02d, want 07:00", h, m)
			}
			if h, m := got.End.In(loc).Hour(), got.End.In(loc).Minute(); h != 7 || m != 0 {
				t.Fatalf("end civil time = %02d:%02d, want 07:00", h, m)
			}
			if span := got.End.Sub(got.Start); span != tc.wantSpan {
				t.Fatalf("span = %v, want %v", span, tc.wantSpan)
			}
		})
	}
}

func TestWindowContains_HalfOpen(t *testing.T) {
	loc := mustLoadNewYork(t)
	w := ResolveWindow(time.Date(2026, time.February, 11, 12, 0, 0, 0, loc), loc, 7)

	if !w.Contains(w.Start) {
		t.Fatal("start instant must be inside the window")
	}
	if w.Contains(w.End) {
		t.Fatal("end instant must be outside the window")
	}
	if w.Contains(w.Start.Add(-time.Nanosecond)) {
		t.Fatal("instant before start must be outside the window")
	}
	if !w.Contains(w.End.Add(-time.Nanosecond)) {
		t.Fatal("instant just before end must be inside the window")
	}
}

func TestContestAcceptsAt(t *testing.T) {
	lock := time.Date(2026, time.February, 11, 18, 30, 0, 0, time.UTC)
	finalized := lock.Add(8 * time.Hour)

	cases := []struct {
		name string
		c    Contest
		now  time.Time
		want bool
	}{
		{name: "before lock", c: Contest{LockTime: &lock}, now: lock.Add(-time.Minute), want: true},
		{name: "at lock", c: Contest{LockTime: &lock}, now: lock, want: false},
		{name: "after lock", c: Contest{LockTime: &lock}, now: lock.Add(time.Minute), want: false},
		{name: "no games no lock", c: Contest{}, now: lock.Add(-time.Hour), want: false},
		{name: "finalized", c: Contest{LockTime: &lock, FinalizedAt: &finalized}, now: lock.Add(-time.Hour), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.AcceptsAt(tc.now); got != tc.want {
				t.Fatalf("AcceptsAt = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContestStatusAt(t *testing.T) {
	lock := time.Date(2026, time.February, 11, 18, 30, 0, 0, time.UTC)
	finalized := lock.Add(8 * time.Hour)

	open := Contest{LockTime: &lock}
	if got := open.StatusAt(lock.Add(-time.Hour)); got != StatusOpen {
		t.Fatalf("status = %q, want OPEN", got)
	}
	if got := open.StatusAt(lock); got != StatusLocked {
		t.Fatalf("status = %q, want LOCKED", got)
	}

	done := Contest{LockTime: &lock, FinalizedAt: &finalized, FinalizeReason: FinalizeReasonAllFinal}
	if got := done.StatusAt(lock.Add(-time.Hour)); got != StatusFinalized {
		t.Fatalf("status = %q, want FINALIZED", got)
	}
}
