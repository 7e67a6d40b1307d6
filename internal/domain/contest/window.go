package contest

import "time"

// Window is one half-open daily contest window [Start, End). The ID is the
// civil date of the start instant in the contest timezone.
type Window struct {
	ID    string
	Start time.Time
	End   time.Time
}

// ResolveWindow finds the window containing now: the start is the most recent
// boundaryHour o'clock in loc at or before now, the end is the next one.
// Boundaries are built with calendar arithmetic in loc, so windows stay
// anchored to civil time across DST transitions.
func ResolveWindow(now time.Time, loc *time.Location, boundaryHour int) Window {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), boundaryHour, 0, 0, 0, loc)
	if local.Before(start) {
		start = time.Date(local.Year(), local.Month(), local.Day()-1, boundaryHour, 0, 0, 0, loc)
	}
	end := time.Date(start.Year(), start.Month(), start.Day()+1, boundaryHour, 0, 0, 0, loc)

	return Window{
		ID:    start.Format("2006-01-02"),
		Start: start,
		End:   end,
	}
}

// Contains reports whether t falls inside the half-open window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
