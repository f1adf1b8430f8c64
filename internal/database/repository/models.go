package repository

import "time"

// Session represents one completed focus interval.
type Session struct {
	ID              string
	Mode            string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int
	CreatedAt       time.Time
}

// Totals aggregates completed sessions over a window.
type Totals struct {
	Sessions     int
	FocusSeconds int
}

// FocusMinutes is FocusSeconds rounded down to whole minutes.
func (t Totals) FocusMinutes() int { return t.FocusSeconds / 60 }
