package domain

import "time"

// Weekend marks a single calendar date as a day off (weekend or holiday).
// At most one row exists per calendar date.
type Weekend struct {
	ID           int64
	CalendarDate time.Time
	IsDayOff     bool
}
