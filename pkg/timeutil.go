package pkg

import (
	"math"
	"time"
)

// NowUTC returns the current instant in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// WeekStartUTC returns Monday 00:00:00 UTC of the week containing t.
func WeekStartUTC(t time.Time) time.Time {
	t = t.UTC()
	// days passed since monday; time.Weekday starts the week on sunday
	diffToMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return monday.AddDate(0, 0, -diffToMonday)
}

// DaysBetweenUTC returns the number of whole days between from and to,
// or nil when either side is missing.
func DaysBetweenUTC(from, to *time.Time) *int {
	if from == nil || to == nil {
		return nil
	}
	days := int(math.Floor(to.Sub(*from).Hours() / 24))
	return &days
}
