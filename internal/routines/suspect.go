package routines

import (
	"fmt"
	"math"
	"time"
)

// suspiciousSessionThreshold: a day marked completed within a shorter
// reported session window than this gets flagged.
const suspiciousSessionThreshold = 60 * time.Second

// SessionWindow is the optional client-reported session timing attached
// to a progress submission, used only by the suspicious-activity check.
type SessionWindow struct {
	Day   string `json:"session_day"`
	Start string `json:"session_start"`
	End   string `json:"session_end"`
}

// Suspicion holds the suspicious-activity metadata fields resulting from
// a progress submission.
type Suspicion struct {
	Day    *string
	At     *string
	Reason *string
}

// DetectSuspicious inspects a client progress submission for implausibly
// fast completions. The prior suspicious fields of the submitted document
// carry through unchanged unless a new suspicious event is detected:
// the session day is flagged as completed in this submission, both window
// timestamps parse, the window is positive and shorter than the threshold.
// The returned bool reports whether a new flag was raised. The flag is
// advisory only and sticky until the next reset or the next suspicious
// event.
func DetectSuspicious(parsed Progress, session SessionWindow, now time.Time) (Suspicion, bool) {
	suspicion := Suspicion{
		Day:    clonedStr(parsed.Meta.SuspiciousDay),
		At:     clonedStr(parsed.Meta.SuspiciousAt),
		Reason: clonedStr(parsed.Meta.SuspiciousReason),
	}

	if session.Day == "" || session.Start == "" || session.End == "" {
		return suspicion, false
	}
	if !parsed.Days[session.Day].Completed {
		return suspicion, false
	}

	start, err := parseTimestamp(session.Start)
	if err != nil {
		return suspicion, false
	}
	end, err := parseTimestamp(session.End)
	if err != nil {
		return suspicion, false
	}
	if !end.After(start) {
		return suspicion, false
	}

	duration := end.Sub(start)
	if duration >= suspiciousSessionThreshold {
		return suspicion, false
	}

	day := session.Day
	at := now.UTC().Format(time.RFC3339)
	reason := fmt.Sprintf("completed_under_60s:%ds", int(math.Round(duration.Seconds())))

	suspicion.Day = &day
	suspicion.At = &at
	suspicion.Reason = &reason
	return suspicion, true
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	// timestamps sent by the web client may omit the zone
	return time.Parse("2006-01-02T15:04:05", value)
}
