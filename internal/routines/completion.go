package routines

import (
	"regexp"
	"strconv"
)

// matches the first integer immediately followed by x/X,
// e.g. "4x10" -> 4, "10 X 8" -> 10
var totalSetsRegex = regexp.MustCompile(`(\d+)\s*[xX]`)

// ParseTotalSets extracts the target set count from a free-text scheme
// notation. Returns false when the scheme carries no such count
// (e.g. "AMRAP").
func ParseTotalSets(scheme string) (int, bool) {
	match := totalSetsRegex.FindStringSubmatch(scheme)
	if match == nil {
		return 0, false
	}
	sets, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return sets, true
}

// TargetSets is the goal number of completed sets for an exercise: the
// explicit TotalSets field when set, otherwise parsed from the scheme,
// otherwise 0 (no target).
func TargetSets(ex Exercise) int {
	if ex.TotalSets != nil {
		return *ex.TotalSets
	}
	if sets, ok := ParseTotalSets(ex.Scheme); ok {
		return sets
	}
	return 0
}

type DayCompletion struct {
	Completed bool           `json:"completed"`
	DoneSets  map[string]int `json:"doneSets"`
}

// ComputeDayCompletion derives the completion state of one weekday from
// the plan and the recorded progress. A day counts as completed when the
// client flagged it completed explicitly, or when it has at least one
// planned exercise and every exercise with a target has enough sets
// logged. The explicit flag is never revoked by missing sets, and a day
// without exercises is never auto-completed.
func ComputeDayCompletion(dayKey string, plan Plan, progress Progress) DayCompletion {
	dayPlan := plan[dayKey]
	dayProgress := progress.Days[dayKey]

	allSetsDone := true
	for _, ex := range dayPlan.Exercises {
		target := TargetSets(ex)
		if target > 0 && dayProgress.Exercises[ex.ID] < target {
			allSetsDone = false
		}
	}

	doneSets := dayProgress.Exercises
	if doneSets == nil {
		doneSets = map[string]int{}
	}

	return DayCompletion{
		Completed: dayProgress.Completed || (len(dayPlan.Exercises) > 0 && allSetsDone),
		DoneSets:  doneSets,
	}
}

type Summary struct {
	CompletedDays []string `json:"completedDays"`
	LastDay       *string  `json:"lastDay,omitempty"`
}

// DeriveProgressSummary walks the seven weekdays in canonical order and
// collects the labels of completed days. LastDay is the last completed
// label in week order, which is not necessarily the most recently
// completed by wall clock.
func DeriveProgressSummary(plan Plan, progress Progress) Summary {
	completedDays := make([]string, 0, len(WeekDays))
	for _, day := range WeekDays {
		status := ComputeDayCompletion(day.Key, plan, progress)
		if status.Completed {
			completedDays = append(completedDays, day.Label)
		}
	}

	summary := Summary{CompletedDays: completedDays}
	if len(completedDays) > 0 {
		last := completedDays[len(completedDays)-1]
		summary.LastDay = &last
	}
	return summary
}
