package routines

import "github.com/google/uuid"

// EmptyPlan returns a plan with all seven weekdays and no exercises.
// A fresh value is built on every call, the returned days share no state
// with any other plan.
func EmptyPlan() Plan {
	plan := make(Plan, len(WeekDays))
	for _, day := range WeekDays {
		plan[day.Key] = Day{
			Key:       day.Key,
			Label:     day.Label,
			Exercises: []Exercise{},
		}
	}
	return plan
}

// NormalizePlan repairs a possibly partial or malformed plan into the
// canonical shape: exactly the seven weekday keys, every exercise with a
// non-empty id and a defined order. A nil input yields the empty plan.
// Days keyed outside the canonical seven are dropped. Idempotent.
func NormalizePlan(in Plan) Plan {
	base := EmptyPlan()
	if in == nil {
		return base
	}

	for _, weekDay := range WeekDays {
		inDay, ok := in[weekDay.Key]
		if !ok {
			continue
		}

		normalized := make([]Exercise, 0, len(inDay.Exercises))
		for idx, ex := range inDay.Exercises {
			if ex.ID == "" {
				ex.ID = uuid.NewString()
			}
			if ex.Order == nil {
				order := idx
				ex.Order = &order
			} else {
				ex.Order = clonedInt(ex.Order)
			}
			ex.TotalSets = clonedInt(ex.TotalSets)
			normalized = append(normalized, ex)
		}

		base[weekDay.Key] = Day{
			Key:       weekDay.Key,
			Label:     weekDay.Label,
			Exercises: normalized,
		}
	}

	return base
}

// NormalizeProgress repairs a progress document into the canonical shape:
// all seven weekday entries with defaulted fields, plus a fully populated
// (possibly null-valued) metadata entry. Per metadata field the precedence
// is override value, then the input's stored value, then null. Called with
// a nil override it is a pure repair pass; called with a partial override
// it doubles as a state transition (e.g. a reset setting last_reset_utc
// and last_activity_utc together). Unknown weekday keys are ignored.
func NormalizeProgress(in *Progress, override *Meta) Progress {
	out := Progress{
		Days: make(map[string]ProgressDay, len(WeekDays)),
	}

	for _, weekDay := range WeekDays {
		day := ProgressDay{
			Completed: false,
			Exercises: map[string]int{},
		}
		if in != nil {
			if inDay, ok := in.Days[weekDay.Key]; ok {
				day.Completed = inDay.Completed
				if inDay.Exercises != nil {
					day.Exercises = make(map[string]int, len(inDay.Exercises))
					for exID, done := range inDay.Exercises {
						day.Exercises[exID] = done
					}
				}
				day.LastUpdated = clonedStr(inDay.LastUpdated)
			}
		}
		out.Days[weekDay.Key] = day
	}

	var stored Meta
	if in != nil {
		stored = in.Meta
	}
	if override == nil {
		override = &Meta{}
	}

	out.Meta = Meta{
		LastResetUTC:     firstNonNil(override.LastResetUTC, stored.LastResetUTC),
		LastActivityUTC:  firstNonNil(override.LastActivityUTC, stored.LastActivityUTC),
		SuspiciousDay:    firstNonNil(override.SuspiciousDay, stored.SuspiciousDay),
		SuspiciousAt:     firstNonNil(override.SuspiciousAt, stored.SuspiciousAt),
		SuspiciousReason: firstNonNil(override.SuspiciousReason, stored.SuspiciousReason),
	}

	return out
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return clonedStr(v)
		}
	}
	return nil
}

func clonedStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func clonedInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
