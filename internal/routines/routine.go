package routines

import (
	"encoding/json"
	"fmt"
)

// metaKey is the reserved entry of a progress document holding the
// side-channel audit metadata, next to the seven weekday entries.
const metaKey = "_meta"

type WeekDay struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// WeekDays holds the seven canonical weekdays in week order. Keys are
// stable across locales, labels are the display names shown to clients.
var WeekDays = []WeekDay{
	{Key: "monday", Label: "Lunes"},
	{Key: "tuesday", Label: "Martes"},
	{Key: "wednesday", Label: "Miércoles"},
	{Key: "thursday", Label: "Jueves"},
	{Key: "friday", Label: "Viernes"},
	{Key: "saturday", Label: "Sábado"},
	{Key: "sunday", Label: "Domingo"},
}

// Exercise is a single planned exercise within a day.
// Order and TotalSets are pointers so that an absent value can be told
// apart from an explicit zero when normalizing trainer input.
type Exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Scheme    string `json:"scheme"`
	Order     *int   `json:"order,omitempty"`
	Note      string `json:"note,omitempty"`
	TotalSets *int   `json:"totalSets,omitempty"`
}

type Day struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Exercises []Exercise `json:"exercises"`
}

// Plan maps weekday keys to their planned day. A normalized plan always
// holds exactly the seven canonical keys.
type Plan map[string]Day

// ProgressDay is the client-reported state for one weekday: the explicit
// completed flag and the per-exercise completed set counts.
type ProgressDay struct {
	Completed   bool           `json:"completed"`
	Exercises   map[string]int `json:"exercises"`
	LastUpdated *string        `json:"lastUpdated,omitempty"`
}

// Meta is the audit metadata entry of a progress document. All fields are
// nullable; a normalized document always carries all of them, possibly null.
// Timestamps are RFC3339 UTC strings, as stored in the progress JSONB.
type Meta struct {
	LastResetUTC     *string `json:"last_reset_utc"`
	LastActivityUTC  *string `json:"last_activity_utc"`
	SuspiciousDay    *string `json:"suspicious_day"`
	SuspiciousAt     *string `json:"suspicious_at"`
	SuspiciousReason *string `json:"suspicious_reason"`
}

// Progress is a whole progress document: one entry per weekday plus the
// reserved metadata entry. On the wire it is a single JSON object with the
// weekday keys and "_meta", matching the stored JSONB format.
type Progress struct {
	Days map[string]ProgressDay
	Meta Meta
}

func (p Progress) MarshalJSON() ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(p.Days)+1)
	for key, day := range p.Days {
		dayJson, err := json.Marshal(day)
		if err != nil {
			return nil, fmt.Errorf("marshal day %s: %w", key, err)
		}
		doc[key] = dayJson
	}

	metaJson, err := json.Marshal(p.Meta)
	if err != nil {
		return nil, fmt.Errorf("marshal meta: %w", err)
	}
	doc[metaKey] = metaJson

	return json.Marshal(doc)
}

func (p *Progress) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	p.Days = make(map[string]ProgressDay, len(doc))
	p.Meta = Meta{}

	for key, raw := range doc {
		if key == metaKey {
			if err := json.Unmarshal(raw, &p.Meta); err != nil {
				return fmt.Errorf("unmarshal meta: %w", err)
			}
			continue
		}
		var day ProgressDay
		if err := json.Unmarshal(raw, &day); err != nil {
			return fmt.Errorf("unmarshal day %s: %w", key, err)
		}
		p.Days[key] = day
	}

	return nil
}
