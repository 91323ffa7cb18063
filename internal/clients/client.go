package clients

import (
	"encoding/hex"
	"time"

	"github.com/trainingtrack/backend/pkg"
)

// Client statuses. Archived clients keep their data but their share link
// stops working.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

type Client struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Objective  string    `json:"objective,omitempty"`
	Status     string    `json:"status"`
	ClientCode string    `json:"client_code"`
	TrainerID  string    `json:"trainer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Summary is the per-client row of the trainer dashboard: the client
// itself plus the progress-derived week state.
type Summary struct {
	Client
	LastDayCompleted  *string    `json:"last_day_completed,omitempty"`
	LastActivityUTC   *string    `json:"last_activity_utc,omitempty"`
	LastResetUTC      *string    `json:"last_reset_utc,omitempty"`
	WeekStarted       bool       `json:"week_started"`
	DaysSinceActivity *int       `json:"days_since_activity,omitempty"`
	LastCompletedAt   *time.Time `json:"last_completed_at,omitempty"`
}

// NewClientCode generates the share code embedded in the client link,
// a short URL-safe hex string.
func NewClientCode() (string, error) {
	b, err := pkg.GenerateRandomBytes(5)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
