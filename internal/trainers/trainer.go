package trainers

// Trainer statuses. Archived trainers keep their data but their shared
// client links stop working.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

type Trainer struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status"`
}
