package routines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trainingtrack/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routines_test

var ErrTooManyExercises = errors.New("too many exercises in a day")

type routinesRepo interface {
	GetPlan(ctx context.Context, clientID string) (Plan, error)
	UpsertPlan(ctx context.Context, clientID string, plan Plan) error
	GetProgress(ctx context.Context, clientID string) (*StoredProgress, error)
	GetProgressBatch(ctx context.Context, clientIDs []string) (map[string]StoredProgress, error)
	UpsertProgress(ctx context.Context, clientID string, progress Progress, lastCompletedAt *time.Time) error
	DeleteForClient(ctx context.Context, clientID string) error
}

// RoutineState is what a client or trainer sees when opening a routine:
// the normalized plan and progress together with the derived summary.
type RoutineState struct {
	Plan            Plan       `json:"plan"`
	Progress        Progress   `json:"progress"`
	Summary         Summary    `json:"summary"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// SaveProgressResult reports the outcome of a progress submission.
type SaveProgressResult struct {
	Progress        Progress
	LastCompletedAt *time.Time
	NewlySuspicious bool
}

type Service struct {
	repo               routinesRepo
	maxExercisesPerDay int

	// NowFunc is swapped in tests to pin derived timestamps.
	NowFunc func() time.Time
}

func NewService(repo routinesRepo, maxExercisesPerDay int) *Service {
	return &Service{
		repo:               repo,
		maxExercisesPerDay: maxExercisesPerDay,
		NowFunc:            pkg.NowUTC,
	}
}

// GetForClient loads the routine state of a client, repairing stored
// documents on the way out. Missing rows are created with defaults and
// written back, so a freshly created client always has a loadable routine.
func (s *Service) GetForClient(ctx context.Context, clientID string) (*RoutineState, error) {
	plan, err := s.repo.GetPlan(ctx, clientID)
	switch {
	case errors.Is(err, ErrPlanNotFound):
		plan = EmptyPlan()
		if err := s.repo.UpsertPlan(ctx, clientID, plan); err != nil {
			return nil, fmt.Errorf("write back default plan: %w", err)
		}
	case err != nil:
		return nil, err
	default:
		plan = NormalizePlan(plan)
	}

	var progress Progress
	var lastCompletedAt *time.Time
	stored, err := s.repo.GetProgress(ctx, clientID)
	switch {
	case errors.Is(err, ErrProgressNotFound):
		progress = NormalizeProgress(nil, nil)
		if err := s.repo.UpsertProgress(ctx, clientID, progress, nil); err != nil {
			return nil, fmt.Errorf("write back default progress: %w", err)
		}
	case err != nil:
		return nil, err
	default:
		progress = NormalizeProgress(&stored.Progress, nil)
		lastCompletedAt = stored.LastCompletedAt
	}

	return &RoutineState{
		Plan:            plan,
		Progress:        progress,
		Summary:         DeriveProgressSummary(plan, progress),
		LastCompletedAt: lastCompletedAt,
	}, nil
}

// CreateDefaults seeds the routine and progress rows of a freshly created
// client. The progress metadata gets the creation time as both the reset
// and activity timestamp so week tracking starts immediately.
func (s *Service) CreateDefaults(ctx context.Context, clientID string) error {
	if err := s.repo.UpsertPlan(ctx, clientID, EmptyPlan()); err != nil {
		return fmt.Errorf("seed plan: %w", err)
	}

	now := s.NowFunc().Format(time.RFC3339)
	progress := NormalizeProgress(nil, &Meta{
		LastResetUTC:    &now,
		LastActivityUTC: &now,
	})
	if err := s.repo.UpsertProgress(ctx, clientID, progress, nil); err != nil {
		return fmt.Errorf("seed progress: %w", err)
	}
	return nil
}

// SaveRoutine normalizes and stores a trainer-submitted plan, then wipes
// the client progress. A plan change always restarts the week.
func (s *Service) SaveRoutine(ctx context.Context, clientID string, in Plan) (Plan, error) {
	normalized := NormalizePlan(in)
	for _, day := range WeekDays {
		if len(normalized[day.Key].Exercises) > s.maxExercisesPerDay {
			return nil, fmt.Errorf("%w: %s has %d, max %d",
				ErrTooManyExercises, day.Key, len(normalized[day.Key].Exercises), s.maxExercisesPerDay)
		}
	}

	if err := s.repo.UpsertPlan(ctx, clientID, normalized); err != nil {
		return nil, err
	}
	if _, err := s.ResetProgress(ctx, clientID); err != nil {
		return nil, fmt.Errorf("reset progress after plan change: %w", err)
	}
	return normalized, nil
}

// CopyRoutine replaces the target client plan with the source client plan.
// The target progress is wiped like on any other plan change.
func (s *Service) CopyRoutine(ctx context.Context, sourceClientID, targetClientID string) (Plan, error) {
	plan, err := s.repo.GetPlan(ctx, sourceClientID)
	if err != nil {
		return nil, err
	}
	return s.SaveRoutine(ctx, targetClientID, plan)
}

// SaveProgress stores a client-submitted progress document. The document
// is run through the suspicious-activity check, normalized with the
// activity timestamp bumped, and the last_completed_at column is set
// exactly when at least one day carries the explicit completed flag.
// Derived completion (all target sets done) is a view-time concern and
// does not stamp the column.
func (s *Service) SaveProgress(
	ctx context.Context,
	clientID string,
	submitted Progress,
	session SessionWindow,
) (*SaveProgressResult, error) {
	now := s.NowFunc()
	nowStr := now.Format(time.RFC3339)

	suspicion, newlySuspicious := DetectSuspicious(submitted, session, now)
	normalized := NormalizeProgress(&submitted, &Meta{
		LastActivityUTC:  &nowStr,
		SuspiciousDay:    suspicion.Day,
		SuspiciousAt:     suspicion.At,
		SuspiciousReason: suspicion.Reason,
	})

	var lastCompletedAt *time.Time
	for _, day := range WeekDays {
		if normalized.Days[day.Key].Completed {
			lastCompletedAt = &now
			break
		}
	}

	if err := s.repo.UpsertProgress(ctx, clientID, normalized, lastCompletedAt); err != nil {
		return nil, err
	}

	return &SaveProgressResult{
		Progress:        normalized,
		LastCompletedAt: lastCompletedAt,
		NewlySuspicious: newlySuspicious,
	}, nil
}

// ResetProgress wipes the client progress document back to defaults,
// stamping both the reset and activity timestamps and clearing the
// suspicious flag and the completion column.
func (s *Service) ResetProgress(ctx context.Context, clientID string) (Progress, error) {
	now := s.NowFunc().Format(time.RFC3339)
	cleared := NormalizeProgress(nil, &Meta{
		LastResetUTC:    &now,
		LastActivityUTC: &now,
	})
	if err := s.repo.UpsertProgress(ctx, clientID, cleared, nil); err != nil {
		return Progress{}, err
	}
	return cleared, nil
}

// ProgressBatch exposes the stored progress rows for summary derivation
// over a set of clients.
func (s *Service) ProgressBatch(ctx context.Context, clientIDs []string) (map[string]StoredProgress, error) {
	return s.repo.GetProgressBatch(ctx, clientIDs)
}

// DeleteForClient drops the routine and progress rows of a client.
func (s *Service) DeleteForClient(ctx context.Context, clientID string) error {
	return s.repo.DeleteForClient(ctx, clientID)
}
