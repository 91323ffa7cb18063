package trainers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trainingtrack/backend/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var trainer Trainer
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, status FROM trainer WHERE lower(email) = lower($1);`,
		email,
	).Scan(&trainer.ID, &trainer.Email, &trainer.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query trainer: %w", err)
	}
	return &trainer, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.getbyid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainer.id", id))

	var trainer Trainer
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, status FROM trainer WHERE id = $1;`,
		id,
	).Scan(&trainer.ID, &trainer.Email, &trainer.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query trainer: %w", err)
	}
	return &trainer, nil
}

// EnsureExists loads the trainer row for the email, creating an active
// one on first login.
func (r *Repo) EnsureExists(ctx context.Context, email string) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.ensureexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email = strings.ToLower(email)
	trainer, err := r.GetByEmail(ctx, email)
	if err == nil {
		return trainer, nil
	}
	if !errors.Is(err, ErrTrainerNotFound) {
		return nil, err
	}

	trainer = &Trainer{
		ID:     uuid.NewString(),
		Email:  email,
		Status: StatusActive,
	}
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO trainer (id, email, status) VALUES ($1, $2, $3);`,
		trainer.ID, trainer.Email, trainer.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert trainer: %w", err)
	}
	return trainer, nil
}

// AllowListActive reports whether the email has an active allow-list
// entry. A missing entry is simply inactive, not an error.
func (r *Repo) AllowListActive(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.allowlistactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var active bool
	err = r.db.QueryRow(
		ctx,
		`SELECT active FROM trainer_access WHERE lower(email) = lower($1);`,
		email,
	).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query trainer access: %w", err)
	}
	return active, nil
}

// TrainerEmailStatus is the gateway view of a trainer row.
func (r *Repo) TrainerEmailStatus(ctx context.Context, trainerID string) (email string, status string, err error) {
	trainer, err := r.GetByID(ctx, trainerID)
	if err != nil {
		return "", "", err
	}
	return trainer.Email, trainer.Status, nil
}
