package routines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/trainingtrack/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPlanNotFound     = errors.New("routine plan not found")
	ErrProgressNotFound = errors.New("progress not found")
)

// StoredProgress is a progress document together with its row-level
// last_completed_at column.
type StoredProgress struct {
	Progress        Progress
	LastCompletedAt *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetPlan(ctx context.Context, clientID string) (_ Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.getplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	var planJson []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT plan FROM routine WHERE client_id = $1;`,
		clientID,
	).Scan(&planJson)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}

	var plan Plan
	if err := json.Unmarshal(planJson, &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan for client %s: %w", clientID, err)
	}
	return plan, nil
}

// UpsertPlan replaces the whole stored plan document for the client.
func (r *Repo) UpsertPlan(ctx context.Context, clientID string, plan Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.upsertplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	planJson, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO routine (client_id, plan) VALUES ($1, $2)
			ON CONFLICT (client_id) DO UPDATE SET plan = EXCLUDED.plan;`,
		clientID, planJson,
	)
	if err != nil {
		return fmt.Errorf("upsert plan: %w", err)
	}
	return nil
}

func (r *Repo) GetProgress(ctx context.Context, clientID string) (_ *StoredProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.getprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	var progressJson []byte
	var lastCompletedAt *time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT progress, last_completed_at FROM progress WHERE client_id = $1;`,
		clientID,
	).Scan(&progressJson, &lastCompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	var progress Progress
	if err := json.Unmarshal(progressJson, &progress); err != nil {
		return nil, fmt.Errorf("unmarshal progress for client %s: %w", clientID, err)
	}

	return &StoredProgress{
		Progress:        progress,
		LastCompletedAt: lastCompletedAt,
	}, nil
}

// GetProgressBatch loads the stored progress rows for the given clients,
// keyed by client id. Clients without a stored row are simply absent.
func (r *Repo) GetProgressBatch(ctx context.Context, clientIDs []string) (_ map[string]StoredProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.getprogressbatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("clients.count", len(clientIDs)))

	if len(clientIDs) == 0 {
		return map[string]StoredProgress{}, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT client_id, progress, last_completed_at FROM progress WHERE client_id = ANY($1);`,
		clientIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query progress batch: %w", err)
	}
	defer rows.Close()

	result := make(map[string]StoredProgress, len(clientIDs))
	for rows.Next() {
		var clientID string
		var progressJson []byte
		var lastCompletedAt *time.Time
		if err := rows.Scan(&clientID, &progressJson, &lastCompletedAt); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}

		var progress Progress
		if err := json.Unmarshal(progressJson, &progress); err != nil {
			return nil, fmt.Errorf("unmarshal progress for client %s: %w", clientID, err)
		}

		result[clientID] = StoredProgress{
			Progress:        progress,
			LastCompletedAt: lastCompletedAt,
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress rows: %w", err)
	}

	return result, nil
}

// UpsertProgress replaces the whole stored progress document for the client.
func (r *Repo) UpsertProgress(
	ctx context.Context,
	clientID string,
	progress Progress,
	lastCompletedAt *time.Time,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.upsertprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	progressJson, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO progress (client_id, progress, last_completed_at) VALUES ($1, $2, $3)
			ON CONFLICT (client_id) DO UPDATE
			SET progress = EXCLUDED.progress, last_completed_at = EXCLUDED.last_completed_at;`,
		clientID, progressJson, lastCompletedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// DeleteForClient removes the routine and progress rows of a client.
// Used when the client record itself is deleted.
func (r *Repo) DeleteForClient(ctx context.Context, clientID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.deleteforclient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	if _, err := r.db.Exec(ctx, `DELETE FROM progress WHERE client_id = $1;`, clientID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM routine WHERE client_id = $1;`, clientID); err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	return nil
}
