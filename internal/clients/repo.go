package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trainingtrack/backend/internal/routines"
	"github.com/trainingtrack/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneMinute       = 60
	codeCacheExpire = oneMinute * 5 // client link lookups are hot, rows barely change
)

var ErrClientNotFound = errors.New("client not found")

type Repo struct {
	db        *pgxpool.Pool
	codeCache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool) *Repo {
	megabyte := 1024 * 1024
	return &Repo{
		db:        db,
		codeCache: freecache.NewCache(1 * megabyte),
	}
}

func (r *Repo) Create(ctx context.Context, client Client) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", client.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO client (id, name, objective, status, client_code, trainer_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		client.ID, client.Name, client.Objective, client.Status,
		client.ClientCode, client.TrainerID, client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", id))

	var client Client
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, objective, status, client_code, trainer_id, created_at
			FROM client WHERE id = $1;`,
		id,
	).Scan(
		&client.ID, &client.Name, &client.Objective, &client.Status,
		&client.ClientCode, &client.TrainerID, &client.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query client: %w", err)
	}
	return &client, nil
}

// GetByCode resolves a share code to its client. Lookups go through a
// small in-process cache since every open of a client link hits this.
func (r *Repo) GetByCode(ctx context.Context, code string) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.getbycode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if clientBytes, err := r.codeCache.Get([]byte(code)); err == nil {
		var client Client
		if err := json.Unmarshal(clientBytes, &client); err == nil {
			log.Tracef("client code %s resolved from cache", code)
			return &client, nil
		}
		log.Errorf("failed to unmarshal cached client for code %s: %s", code, err)
	}

	var client Client
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, objective, status, client_code, trainer_id, created_at
			FROM client WHERE client_code = $1;`,
		code,
	).Scan(
		&client.ID, &client.Name, &client.Objective, &client.Status,
		&client.ClientCode, &client.TrainerID, &client.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query client by code: %w", err)
	}

	if clientBytes, err := json.Marshal(client); err == nil {
		if err := r.codeCache.Set([]byte(code), clientBytes, codeCacheExpire); err != nil {
			log.Errorf("failed to cache client for code %s: %s", code, err)
		}
	}

	return &client, nil
}

func (r *Repo) ListByTrainer(ctx context.Context, trainerID string) (_ []Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.listbytrainer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainer.id", trainerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, objective, status, client_code, trainer_id, created_at
			FROM client WHERE trainer_id = $1 ORDER BY created_at;`,
		trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var client Client
		if err := rows.Scan(
			&client.ID, &client.Name, &client.Objective, &client.Status,
			&client.ClientCode, &client.TrainerID, &client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("client rows: %w", err)
	}

	return clients, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id, status string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.updatestatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client.id", id),
		attribute.String("client.status", status),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE client SET status = $1 WHERE id = $2;`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update client status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	r.invalidateCodeCache(ctx, id)
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", id))

	r.invalidateCodeCache(ctx, id)

	tag, err := r.db.Exec(ctx, `DELETE FROM client WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

// ClientOwner is the directory view of the routine handlers: just the
// owning trainer of a client.
func (r *Repo) ClientOwner(ctx context.Context, clientID string) (string, bool, error) {
	client, err := r.Get(ctx, clientID)
	if errors.Is(err, ErrClientNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return client.TrainerID, true, nil
}

// ClientByCode resolves a share code into the link view served by the
// public routine endpoints.
func (r *Repo) ClientByCode(ctx context.Context, code string) (*routines.ClientLink, bool, error) {
	client, err := r.GetByCode(ctx, code)
	if errors.Is(err, ErrClientNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &routines.ClientLink{
		ClientID:  client.ID,
		TrainerID: client.TrainerID,
		Name:      client.Name,
		Objective: client.Objective,
		Active:    client.Status == StatusActive,
	}, true, nil
}

// invalidateCodeCache drops the cached code entry of a client, so status
// changes and deletes take effect on the shared link right away.
func (r *Repo) invalidateCodeCache(ctx context.Context, id string) {
	client, err := r.Get(ctx, id)
	if err != nil {
		return
	}
	r.codeCache.Del([]byte(client.ClientCode))
}
