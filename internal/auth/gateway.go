package auth

import (
	"context"
	"strings"

	"github.com/trainingtrack/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=gateway_mocks_test.go -package=auth_test

const trainerStatusActive = "active"

// accessStore is the slice of the trainers storage the gateway needs:
// the allow-list and the trainer row status.
type accessStore interface {
	AllowListActive(ctx context.Context, email string) (bool, error)
	TrainerEmailStatus(ctx context.Context, trainerID string) (email string, status string, err error)
}

// Access is the result of an authorization check. The owner account is
// always authorized, everyone else only while their allow-list entry is
// active.
type Access struct {
	Owner  bool
	Active bool
}

func (a Access) Authorized() bool {
	return a.Owner || a.Active
}

// Gateway decides which trainer accounts may use the service at all.
// It guards both the trainer endpoints (by login email) and the shared
// client links (by the owning trainer of the link).
type Gateway struct {
	ownerEmail string
	store      accessStore
}

func NewGateway(ownerEmail string, store accessStore) *Gateway {
	return &Gateway{
		ownerEmail: strings.ToLower(ownerEmail),
		store:      store,
	}
}

// Authorize checks a trainer login email against the owner account and
// the allow-list. Emails are compared case-insensitively.
func (g *Gateway) Authorize(ctx context.Context, email string) (_ Access, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.gateway.authorize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email = strings.ToLower(email)
	if g.ownerEmail != "" && email == g.ownerEmail {
		return Access{Owner: true, Active: true}, nil
	}

	active, err := g.store.AllowListActive(ctx, email)
	if err != nil {
		return Access{}, err
	}
	return Access{Active: active}, nil
}

// TrainerActive reports whether the shared links of a trainer still work:
// the trainer row must be active and the trainer must be authorized.
// Used on the client-link path, where only the trainer id is known.
func (g *Gateway) TrainerActive(ctx context.Context, trainerID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.gateway.trainerActive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainer.id", trainerID))

	email, status, err := g.store.TrainerEmailStatus(ctx, trainerID)
	if err != nil {
		return false, err
	}
	if status != trainerStatusActive {
		return false, nil
	}

	access, err := g.Authorize(ctx, email)
	if err != nil {
		return false, err
	}
	return access.Authorized(), nil
}
