package routines

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/trainingtrack/backend/internal/middleware"
	"github.com/trainingtrack/backend/internal/telemetry/metrics"
	"github.com/trainingtrack/backend/internal/telemetry/tracing"
	"github.com/trainingtrack/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=link_handler_mocks_test.go -package=routines_test

// ClientLink is the client view resolved from a share code, the only
// identity a link visitor has.
type ClientLink struct {
	ClientID  string
	TrainerID string
	Name      string
	Objective string
	Active    bool
}

type linkDirectory interface {
	ClientByCode(ctx context.Context, code string) (_ *ClientLink, found bool, err error)
}

type linkGateway interface {
	TrainerActive(ctx context.Context, trainerID string) (bool, error)
}

type linkService interface {
	GetForClient(ctx context.Context, clientID string) (*RoutineState, error)
	SaveProgress(ctx context.Context, clientID string, submitted Progress, session SessionWindow) (*SaveProgressResult, error)
	ResetProgress(ctx context.Context, clientID string) (Progress, error)
}

// LinkHandler serves the code-based client links. No session auth here,
// the share code is the capability; abuse is contained by rate limiting
// and the trainer/client status checks.
type LinkHandler struct {
	service   linkService
	directory linkDirectory
	gateway   linkGateway
	metrics   *metrics.Manager
}

func NewLinkHandler(
	service linkService,
	directory linkDirectory,
	gateway linkGateway,
	metricsManager *metrics.Manager,
) *LinkHandler {
	return &LinkHandler{
		service:   service,
		directory: directory,
		gateway:   gateway,
		metrics:   metricsManager,
	}
}

func (handler *LinkHandler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	linkRateLimitAllowedPerMin int,
	progressSaveRateLimitAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	linkSubrouter := mainRouter.PathPrefix("/r").Subrouter()
	linkSubrouter.HandleFunc("/{code}", handler.handleView).
		Methods("GET", "OPTIONS").Name("link-view")

	progressSubrouter := linkSubrouter.PathPrefix("/{code}/progress").Subrouter()
	progressSubrouter.HandleFunc("", handler.handleSaveProgress).
		Methods("POST", "OPTIONS").Name("link-progress-save")
	progressSubrouter.HandleFunc("/reset", handler.handleResetProgress).
		Methods("POST", "OPTIONS").Name("link-progress-reset")

	// shared links are public, keep the door small
	linkSubrouter.Use(middleware.RateLimit(rateLimiter, "client-link", linkRateLimitAllowedPerMin, metricsManager))
	progressSubrouter.Use(middleware.RateLimit(rateLimiter, "progress-save", progressSaveRateLimitAllowedPerMin, metricsManager))
}

// resolveLink turns a share code into an active client link. Invalid
// codes get a 404 status payload, archived clients and disabled trainers
// a 403 one, so the web client can tell the cases apart.
func (handler *LinkHandler) resolveLink(
	ctx context.Context,
	w http.ResponseWriter,
	code string,
) *ClientLink {
	link, found, err := handler.directory.ClientByCode(ctx, code)
	if err != nil {
		log.Errorf("resolve client code %s: %s", code, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}
	if !found {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"status": "invalid"}`), http.StatusNotFound)
		return nil
	}

	trainerActive, err := handler.gateway.TrainerActive(ctx, link.TrainerID)
	if err != nil {
		log.Errorf("trainer active check for client %s: %s", link.ClientID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}
	if !link.Active || !trainerActive {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"status": "disabled"}`), http.StatusForbidden)
		return nil
	}

	return link
}

func (handler *LinkHandler) handleView(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "linkHandler.view")
	defer span.End()

	code := mux.Vars(r)["code"]
	link := handler.resolveLink(ctx, w, code)
	if link == nil {
		return
	}
	span.SetAttributes(attribute.String("client.id", link.ClientID))

	state, err := handler.service.GetForClient(ctx, link.ClientID)
	if err != nil {
		log.Errorf("get routine for link %s: %s", code, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	type viewResponse struct {
		Name      string `json:"name"`
		Objective string `json:"objective,omitempty"`
		*RoutineState
	}
	respJson, err := json.Marshal(viewResponse{
		Name:         link.Name,
		Objective:    link.Objective,
		RoutineState: state,
	})
	if err != nil {
		log.Errorf("marshal link view: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *LinkHandler) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "linkHandler.saveProgress")
	defer span.End()

	code := mux.Vars(r)["code"]
	link := handler.resolveLink(ctx, w, code)
	if link == nil {
		return
	}
	span.SetAttributes(attribute.String("client.id", link.ClientID))

	type saveRequest struct {
		Progress Progress `json:"progress"`
		SessionWindow
	}
	var saveReq saveRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		log.Tracef("save progress, unmarshal json params: %s", err)
		http.Error(w, "save progress failed", http.StatusBadRequest)
		return
	}

	result, err := handler.service.SaveProgress(ctx, link.ClientID, saveReq.Progress, saveReq.SessionWindow)
	if err != nil {
		log.Errorf("save progress for client %s: %s", link.ClientID, err)
		http.Error(w, "save progress failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterProgressSaves.Inc()
	if result.NewlySuspicious {
		handler.metrics.CounterSuspiciousSessions.Inc()
		userIP, _ := pkg.ReadUserIP(r)
		log.Warnf("suspicious progress submission for client %s from [%s]: %s",
			link.ClientID, userIP, *result.Progress.Meta.SuspiciousReason)
	}

	type saveResponse struct {
		Progress        Progress   `json:"progress"`
		LastCompletedAt *time.Time `json:"last_completed_at"`
	}
	respJson, err := json.Marshal(saveResponse{
		Progress:        result.Progress,
		LastCompletedAt: result.LastCompletedAt,
	})
	if err != nil {
		log.Errorf("marshal save progress response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *LinkHandler) handleResetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "linkHandler.resetProgress")
	defer span.End()

	code := mux.Vars(r)["code"]
	link := handler.resolveLink(ctx, w, code)
	if link == nil {
		return
	}
	span.SetAttributes(attribute.String("client.id", link.ClientID))

	cleared, err := handler.service.ResetProgress(ctx, link.ClientID)
	if err != nil {
		log.Errorf("reset progress for client %s: %s", link.ClientID, err)
		http.Error(w, "reset progress failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterProgressResets.Inc()

	clearedJson, err := json.Marshal(cleared)
	if err != nil {
		log.Errorf("marshal cleared progress: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, clearedJson)
}
