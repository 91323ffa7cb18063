package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trainingtrack/backend/internal/middleware"
	"github.com/trainingtrack/backend/internal/telemetry/metrics"
	"github.com/trainingtrack/backend/internal/telemetry/tracing"
	"github.com/trainingtrack/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routines_test

type routineService interface {
	GetForClient(ctx context.Context, clientID string) (*RoutineState, error)
	SaveRoutine(ctx context.Context, clientID string, in Plan) (Plan, error)
	CopyRoutine(ctx context.Context, sourceClientID, targetClientID string) (Plan, error)
	ResetProgress(ctx context.Context, clientID string) (Progress, error)
}

// clientDirectory is the slice of the clients storage the routine
// handlers need for the owner-of-record check.
type clientDirectory interface {
	ClientOwner(ctx context.Context, clientID string) (trainerID string, found bool, err error)
}

type Handler struct {
	service   routineService
	directory clientDirectory
	metrics   *metrics.Manager
}

func NewHandler(
	service routineService,
	directory clientDirectory,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:   service,
		directory: directory,
		metrics:   metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/clients/{id}/routine", handler.handleGetRoutine).
		Methods("GET", "OPTIONS").Name("routine-get")
	router.HandleFunc("/clients/{id}/routine", handler.handleSaveRoutine).
		Methods("PUT").Name("routine-save")
	router.HandleFunc("/clients/{id}/routine/copy", handler.handleCopyRoutine).
		Methods("POST", "OPTIONS").Name("routine-copy")
	router.HandleFunc("/clients/{id}/progress/reset", handler.handleResetProgress).
		Methods("POST", "OPTIONS").Name("progress-reset")
}

// checkOwnership enforces the owner-of-record check for a client id.
// Writes the error response itself and reports whether to proceed.
func (handler *Handler) checkOwnership(
	ctx context.Context,
	w http.ResponseWriter,
	clientID string,
) bool {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return false
	}

	trainerID, found, err := handler.directory.ClientOwner(ctx, clientID)
	if err != nil {
		log.Errorf("client owner lookup %s: %s", clientID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}
	if !found {
		http.Error(w, "client not found", http.StatusNotFound)
		return false
	}
	if trainerID != session.TrainerID {
		http.Error(w, "not your client", http.StatusForbidden)
		return false
	}
	return true
}

func (handler *Handler) handleGetRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.get")
	defer span.End()

	clientID := mux.Vars(r)["id"]
	if !handler.checkOwnership(ctx, w, clientID) {
		return
	}

	state, err := handler.service.GetForClient(ctx, clientID)
	if err != nil {
		log.Errorf("get routine for client %s: %s", clientID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("marshal routine state: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, stateJson)
}

func (handler *Handler) handleSaveRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.save")
	defer span.End()

	clientID := mux.Vars(r)["id"]
	if !handler.checkOwnership(ctx, w, clientID) {
		return
	}

	var plan Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("save routine, unmarshal json params: %s", err)
		http.Error(w, "save routine failed", http.StatusBadRequest)
		return
	}

	normalized, err := handler.service.SaveRoutine(ctx, clientID, plan)
	if err != nil {
		if errors.Is(err, ErrTooManyExercises) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("save routine for client %s: %s", clientID, err)
		http.Error(w, "save routine failed", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(normalized)
	if err != nil {
		log.Errorf("marshal normalized plan: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, planJson)
}

func (handler *Handler) handleCopyRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.copy")
	defer span.End()

	clientID := mux.Vars(r)["id"]
	if !handler.checkOwnership(ctx, w, clientID) {
		return
	}

	type copyRequest struct {
		SourceClientID string `json:"source_client_id"`
	}
	var copyReq copyRequest
	if err := json.NewDecoder(r.Body).Decode(&copyReq); err != nil {
		log.Tracef("copy routine, unmarshal json params: %s", err)
		http.Error(w, "copy routine failed", http.StatusBadRequest)
		return
	}
	if copyReq.SourceClientID == "" {
		http.Error(w, "error, source client id empty", http.StatusBadRequest)
		return
	}

	// both ends of the copy must belong to the logged-in trainer
	if !handler.checkOwnership(ctx, w, copyReq.SourceClientID) {
		return
	}

	plan, err := handler.service.CopyRoutine(ctx, copyReq.SourceClientID, clientID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "source routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("copy routine %s -> %s: %s", copyReq.SourceClientID, clientID, err)
		http.Error(w, "copy routine failed", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal copied plan: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, planJson)
}

func (handler *Handler) handleResetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.resetProgress")
	defer span.End()

	clientID := mux.Vars(r)["id"]
	if !handler.checkOwnership(ctx, w, clientID) {
		return
	}

	cleared, err := handler.service.ResetProgress(ctx, clientID)
	if err != nil {
		log.Errorf("reset progress for client %s: %s", clientID, err)
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
