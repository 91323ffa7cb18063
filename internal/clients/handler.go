package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/trainingtrack/backend/internal/middleware"
	"github.com/trainingtrack/backend/internal/routines"
	"github.com/trainingtrack/backend/internal/telemetry/metrics"
	"github.com/trainingtrack/backend/internal/telemetry/tracing"
	"github.com/trainingtrack/backend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=clients_test

type clientsRepo interface {
	Create(ctx context.Context, client Client) error
	Get(ctx context.Context, id string) (*Client, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]Client, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type routinesService interface {
	CreateDefaults(ctx context.Context, clientID string) error
	DeleteForClient(ctx context.Context, clientID string) error
	ProgressBatch(ctx context.Context, clientIDs []string) (map[string]routines.StoredProgress, error)
}

type Handler struct {
	repo     clientsRepo
	routines routinesService
	metrics  *metrics.Manager

	// NowFunc is swapped in tests to pin the week window
	NowFunc func() time.Time
}

func NewHandler(
	repo clientsRepo,
	routinesService routinesService,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		routines: routinesService,
		metrics:  metricsManager,
		NowFunc:  pkg.NowUTC,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	clientsRouter := router.PathPrefix("/clients").Subrouter()
	clientsRouter.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("clients-list")
	clientsRouter.HandleFunc("", handler.handleCreate).Methods("POST").Name("clients-create")
	clientsRouter.HandleFunc("/{id}/status", handler.handleUpdateStatus).Methods("POST", "OPTIONS").Name("clients-status")
	clientsRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("clients-delete")
}

// ownedClient loads the client and enforces the owner-of-record check
// against the logged-in trainer. Writes the error response itself and
// returns nil when the caller should bail out.
func (handler *Handler) ownedClient(
	ctx context.Context,
	w http.ResponseWriter,
	clientID string,
) *Client {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil
	}

	client, err := handler.repo.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return nil
		}
		log.Errorf("get client %s: %s", clientID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}

	if client.TrainerID != session.TrainerID {
		http.Error(w, "not your client", http.StatusForbidden)
		return nil
	}
	return client
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "clientsHandler.list")
	defer span.End()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	clientList, err := handler.repo.ListByTrainer(ctx, session.TrainerID)
	if err != nil {
		log.Errorf("list clients for trainer %s: %s", session.TrainerID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	clientIDs := make([]string, 0, len(clientList))
	for _, client := range clientList {
		clientIDs = append(clientIDs, client.ID)
	}
	progressByClient, err := handler.routines.ProgressBatch(ctx, clientIDs)
	if err != nil {
		log.Errorf("progress batch for trainer %s: %s", session.TrainerID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	now := handler.NowFunc()
	summaries := make([]Summary, 0, len(clientList))
	for _, client := range clientList {
		summary := Summary{Client: client}
		if stored, ok := progressByClient[client.ID]; ok {
			summary = handler.deriveSummary(client, stored, now)
		}
		summaries = append(summaries, summary)
	}

	summariesJson, err := json.Marshal(summaries)
	if err != nil {
		log.Errorf("marshal client summaries: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summariesJson)
}

// deriveSummary folds the stored progress of one client into the
// dashboard row. The last completed day is positional in week order, from
// the explicitly completed flags of the stored document.
func (handler *Handler) deriveSummary(client Client, stored routines.StoredProgress, now time.Time) Summary {
	summary := Summary{
		Client:          client,
		LastCompletedAt: stored.LastCompletedAt,
	}

	for _, day := range routines.WeekDays {
		if stored.Progress.Days[day.Key].Completed {
			label := day.Label
			summary.LastDayCompleted = &label
		}
	}

	meta := stored.Progress.Meta
	summary.LastActivityUTC = meta.LastActivityUTC
	summary.LastResetUTC = meta.LastResetUTC

	if meta.LastResetUTC != nil {
		if lastReset, err := time.Parse(time.RFC3339, *meta.LastResetUTC); err == nil {
			summary.WeekStarted = !lastReset.Before(pkg.WeekStartUTC(now))
		}
	}
	switch {
	case meta.LastActivityUTC != nil:
		if lastActivity, err := time.Parse(time.RFC3339, *meta.LastActivityUTC); err == nil {
			summary.DaysSinceActivity = pkg.DaysBetweenUTC(&lastActivity, &now)
		}
	case stored.LastCompletedAt != nil:
		// rows written before activity tracking only carry the
		// completion timestamp
		summary.DaysSinceActivity = pkg.DaysBetweenUTC(stored.LastCompletedAt, &now)
	}

	return summary
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "clientsHandler.create")
	defer span.End()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	type createRequest struct {
		Name      string `json:"name"`
		Objective string `json:"objective"`
	}
	var createReq createRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		log.Tracef("create client, unmarshal json params: %s", err)
		http.Error(w, "create client failed", http.StatusBadRequest)
		return
	}
	if createReq.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	clientCode, err := NewClientCode()
	if err != nil {
		log.Errorf("create client, generate code: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	client := Client{
		ID:         uuid.NewString(),
		Name:       createReq.Name,
		Objective:  createReq.Objective,
		Status:     StatusActive,
		ClientCode: clientCode,
		TrainerID:  session.TrainerID,
		CreatedAt:  handler.NowFunc(),
	}

	if err := handler.repo.Create(ctx, client); err != nil {
		log.Errorf("create client [%s]: %s", client.Name, err)
		http.Error(w, "create client failed", http.StatusInternalServerError)
		return
	}
	if err := handler.routines.CreateDefaults(ctx, client.ID); err != nil {
		log.Errorf("create client [%s], seed routine: %s", client.ID, err)
		http.Error(w, "create client failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterClientsCreated.Inc()
	log.Printf("new client created: [%s] %s", client.ID, client.Name)

	clientJson, err := json.Marshal(client)
	if err != nil {
		log.Errorf("marshal created client: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, clientJson, http.StatusCreated)
}

func (handler *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "clientsHandler.updateStatus")
	defer span.End()

	vars := mux.Vars(r)
	clientID := vars["id"]

	client := handler.ownedClient(ctx, w, clientID)
	if client == nil {
		return
	}

	type statusRequest struct {
		Status string `json:"status"`
	}
	var statusReq statusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		log.Tracef("update client status, unmarshal json params: %s", err)
		http.Error(w, "update status failed", http.StatusBadRequest)
		return
	}
	if statusReq.Status != StatusActive && statusReq.Status != StatusArchived {
		http.Error(w, "error, invalid status", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateStatus(ctx, clientID, statusReq.Status); err != nil {
		log.Errorf("update client %s status: %s", clientID, err)
		http.Error(w, "update status failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated": true}`)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "clientsHandler.delete")
	defer span.End()

	vars := mux.Vars(r)
	clientID := vars["id"]

	client := handler.ownedClient(ctx, w, clientID)
	if client == nil {
		return
	}

	// routine and progress rows go first, the client row last
	if err := handler.routines.DeleteForClient(ctx, clientID); err != nil {
		log.Errorf("delete client %s routine data: %s", clientID, err)
		http.Error(w, "delete client failed", http.StatusInternalServerError)
		return
	}
	if err := handler.repo.Delete(ctx, clientID); err != nil {
		log.Errorf("delete client %s: %s", clientID, err)
		http.Error(w, "delete client failed", http.StatusInternalServerError)
		return
	}

	log.Printf("client deleted: %s", clientID)
	pkg.WriteJSONResponseOK(w, `{"deleted": true}`)
}
