//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/desk"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/syncer"
)

type Desk interface {
	List(q orders.Query, now time.Time) desk.ListResult
	Get(code string, now time.Time) (orders.View, error)
	Actions(code string, now time.Time) ([]orders.Action, error)
	Decide(ctx context.Context, code string, decision orders.ReturnDecision, actor string, now time.Time) (orders.Decision, error)
	Refresh() bool
	SyncStatus() syncer.Status
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	desk         Desk
	userRepo     UserRepo
	mu           sync.Mutex
	server       *http.Server
	closed       bool
	AuditManager *AuditManager
	logger       *zap.Logger
	now          func() time.Time
}

func New(d Desk, userRepo UserRepo, logger *zap.Logger) *Server {
	logger = logger.With(zap.String("component", "http"))
	return &Server{
		desk:         d,
		userRepo:     userRepo,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, logger),
		logger:       logger,
		now:          time.Now,
	}
}

// Run serves until Shutdown is called. The audit manager stops with ctx.
func (s *Server) Run(ctx context.Context, port string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.server = srv
	s.mu.Unlock()

	s.AuditManager.Start(ctx)

	s.logger.Info("Server starting", zap.String("port", port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	s.mu.Lock()
	s.closed = true
	srv := s.server
	s.mu.Unlock()

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.logger.Info("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/order-statuses", s.handleStatuses).Methods(http.MethodGet)
	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/refresh", s.handleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/orders/{code}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{code}/actions", s.handleActions).Methods(http.MethodGet)
	api.HandleFunc("/orders/{code}/return-decision", s.handleReturnDecision).Methods(http.MethodPost)

	return s.auditLogMiddleware(r)
}

type actorKey struct{}

func actorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil {
			s.logger.Error("Failed to validate user", zap.String("username", username), zap.Error(err))
		}
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, username)))
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"sync":   s.desk.SyncStatus(),
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := orders.Query{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Return: q.Get("return"),
	}

	respondJSON(w, http.StatusOK, s.desk.List(query, s.now()))
}

func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, orders.KnownStatuses())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusAccepted, map[string]bool{
		"scheduled": s.desk.Refresh(),
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	view, err := s.desk.Get(code, s.now())
	if err != nil {
		s.respondDeskError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	actions, err := s.desk.Actions(code, s.now())
	if err != nil {
		s.respondDeskError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"code":    code,
		"actions": actions,
	})
}

func (s *Server) handleReturnDecision(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var decisionRequest struct {
		Decision string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&decisionRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	decision, err := orders.ParseDecision(decisionRequest.Decision)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Decision must be \"approve\" or \"reject\"")
		return
	}

	result, err := s.desk.Decide(r.Context(), code, decision, actorFrom(r.Context()), s.now())
	if err != nil {
		s.respondDeskError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, result)
}

func (s *Server) respondDeskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, desk.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orders.ErrInvalidAction):
		respondError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("Desk operation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}
