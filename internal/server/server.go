//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/allseasons/tiredepot/internal/apperrors"
	"github.com/allseasons/tiredepot/internal/cache"
	"github.com/allseasons/tiredepot/internal/custody"
	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/reminder"
)

type DepotService interface {
	DefineLayout(ctx context.Context, providerID string, corridors []depot.Corridor) (*depot.Layout, error)
	Status(ctx context.Context, providerID string) (*depot.Layout, error)
}

type CustodyService interface {
	Intake(ctx context.Context, req custody.IntakeRequest) (*custody.Record, error)
	LookupByCode(ctx context.Context, providerID, code string) (*custody.Record, error)
	Release(ctx context.Context, recordID uuid.UUID, providerID string) (*custody.Record, error)
	MarkDamaged(ctx context.Context, recordID uuid.UUID, providerID string) (*custody.Record, error)
	History(ctx context.Context, recordID uuid.UUID) ([]custody.HistoryEntry, error)
	ListByCustomer(ctx context.Context, customerID string, limit int, activeOnly bool) ([]custody.Record, error)
	ExpiredRecords(ctx context.Context, providerID string) ([]custody.Record, error)
}

type ReminderService interface {
	RunSeasonalSweep(ctx context.Context, providerID string, season custody.Season) (reminder.SweepResult, error)
	UpdateSettings(ctx context.Context, providerID string, settings reminder.Settings) error
	Settings(ctx context.Context, providerID string) (reminder.Settings, error)
	ProviderStats(ctx context.Context, providerID string) (reminder.Stats, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	depot       DepotService
	custody     CustodyService
	reminder    ReminderService
	userRepo    UserRepo
	statusCache *cache.StatusCache
	logger      *zap.Logger
	server      *http.Server
}

func New(depotSvc DepotService, custodySvc CustodyService, reminderSvc ReminderService, userRepo UserRepo, statusCache *cache.StatusCache, logger *zap.Logger) *Server {
	return &Server{
		depot:       depotSvc,
		custody:     custodySvc,
		reminder:    reminderSvc,
		userRepo:    userRepo,
		statusCache: statusCache,
		logger:      logger,
	}
}

func (s *Server) Run(port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("HTTP server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/providers/{provider}/layout", s.handleDefineLayout).Methods(http.MethodPut)
	api.HandleFunc("/providers/{provider}/depot", s.handleDepotStatus).Methods(http.MethodGet)

	api.HandleFunc("/custody", s.handleIntake).Methods(http.MethodPost)
	api.HandleFunc("/providers/{provider}/custody/{code}", s.handleLookupByCode).Methods(http.MethodGet)
	api.HandleFunc("/custody/{id}/release", s.handleRelease).Methods(http.MethodPost)
	api.HandleFunc("/custody/{id}/damage", s.handleMarkDamaged).Methods(http.MethodPost)
	api.HandleFunc("/custody/{id}/history", s.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customer}/custody", s.handleCustomerRecords).Methods(http.MethodGet)
	api.HandleFunc("/providers/{provider}/expired", s.handleExpiredRecords).Methods(http.MethodGet)

	api.HandleFunc("/providers/{provider}/reminders", s.handleUpdateReminderSettings).Methods(http.MethodPut)
	api.HandleFunc("/providers/{provider}/reminders", s.handleGetReminderSettings).Methods(http.MethodGet)
	api.HandleFunc("/providers/{provider}/reminders/{season}/run", s.handleRunSweep).Methods(http.MethodPost)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
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

// writeError maps core error kinds onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrCapacity):
		respondError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
