package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mealbot/internal/metrics"
	"mealbot/internal/planner"
)

// Server exposes the service over HTTP.
type Server struct {
	httpServer *http.Server
	service    *Service
	chat       *Chat
	metrics    *metrics.Store
	dataDir    string
}

// NewServer builds the router and the underlying http.Server. The
// metrics store may be nil; commands are then not recorded.
func NewServer(port string, service *Service, chat *Chat, store *metrics.Store, dataDir string) *Server {
	s := &Server{
		service: service,
		chat:    chat,
		metrics: store,
		dataDir: dataDir,
	}

	r := chi.NewRouter()
	r.Post("/start_month", s.handleStartMonth)
	r.Get("/day/{month}/{date}", s.handleGetDay)
	r.Post("/cook", s.handleCook)
	r.Post("/chat/message", s.handleChatMessage)
	r.Get("/healthz", s.handleHealthz)

	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) record(command, month string, started time.Time) {
	if s.metrics == nil {
		return
	}
	if err := s.metrics.Record(metrics.CommandMetric{
		Command:   command,
		Month:     month,
		LatencyMS: time.Since(started).Milliseconds(),
	}); err != nil {
		log.Printf("Failed to record metric for %s: %v", command, err)
	}
}

func (s *Server) handleStartMonth(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req StartMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.service.StartMonth(r.Context(), req.Month, req.UserProfile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.record("start_month", req.Month, started)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	month := chi.URLParam(r, "month")
	date := chi.URLParam(r, "date")

	day, err := s.service.Day(r.Context(), month, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.record("day", month, started)
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleCook(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req CookMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.service.Cook(r.Context(), req.Date, req.Meal)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.record("cook", req.Date[:7], started)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := s.chat.HandleMessage(r.Context(), &req)
	s.record("chat", req.Month, started)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	health := metrics.GetSysHealth(s.dataDir)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"alloc_mb":       health.AllocMB,
		"goroutines":     health.Goroutines,
		"data_disk_size": health.DataDiskSize,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMonthNotStarted):
		writeError(w, http.StatusNotFound, "Month not initialized. Call /start_month first")
	case errors.Is(err, ErrDateNotFound):
		writeError(w, http.StatusNotFound, "Date not found in month plan")
	case errors.Is(err, planner.ErrInvalidMonth):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", err))
	}
}
