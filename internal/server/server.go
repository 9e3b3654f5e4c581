package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jacobsee/calwidget/internal/auth"
	"github.com/jacobsee/calwidget/internal/calendar"
	"github.com/jacobsee/calwidget/internal/logging"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server represents the HTTP server
type Server struct {
	calManager *calendar.Manager
	auth       auth.Authenticator
	logger     *slog.Logger
	host       string
	port       int
}

// New creates a new server instance
func New(calManager *calendar.Manager, authenticator auth.Authenticator, logger *slog.Logger, host string, port int) *Server {
	if authenticator == nil {
		authenticator = &auth.NoAuth{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		calManager: calManager,
		auth:       authenticator,
		logger:     logging.WithOperation(logger, "server"),
		host:       host,
		port:       port,
	}
}

// Handler returns the HTTP handler serving all endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /calendars", s.authMiddleware(s.handleListCalendars))
	mux.HandleFunc("GET /calendar/", s.authMiddleware(s.handleGetCalendar))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.calManager.Metrics().Gatherer(), promhttp.HandlerOpts{}))

	return mux
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	s.logger.Info("starting server", slog.String("addr", addr))
	return srv.ListenAndServe()
}

func (s *Server) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.auth.Authenticate(r) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleListCalendars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	for _, name := range s.calManager.List() {
		fmt.Fprintf(w, "%s\n", name)
	}
}

// calendarResponse is the JSON document served for a single calendar
type calendarResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Variant     string         `json:"variant"`
	EntryLimit  int            `json:"entryLimit"`
	Options     map[string]any `json:"options"`
}

func (s *Server) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/calendar/")
	if name == "" {
		http.Error(w, "Calendar name required", http.StatusBadRequest)
		return
	}

	widget, err := s.calManager.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp := calendarResponse{
		Name:        name,
		Description: s.calManager.Description(name),
		Variant:     widget.Variant(),
		EntryLimit:  widget.EntryLimit(),
		Options:     widget.Options(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("error writing calendar response", logging.Calendar(name), logging.Err(err))
	}
}
