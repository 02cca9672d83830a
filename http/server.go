package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/awalczyk/biascope"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "biascope_session"

// DefaultSessionTTL is how long a login session stays valid.
const DefaultSessionTTL = 24 * time.Hour

// Server is the JSON API server. All dependencies are explicit; there is
// no ambient state beyond what the struct carries.
type Server struct {
	server *http.Server
	mux    *http.ServeMux
	logger *slog.Logger

	// Addr is the bind address, e.g. ":8080".
	Addr string

	// SessionTTL overrides DefaultSessionTTL when non-zero.
	SessionTTL time.Duration

	// Services consumed by the handlers.
	Users     biascope.UserService
	Sessions  biascope.SessionService
	History   biascope.HistoryService
	Hasher    biascope.PasswordHasher
	Extractor biascope.TextExtractor
	Analyzer  biascope.Analyzer
}

// NewServer creates a new Server with routes registered.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
	}

	s.mux.HandleFunc("POST /register", s.handleRegister)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("GET /logout", s.handleLogout)
	s.mux.HandleFunc("GET /check-auth", s.handleCheckAuth)
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /history", s.handleHistory)

	return s
}

// Handler returns the server's handler chain: CORS, then request logging,
// then the route mux.
func (s *Server) Handler() http.Handler {
	return s.cors(s.logRequests(s.mux))
}

// ListenAndServe starts serving on Addr and blocks until Shutdown or
// failure. Returns nil on graceful shutdown.
func (s *Server) ListenAndServe() error {
	s.server = &http.Server{
		Addr:    s.Addr,
		Handler: s.Handler(),
	}
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// sessionTTL returns the configured or default session lifetime.
func (s *Server) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// currentSession resolves the caller's session from the request cookie.
// Returns EUNAUTHORIZED when there is no live session.
func (s *Server) currentSession(r *http.Request) (*biascope.Session, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, biascope.Errorf(biascope.EUNAUTHORIZED, "authentication required")
	}
	session, err := s.Sessions.FindSessionByToken(r.Context(), cookie.Value)
	if err != nil {
		if biascope.ErrorCode(err) == biascope.ENOTFOUND {
			return nil, biascope.Errorf(biascope.EUNAUTHORIZED, "authentication required")
		}
		return nil, err
	}
	return session, nil
}

// cors allows cross-origin requests from the frontend. Credentials are
// allowed, so the origin is echoed rather than wildcarded.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
		)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// writeJSON serializes v with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encoding failed", "error", err)
	}
}

// decodeJSON parses a request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return biascope.Errorf(biascope.EINVALID, "invalid JSON body")
	}
	return nil
}
