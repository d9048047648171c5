// Package api serves dictionary search over HTTP.
//
// Routes:
//
//	GET /words?keyword=&isEnglish=&page=&range=&sort=   one page of results
//	GET /words/{id}                                    a single entry
//
// Responses are JSON. Search failures map to status codes: 400 for an
// invalid request, 503 when storage is unavailable, 404 for an unknown
// entry and 405 for methods other than GET.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/search"
)

// Searcher runs search requests.
type Searcher interface {
	Search(ctx context.Context, req search.Request) ([]search.Result, error)
}

// EntryGetter looks up single entries.
type EntryGetter interface {
	GetEntry(ctx context.Context, id core.ID) (*core.Entry, error)
}

// Server is an HTTP server for the dictionary.
type Server struct {
	http.Server
	mux      *http.ServeMux
	searcher Searcher
	entries  EntryGetter
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates a server listening on addr.
func NewServer(addr string, searcher Searcher, entries EntryGetter, opts ...Option) (*Server, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if entries == nil {
		return nil, ErrEntriesRequired
	}

	s := &Server{
		mux:      http.NewServeMux(),
		searcher: searcher,
		entries:  entries,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.mux.HandleFunc("GET /words", s.withLogging(s.handleSearch()))
	s.mux.HandleFunc("GET /words/{id}", s.withLogging(s.handleEntry()))

	s.Addr = addr
	s.Handler = s.mux
	s.ReadHeaderTimeout = 10 * time.Second
	return s, nil
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	return s.Shutdown(ctx)
}

func (s *Server) respondJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	buffer := new(bytes.Buffer)
	if err := json.NewEncoder(buffer).Encode(v); err != nil {
		s.logger.Error("encoding response failed", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"encoding error"}`))
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(buffer.Bytes())
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, msg string, status int) {
	s.respondJSON(w, &errorResponse{Error: msg}, status)
}

func (s *Server) withLogging(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		handler(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"client", r.RemoteAddr,
			"elapsed", time.Since(start))
	}
}
