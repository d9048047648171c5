package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/poiesic/igbodict/core"
	"github.com/poiesic/igbodict/search"
	"github.com/poiesic/igbodict/storage"
)

// requestFromQuery reads search parameters. Modifiers are passed through
// raw; the searcher applies their fallbacks.
func requestFromQuery(r *http.Request) search.Request {
	q := r.URL.Query()
	isEnglish, _ := strconv.ParseBool(q.Get("isEnglish"))
	return search.Request{
		Keyword:   q.Get("keyword"),
		IsEnglish: isEnglish,
		Page:      q.Get("page"),
		Range:     q.Get("range"),
		Sort:      q.Get("sort"),
	}
}

func (s *Server) handleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := requestFromQuery(r)
		results, err := s.searcher.Search(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, search.ErrInvalidRequest):
				s.respondError(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, search.ErrUpstreamUnavailable):
				s.respondError(w, "dictionary unavailable", http.StatusServiceUnavailable)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				s.logger.Debug("search abandoned", "keyword", req.Keyword, "err", err)
				s.respondError(w, "request canceled", http.StatusServiceUnavailable)
			default:
				s.logger.Error("search failed", "keyword", req.Keyword, "err", err)
				s.respondError(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		s.respondJSON(w, results, http.StatusOK)
	}
}

func (s *Server) handleEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
		if err != nil || id == 0 {
			s.respondError(w, "invalid entry id", http.StatusBadRequest)
			return
		}
		entry, err := s.entries.GetEntry(r.Context(), core.ID(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				s.respondError(w, "entry not found", http.StatusNotFound)
				return
			}
			s.logger.Error("entry lookup failed", "id", id, "err", err)
			s.respondError(w, "dictionary unavailable", http.StatusServiceUnavailable)
			return
		}
		result := search.Project(entry)
		s.respondJSON(w, &result, http.StatusOK)
	}
}
