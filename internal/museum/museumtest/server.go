// Package museumtest serves an in-memory catalog over HTTP for tests.
package museumtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/five82/vitrine/internal/museum"
)

// Server is a fake catalog API. It answers /object with term filtering and
// paging, and builds prev/next locators that point back at itself.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	records  []museum.Record
	requests []*url.URL
	status   int
}

// NewServer starts a fake catalog holding records. Call Close when done.
func NewServer(records []museum.Record) *Server {
	s := &Server{records: records}
	r := chi.NewRouter()
	r.Get("/object", s.handleObjects)
	s.Server = httptest.NewServer(r)
	return s
}

// FailWith makes every subsequent request answer with status. Zero restores
// normal responses.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Requests returns the URLs received so far, in arrival order.
func (s *Server) Requests() []*url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*url.URL, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handleObjects(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u := *r.URL
	s.requests = append(s.requests, &u)
	status := s.status
	records := s.records
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	query := r.URL.Query()
	size := atoiDefault(query.Get("size"), museum.DefaultPageSize)
	page := atoiDefault(query.Get("page"), 1)

	matched := make([]museum.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, query) {
			matched = append(matched, rec)
		}
	}

	pages := (len(matched) + size - 1) / size
	start := (page - 1) * size
	end := start + size
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	info := museum.PaginationInfo{
		TotalRecordsPerQuery: size,
		TotalRecords:         len(matched),
		Pages:                pages,
		Page:                 page,
	}
	if page > 1 {
		info.Prev = s.pageURL(query, page-1)
	}
	if page < pages {
		info.Next = s.pageURL(query, page+1)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(museum.SearchResultSet{
		Info:    info,
		Records: matched[start:end],
	})
}

func (s *Server) pageURL(query url.Values, page int) string {
	next := url.Values{}
	for k, v := range query {
		next[k] = append([]string(nil), v...)
	}
	next.Set("page", strconv.Itoa(page))
	return s.URL + "/object?" + next.Encode()
}

func matches(rec museum.Record, query url.Values) bool {
	for term, values := range query {
		if len(values) == 0 {
			continue
		}
		want := strings.ToLower(values[0])
		switch term {
		case "keyword":
			if !contains(rec.Title, want) && !contains(rec.Description, want) {
				return false
			}
		case "medium":
			if !contains(rec.Medium, want) {
				return false
			}
		case "culture":
			if !contains(rec.Culture, want) {
				return false
			}
		case "technique":
			if !contains(rec.Technique, want) {
				return false
			}
		case "person":
			found := false
			for _, p := range rec.People {
				if contains(p.DisplayName, want) || contains(p.Name, want) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func contains(field, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(field), lowerNeedle)
}

func atoiDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
