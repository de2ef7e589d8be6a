// Package xkcdtest provides an in-process server speaking the xkcd JSON
// interface, for tests of code that fetches comics.
package xkcdtest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/ytget/xkcd-viewer/internal/model"
)

// Server serves comics at /{num}/info.0.json and the newest one at /info.0.json
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	comics   map[int]model.Comic
	latest   int
	status   int
	requests []string
}

// NewServer starts a server holding comics. It is closed when the test ends.
func NewServer(t testing.TB, comics ...model.Comic) *Server {
	t.Helper()

	s := &Server{comics: make(map[int]model.Comic)}
	for _, comic := range comics {
		s.Add(comic)
	}

	router := s.router()
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Path)
		s.mu.Unlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/info.0.json", s.handleLatest).Methods("GET")
	r.HandleFunc("/{num:[0-9]+}/info.0.json", s.handleComic).Methods("GET")
	return r
}

// Add stores comic; the highest number added is served as the latest
func (s *Server) Add(comic model.Comic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comics[comic.Number] = comic
	if comic.Number > s.latest {
		s.latest = comic.Number
	}
}

// FailWith makes every later request answer with status. Zero restores normal service.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Requests returns the request paths received so far
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	latest := s.latest
	s.mu.Unlock()
	s.serve(w, r, latest)
}

func (s *Server) handleComic(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["num"])
	if err != nil {
		http.Error(w, "bad comic number", http.StatusBadRequest)
		return
	}
	s.serve(w, r, number)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, number int) {
	s.mu.Lock()
	status := s.status
	comic, ok := s.comics[number]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := comic.Encode()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
