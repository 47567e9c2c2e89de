// Package notestest runs an in-memory notes backend over httptest for tests.
// It records every request it receives and can be told to fail, drop or
// stall requests per HTTP method.
package notestest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Chandanabr23/ZenBoard/pkg/notesapi"
)

type Request struct {
	Method string
	ID     string
	Note   notesapi.Note
	At     time.Time
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	notes    []notesapi.Note
	requests []Request
	ids      []string
	status   map[string]int
	drop     map[string]bool
	gates    map[string]*gate
	omitID   bool
}

type gate struct {
	ch   chan struct{}
	once sync.Once
}

func (g *gate) open() {
	g.once.Do(func() { close(g.ch) })
}

func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		status: make(map[string]int),
		drop:   make(map[string]bool),
		gates:  make(map[string]*gate),
	}

	r := mux.NewRouter()
	r.HandleFunc("/notes", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/notes", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/notes/{id}", s.handleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/notes/{id}", s.handleDelete).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(s.intercept(r))
	t.Cleanup(func() {
		s.mu.Lock()
		for _, g := range s.gates {
			g.open()
		}
		s.gates = map[string]*gate{}
		s.mu.Unlock()
		s.Close()
	})

	return s
}

// Seed stores notes as if they had been created earlier.
func (s *Server) Seed(notes ...notesapi.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = append(s.notes, notes...)
}

// QueueIDs makes the next creates use the given ids instead of random uuids.
func (s *Server) QueueIDs(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = append(s.ids, ids...)
}

// Fail answers every following request with method using status.
// Status zero restores normal handling.
func (s *Server) Fail(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status[method] = status
}

// Drop closes the connection of every following request with method.
func (s *Server) Drop(method string, drop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drop[method] = drop
}

// OmitCreateID strips the id from create responses.
func (s *Server) OmitCreateID(omit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.omitID = omit
}

// Hold stalls requests with method until the returned release is called.
func (s *Server) Hold(method string) (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := &gate{ch: make(chan struct{})}
	s.gates[method] = g

	return func() {
		s.mu.Lock()
		if s.gates[method] == g {
			delete(s.gates, method)
		}
		s.mu.Unlock()
		g.open()
	}
}

func (s *Server) Requests(method string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Request
	for _, r := range s.requests {
		if r.Method == method {
			out = append(out, r)
		}
	}

	return out
}

func (s *Server) Notes() []notesapi.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.notes)
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{Method: r.Method, At: time.Now()}
		if id, ok := strings.CutPrefix(r.URL.Path, "/notes/"); ok {
			req.ID = id
		}
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			_ = json.NewDecoder(r.Body).Decode(&req.Note)
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		g := s.gates[r.Method]
		status := s.status[r.Method]
		drop := s.drop[r.Method]
		s.mu.Unlock()

		if g != nil {
			select {
			case <-g.ch:
			case <-r.Context().Done():
				return
			}
		}

		if drop {
			if hj, ok := w.(http.Hijacker); ok {
				if conn, _, err := hj.Hijack(); err == nil {
					_ = conn.Close()
					return
				}
			}
		}

		if status != 0 {
			respondError(w, status, http.StatusText(status))
			return
		}

		next.ServeHTTP(w, r.WithContext(withRequest(r.Context(), req)))
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	notes := slices.Clone(s.notes)
	s.mu.Unlock()

	if notes == nil {
		notes = []notesapi.Note{}
	}

	respondJSON(w, http.StatusOK, notes)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	in := requestFrom(r.Context()).Note

	s.mu.Lock()
	id := uuid.NewString()
	if len(s.ids) > 0 {
		id, s.ids = s.ids[0], s.ids[1:]
	}
	note := notesapi.Note{
		ID:      notesapi.ID(id),
		Content: in.Content,
		X:       in.X,
		Y:       in.Y,
		Color:   in.Color,
	}
	s.notes = append(s.notes, note)
	omit := s.omitID
	s.mu.Unlock()

	if omit {
		respondJSON(w, http.StatusOK, map[string]any{
			"content": note.Content,
			"x":       note.X,
			"y":       note.Y,
			"color":   note.Color,
		})
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := notesapi.ID(mux.Vars(r)["id"])
	in := requestFrom(r.Context()).Note

	s.mu.Lock()
	idx := slices.IndexFunc(s.notes, func(n notesapi.Note) bool { return n.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	in.ID = id
	s.notes[idx] = in
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, in)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := notesapi.ID(mux.Vars(r)["id"])

	s.mu.Lock()
	idx := slices.IndexFunc(s.notes, func(n notesapi.Note) bool { return n.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	s.notes = slices.Delete(s.notes, idx, idx+1)
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
