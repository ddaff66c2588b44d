package agentspace

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

/*
MockRegistry fakes the Discovery Engine agents endpoints. It stores
created agents keyed by id and counts calls so tests can assert that
precondition failures never reach the network.
*/
type MockRegistry struct {
	*httptest.Server
	mu     sync.Mutex
	agents map[string]*Agent
	nextID string

	CreateCalls int
	GetCalls    int
	DeleteCalls int

	LastAuthorization string
	LastUserProject   string

	// Custom handlers for testing
	customCreate http.HandlerFunc
	customGet    http.HandlerFunc
	customDelete http.HandlerFunc
}

func NewMockRegistry() *MockRegistry {
	mock := &MockRegistry{
		agents: make(map[string]*Agent),
		nextID: "abc123",
	}

	mock.Server = httptest.NewServer(http.HandlerFunc(mock.handle))

	return mock
}

// BaseURL returns the URL the client should use as its API base.
func (s *MockRegistry) BaseURL() string {
	return s.URL + "/v1alpha"
}

func (s *MockRegistry) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.LastAuthorization = r.Header.Get("Authorization")
	s.LastUserProject = r.Header.Get("X-Goog-User-Project")
	s.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/agents"):
		s.handleCreate(w, r)
	case r.Method == http.MethodGet:
		s.handleGet(w, r)
	case r.Method == http.MethodDelete:
		s.handleDelete(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *MockRegistry) handleCreate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.CreateCalls++
	s.mu.Unlock()

	if s.customCreate != nil {
		s.customCreate(w, r)
		return
	}

	var agent Agent
	if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// The registry addresses the record by the request path plus the
	// assigned id, mirroring the real API's name field.
	name := strings.TrimPrefix(r.URL.Path, "/v1alpha/") + "/" + s.nextID
	agent.Name = name

	s.mu.Lock()
	s.agents[s.nextID] = &agent
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(agent)
}

func (s *MockRegistry) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.GetCalls++
	s.mu.Unlock()

	if s.customGet != nil {
		s.customGet(w, r)
		return
	}

	id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	s.mu.Lock()
	agent, ok := s.agents[id]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(agent)
}

func (s *MockRegistry) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.DeleteCalls++
	s.mu.Unlock()

	if s.customDelete != nil {
		s.customDelete(w, r)
		return
	}

	id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	s.mu.Lock()
	_, ok := s.agents[id]
	delete(s.agents, id)
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}
