// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package providertest runs a scripted Round State Provider over HTTP. Tests
// set the snapshot it serves, revoke keys and inspect every submission it
// received. It speaks the same routes and envelopes as the real provider.
package providertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/models"
)

// Submission is one POST /send-actions or /send-message the server accepted.
type Submission struct {
	Endpoint string
	APIKey   string
	// Step is the step the server was on when the request arrived.
	Step int
	Set  models.ActionSet
}

// Server is a stub provider. The zero value is not usable; call New.
type Server struct {
	mu sync.Mutex

	adminKey  string
	keys      map[string]bool
	issue     []string
	exhausted bool

	snapshot    models.RoundSnapshot
	submissions []Submission
	stateCalls  map[string]int
	reject      string

	active   bool
	paused   bool
	params   json.RawMessage
	past     []json.RawMessage
	defaults json.RawMessage

	logger *logger.Logger
	srv    *httptest.Server
}

// Option configures a Server before it starts.
type Option func(*Server)

// WithAdminKey sets the key accepted by the admin endpoints.
func WithAdminKey(key string) Option {
	return func(s *Server) { s.adminKey = key }
}

// WithIssuedKeys queues the keys GET /new-apikey hands out, in order.
// Once the queue is empty random keys are issued.
func WithIssuedKeys(keys ...string) Option {
	return func(s *Server) { s.issue = append(s.issue, keys...) }
}

// WithKnownKeys registers keys as already issued.
func WithKnownKeys(keys ...string) Option {
	return func(s *Server) {
		for _, k := range keys {
			s.keys[k] = true
		}
	}
}

// WithSnapshot sets the initial snapshot served by GET /state.
func WithSnapshot(snapshot models.RoundSnapshot) Option {
	return func(s *Server) { s.snapshot = snapshot }
}

// WithLogger sets the request logger. Requests are not logged by default.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New starts a Server on a loopback port. Call Close when done.
func New(opts ...Option) *Server {
	s := &Server{
		adminKey:   "admin",
		keys:       make(map[string]bool),
		stateCalls: make(map[string]int),
		active:     true,
		defaults:   json.RawMessage(`{"size":24,"outDegree":3,"issues":2}`),
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.srv = httptest.NewServer(s.Routes())
	return s
}

// Routes builds the chi router. Exposed for tests that host it themselves.
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)

	router.Get("/new-apikey", s.newAPIKey)
	router.Get("/state/{apiKey}", s.state)
	router.Post("/send-actions/{apiKey}", s.sendActions)
	router.Post("/send-message/{apiKey}", s.sendMessage)

	router.Group(func(r chi.Router) {
		r.Use(s.adminOnly)
		r.Get("/simulation-state/{apiKey}", s.simulationState)
		r.Get("/admin-view/{apiKey}", s.adminView)
		r.Get("/get-default-parameters/{apiKey}", s.defaultParameters)
		r.Get("/past-simulations/{apiKey}", s.pastSimulations)
		r.Post("/create-simulation/{apiKey}", s.createSimulation)
		r.Get("/end-simulation/{apiKey}", s.endSimulation)
		r.Post("/pause-simulation/{apiKey}", s.setPaused(true))
		r.Post("/resume-simulation/{apiKey}", s.setPaused(false))
	})

	return router
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	return s.srv.URL
}

func (s *Server) Close() {
	s.srv.Close()
}

// SetSnapshot replaces the snapshot served to every known key.
func (s *Server) SetSnapshot(snapshot models.RoundSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}

// AdvanceStep moves the served snapshot to the next step and returns it.
func (s *Server) AdvanceStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Step++
	return s.snapshot.Step
}

// RevokeKey makes the server forget key; its next poll gets keyNotFound.
func (s *Server) RevokeKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
}

// ExhaustKeys makes GET /new-apikey answer with a null key.
func (s *Server) ExhaustKeys(exhausted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exhausted = exhausted
}

// RejectSubmissions makes submit endpoints answer with msg in the error
// field. An empty msg accepts submissions again.
func (s *Server) RejectSubmissions(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reject = msg
}

// Submissions returns a copy of every accepted submission.
func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.submissions)
}

// SubmissionsFor returns the accepted submissions of key.
func (s *Server) SubmissionsFor(key string) []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Submission
	for _, sub := range s.submissions {
		if sub.APIKey == key {
			out = append(out, sub)
		}
	}
	return out
}

// StateCalls returns how many times key polled GET /state.
func (s *Server) StateCalls(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateCalls[key]
}

// Keys returns the keys the server currently recognises.
func (s *Server) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *Server) nextKeyLocked() string {
	if len(s.issue) > 0 {
		key := s.issue[0]
		s.issue = s.issue[1:]
		return key
	}
	return uuid.NewString()
}
