package providertest

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-echo-feed/internal/app"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/utils"
	"github.com/MKhiriev/go-echo-feed/models"
)

func (s *Server) newAPIKey(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var resp models.APIKeyResponse
	if !s.exhausted {
		key := s.nextKeyLocked()
		s.keys[key] = true
		resp.APIKey = &key
	}
	s.mu.Unlock()

	writeJSON(w, r, resp)
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "apiKey")

	s.mu.Lock()
	s.stateCalls[key]++
	known := s.keys[key]
	snapshot := s.snapshot
	s.mu.Unlock()

	if !known {
		writeError(w, r, app.MsgKeyNotFound)
		return
	}

	snapshot.Error = nil
	writeJSON(w, r, snapshot)
}

func (s *Server) sendActions(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, models.EndpointActions)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, models.EndpointMessage)
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request, endpoint string) {
	key := chi.URLParam(r, "apiKey")

	var set models.ActionSet
	if err := json.Unmarshal([]byte(r.FormValue("data")), &set); err != nil {
		logger.FromRequest(r).Err(err).Msg("malformed submission")
		http.Error(w, "malformed data field", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	known := s.keys[key]
	reject := s.reject
	if known && reject == "" {
		s.submissions = append(s.submissions, Submission{
			Endpoint: endpoint,
			APIKey:   key,
			Step:     s.snapshot.Step,
			Set:      set,
		})
	}
	s.mu.Unlock()

	switch {
	case !known:
		writeError(w, r, app.MsgKeyNotFound)
	case reject != "":
		writeError(w, r, reject)
	default:
		writeError(w, r, "")
	}
}

func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "apiKey") != s.adminKey {
			writeError(w, r, app.MsgPermissionDenied)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) simulationState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		writeError(w, r, app.MsgNoActiveSimulation)
		return
	}

	ready := 0
	for _, sub := range s.submissions {
		if sub.Step == s.snapshot.Step {
			ready++
		}
	}
	state := models.SimulationState{
		Params:      s.params,
		Step:        s.snapshot.Step,
		Paused:      s.paused,
		Ready:       ready,
		StepEndTime: s.snapshot.StepEndTime,
	}
	s.mu.Unlock()

	writeJSON(w, r, state)
}

// adminView lists every issued key with whether it has acted on the
// current step, as [key, done] pairs.
func (s *Server) adminView(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		writeError(w, r, app.MsgNoActiveSimulation)
		return
	}

	done := make(map[string]bool)
	for _, sub := range s.submissions {
		if sub.Step == s.snapshot.Step {
			done[sub.APIKey] = true
		}
	}
	keys := make([]string, 0, len(s.keys))
	for key := range s.keys {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	pairs := make([][2]any, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, [2]any{key, done[key]})
	}
	view := map[string]any{
		"params": s.params,
		"step":   s.snapshot.Step,
		"ready":  len(done),
		"apiKey": pairs,
	}
	s.mu.Unlock()

	writeJSON(w, r, view)
}

func (s *Server) defaultParameters(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	params := s.defaults
	s.mu.Unlock()

	writeJSON(w, r, params)
}

func (s *Server) pastSimulations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	past := append([]json.RawMessage{}, s.past...)
	s.mu.Unlock()

	writeJSON(w, r, past)
}

func (s *Server) createSimulation(w http.ResponseWriter, r *http.Request) {
	params := json.RawMessage(r.FormValue("data"))
	if !json.Valid(params) {
		http.Error(w, "malformed data field", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.active = true
	s.paused = false
	s.params = params
	s.snapshot = models.RoundSnapshot{}
	s.submissions = nil
	s.mu.Unlock()

	writeError(w, r, "")
}

func (s *Server) endSimulation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.active && s.params != nil {
		s.past = append(s.past, s.params)
	}
	s.active = false
	s.params = nil
	s.mu.Unlock()

	writeError(w, r, "")
}

func (s *Server) setPaused(paused bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		active := s.active
		if active {
			s.paused = paused
		}
		s.mu.Unlock()

		if !active {
			writeError(w, r, app.MsgNoActiveSimulation)
			return
		}
		writeError(w, r, "")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, msg string) {
	if _, err := utils.WriteEnvelope(w, msg); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write error envelope")
	}
}
