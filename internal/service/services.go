package service

import (
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-echo-feed/internal/adapter"
	"github.com/MKhiriev/go-echo-feed/internal/logger"
	"github.com/MKhiriev/go-echo-feed/internal/store"
)

type ClientServices struct {
	Engine  SyncEngine
	PollJob PollJob
}

// NewClientServices wires one participant: a SyncEngine over provider and
// storages, and the poll job driving it. clock may be nil for the wall
// clock.
func NewClientServices(provider adapter.RoundStateProvider, storages *store.ClientStorages, settings EngineSettings, clock clockwork.Clock, logger *logger.Logger, opts ...EngineOption) *ClientServices {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	engine := NewSyncEngine(provider, storages, settings, logger, append([]EngineOption{WithClock(clock)}, opts...)...)

	return &ClientServices{
		Engine:  engine,
		PollJob: NewPollJob(engine, clock),
	}
}
