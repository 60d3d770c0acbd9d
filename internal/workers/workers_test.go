// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int64
	err      error
}

func (m *mockWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int64(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block or panic on an empty workers list
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_ErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")

	var cancelled atomic.Bool
	blocking := WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		cancelled.Store(true)
		return nil
	})
	failing := &mockWorker{err: boom}

	ws := NewWorkers(blocking, failing)

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
		assert.True(t, cancelled.Load())
	case <-time.After(time.Second):
		t.Fatal("Run did not return after a worker failed")
	}
}

func TestWorkers_Run_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var started atomic.Int64
	w := WorkerFunc(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	})
	ws := NewWorkers(w, w)

	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Add(t *testing.T) {
	ws := NewWorkers()
	w := &mockWorker{}
	ws.Add(w)

	assert.Equal(t, 1, ws.Len())
	require.NoError(t, ws.Run(context.Background()))
	require.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, int64(2), w.runCount.Load())
}
