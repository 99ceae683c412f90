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

	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.err != nil {
		return m.err
	}
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- NewWorkers(w1, w2, w3).Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	require.NoError(t, NewWorkers().Run(context.Background()))
	require.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	waiting := &mockWorker{}

	err := NewWorkers(waiting, &mockWorker{err: boom}).Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), waiting.runCount.Load())
}

type stubSweeper struct {
	calls   atomic.Int32
	removed int
	err     error
}

func (s *stubSweeper) DeleteExpired(ctx context.Context) (int, error) {
	s.calls.Add(1)
	return s.removed, s.err
}

func TestSessionCleanupWorker_SweepsUntilCancelled(t *testing.T) {
	tests := []struct {
		name    string
		sweeper *stubSweeper
	}{
		{name: "removes sessions", sweeper: &stubSweeper{removed: 3}},
		{name: "sweep error keeps running", sweeper: &stubSweeper{err: errors.New("locked")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewSessionCleanupWorker(tt.sweeper, config.Workers{SessionCleanupInterval: time.Millisecond}, logger.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error)
			go func() { done <- w.Run(ctx) }()

			require.Eventually(t, func() bool { return tt.sweeper.calls.Load() >= 2 }, time.Second, time.Millisecond)

			cancel()
			require.NoError(t, <-done)
		})
	}
}
