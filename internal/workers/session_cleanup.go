// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/logger"
)

// SessionCleanupWorker periodically drops expired visitor sessions.
type SessionCleanupWorker struct {
	sweeper  SessionSweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionCleanupWorker creates the worker with the interval from cfg.
func NewSessionCleanupWorker(sweeper SessionSweeper, cfg config.Workers, log *logger.Logger) *SessionCleanupWorker {
	return &SessionCleanupWorker{
		sweeper:  sweeper,
		interval: cfg.SessionCleanupInterval,
		logger:   log,
	}
}

// Run sweeps once per interval until ctx is cancelled. Sweep failures are
// logged and do not stop the worker.
func (w *SessionCleanupWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session cleanup worker stopped")
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SessionCleanupWorker) sweep(ctx context.Context) {
	removed, err := w.sweeper.DeleteExpired(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*SessionCleanupWorker.sweep").Msg("error deleting expired sessions")
		return
	}
	if removed > 0 {
		w.logger.Debug().Int("removed", removed).Msg("expired sessions deleted")
	}
}
