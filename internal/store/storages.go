// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/logger"
)

// Storages groups every repository backed by one database connection.
type Storages struct {
	RoomRepository    RoomRepository
	BookingRepository BookingRepository
	ColumnCounter     ColumnCounter

	db *DB
}

// NewStorages connects to the configured database, applies migrations
// when enabled and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if !cfg.DB.SkipMigrations {
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("driver", db.driver).Msg("migrations applied")
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		RoomRepository:    NewRoomRepository(db, log),
		BookingRepository: NewBookingRepository(db, log),
		ColumnCounter:     NewColumnCounter(db, log),
		db:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
