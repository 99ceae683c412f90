// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-room-booking/internal/logger"
)

type columnCounter struct {
	logger *logger.Logger
	db     *DB
}

// NewColumnCounter constructs the [ColumnCounter] used by uniqueness
// checks of the form validators.
func NewColumnCounter(db *DB, logger *logger.Logger) ColumnCounter {
	logger.Debug().Msg("creating column counter")
	return &columnCounter{
		db:     db,
		logger: logger,
	}
}

// CountByColumn runs SELECT COUNT(*) FROM table WHERE column = value with
// value bound as a query parameter. table and column must be plain
// identifiers, otherwise [ErrInvalidIdentifier] is returned.
func (c *columnCounter) CountByColumn(ctx context.Context, table, column string, value any) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByColumnQuery(c.db.builder(), table, column, value)
	if err != nil {
		log.Err(err).Str("func", "*columnCounter.CountByColumn").Msg("error building count query")
		return 0, err
	}

	var count int64
	if err = c.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*columnCounter.CountByColumn").
			Str("table", table).Str("column", column).Msg("error counting rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, c.db.classify(err))
	}

	return count, nil
}
