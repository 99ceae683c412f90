// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRoomNotFound is returned when no room has the requested ID.
	ErrRoomNotFound = errors.New("room was not found")

	// ErrBookingNotFound is returned when no booking of the given room has
	// the requested ID.
	ErrBookingNotFound = errors.New("booking was not found")

	// ErrCodeAlreadyExists is returned when a room insert or update hits the
	// unique index on rooms.code. The validator normally reports this
	// first; the error covers concurrent submissions.
	ErrCodeAlreadyExists = errors.New("room code already exists")

	// ErrInvalidIdentifier is returned when a table or column name passed to
	// CountByColumn is not a plain lower-case SQL identifier.
	ErrInvalidIdentifier = errors.New("invalid sql identifier")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrTemporary marks failures the classifier considers retryable
	// (lost connection, deadlock, busy database).
	ErrTemporary = errors.New("temporary database failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
