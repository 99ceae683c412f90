// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator is a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules and lookups against persistent storage.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	//
	// Data-driven failures are reported as *ValidationError.
	// Any other error is a configuration or infrastructure failure.
	Validate(context.Context, any, ...string) error
}

// Counter is the persistence collaborator used by [RuleValidator.Unique].
// Implementations must bind value as a query parameter and never
// interpolate it into the statement text.
type Counter interface {

	// CountByColumn returns the number of rows in table whose column
	// equals value.
	CountByColumn(ctx context.Context, table, column string, value any) (int64, error)
}
