// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned when a path parameter is not a positive
	// integer. It is reported as 404, like an unknown ID.
	ErrInvalidID = errors.New("invalid id in request path")

	// ErrUnknownView is returned by the renderer for a page that was not
	// parsed at start.
	ErrUnknownView = errors.New("unknown view")
)
