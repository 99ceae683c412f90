package session

import "errors"

var (
	// ErrInvalidSession is returned when a session without token is stored.
	ErrInvalidSession = errors.New("session is invalid")

	// ErrSessionNotFound is returned when no session has the given token.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionExpired is returned when the session exists but its TTL
	// has passed. The session is removed.
	ErrSessionExpired = errors.New("session has expired")

	// ErrNoSession is returned when a request context carries no session.
	ErrNoSession = errors.New("no session in context")
)
