// Package server runs the HTTP transport of the application.
//
// It owns the listener lifecycle: serving until the context is cancelled
// or a shutdown signal arrives, then draining in-flight requests within
// the configured shutdown timeout.
package server
