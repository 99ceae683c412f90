// Package http implements the HTTP transport layer of the application.
//
// It serves the server-rendered room and booking pages, the redirect
// counter and a small JSON surface (/clicks, /api/version). Request
// tracing, access logging, sessions and response compression are handled
// by middleware before requests reach the service layer.
package http
