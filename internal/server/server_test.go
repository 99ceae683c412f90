package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-booking/internal/config"
	"github.com/MKhiriev/go-room-booking/internal/handler"
	"github.com/MKhiriev/go-room-booking/internal/logger"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, s)
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func newTestServer(addr string, h http.Handler) *server {
	cfg := config.Server{HTTPAddress: addr, RequestTimeout: time.Second, ShutdownTimeout: time.Second}
	return &server{httpServer: newHTTPServer(h, cfg, logger.Nop()), logger: logger.Nop()}
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	s := newTestServer("127.0.0.1:0", http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := newTestServer(ln.Addr().String(), http.NotFoundHandler())

	err = s.RunServer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
}
