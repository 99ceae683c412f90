package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-room-booking/internal/service"
	"github.com/MKhiriev/go-room-booking/internal/session"
	"github.com/MKhiriev/go-room-booking/internal/store"
)

// errorStatusMap is checked in order, so a wrapped error carrying more than
// one sentinel gets the status of the first match.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidID, http.StatusNotFound},
	{store.ErrRoomNotFound, http.StatusNotFound},
	{store.ErrBookingNotFound, http.StatusNotFound},
	{store.ErrCodeAlreadyExists, http.StatusConflict},
	{store.ErrTemporary, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidRedirectTarget, http.StatusBadRequest},

	{session.ErrNoSession, http.StatusServiceUnavailable},
	{session.ErrSessionNotFound, http.StatusServiceUnavailable},
	{session.ErrSessionExpired, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
