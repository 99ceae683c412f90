package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-room-booking/internal/service"
	"github.com/MKhiriev/go-room-booking/models"
)

func TestRedirect_TracksAndRedirects(t *testing.T) {
	router, m := newTestRouter(t)

	m.clicks.EXPECT().Track(gomock.Any(), gomock.Any(), "/rooms/3").Return("/rooms/3", nil)

	rec := doRequest(router, http.MethodGet, "/go?to=%2Frooms%2F3", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/rooms/3", rec.Header().Get("Location"))
	assert.Equal(t, 1, m.sessions.Len(), "a session is started for the visitor")
}

func TestRedirect_ForeignTarget(t *testing.T) {
	router, m := newTestRouter(t)

	m.clicks.EXPECT().Track(gomock.Any(), gomock.Any(), "https://example.com").Return("", service.ErrInvalidRedirectTarget)

	rec := doRequest(router, http.MethodGet, "/go?to=https://example.com", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestClicks_ReturnsSessionCounters(t *testing.T) {
	router, m := newTestRouter(t)

	m.clicks.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(models.ClickStats{"/rooms": 2, "/rooms/3": 1}, nil)

	rec := doRequest(router, http.MethodGet, "/clicks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got clicksResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, models.ClickStats{"/rooms": 2, "/rooms/3": 1}, got.Targets)
}

func TestClicks_EmptySession(t *testing.T) {
	router, m := newTestRouter(t)

	m.clicks.EXPECT().Stats(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := doRequest(router, http.MethodGet, "/clicks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":0,"targets":{}}`, rec.Body.String())
}
