package http

import (
	"net/http"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/session"
	"github.com/MKhiriev/go-room-booking/internal/utils"
	"github.com/MKhiriev/go-room-booking/models"
)

// redirect counts the visit of the local path in ?to= for the current
// session and sends the client there.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.writeError(w, r, session.ErrNoSession)
		return
	}

	target, err := h.services.ClickService.Track(r.Context(), sess.Token, r.URL.Query().Get("to"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

type clicksResponse struct {
	Total   int               `json:"total"`
	Targets models.ClickStats `json:"targets"`
}

func (h *Handler) clicks(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.writeError(w, r, session.ErrNoSession)
		return
	}

	stats, err := h.services.ClickService.Stats(r.Context(), sess.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if stats == nil {
		stats = models.ClickStats{}
	}

	if _, err = utils.WriteJSON(w, clicksResponse{Total: stats.Total(), Targets: stats}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.clicks").Send()
	}
}
