package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/models"
)

//go:embed templates
var templatesFS embed.FS

// Page names. Each is parsed together with the layout and partials.
const (
	viewRoomsIndex  = "rooms_index.html"
	viewRoomForm    = "room_form.html"
	viewRoomShow    = "room_show.html"
	viewBookingForm = "booking_form.html"
)

var viewFuncs = template.FuncMap{
	"price": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 2, 64)
	},
	"hours": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	},
	"roomPath": roomPath,
}

type views struct {
	pages map[string]*template.Template
}

func newViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template)}

	for _, page := range []string{viewRoomsIndex, viewRoomForm, viewRoomShow, viewBookingForm} {
		t, err := template.New("layout.html").Funcs(viewFuncs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("error parsing view %s: %w", page, err)
		}
		v.pages[page] = t
	}

	return v, nil
}

// pageData is passed to every view. Unused fields stay zero.
type pageData struct {
	Title  string
	Errors []string

	Rooms    []models.Room
	Room     models.Room
	Bookings []models.Booking

	RoomForm    models.RoomForm
	BookingForm models.BookingForm

	// Action is the form submission URL.
	Action string
}

// render executes page into a buffer first so that a failing template
// never leaves a half-written response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	t, ok := h.views.pages[page]
	if !ok {
		log.Err(ErrUnknownView).Str("func", "*Handler.render").Str("view", page).Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("view", page).Msg("error executing template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// writeError maps err to a status code and answers with its text.
// Server-side failures are logged, client errors are not.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}
	http.Error(w, http.StatusText(status), status)
}
