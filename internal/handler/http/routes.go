package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without a visitor session
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.sessions.Middleware)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/rooms", http.StatusFound)
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", h.listRooms)
			r.Get("/new", h.newRoom)
			r.Post("/", h.createRoom)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.showRoom)
				r.Get("/edit", h.editRoom)
				r.Post("/", h.updateRoom)
				r.Post("/delete", h.deleteRoom)

				r.Get("/bookings/new", h.newBooking)
				r.Post("/bookings", h.createBooking)
				r.Post("/bookings/{bookingID}/delete", h.deleteBooking)
			})
		})

		r.Get("/go", h.redirect)
		r.Get("/clicks", h.clicks)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
