package http

import (
	"net/http"

	"github.com/MKhiriev/go-room-booking/internal/validators"
)

func (h *Handler) newBooking(w http.ResponseWriter, r *http.Request) {
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, viewBookingForm, pageData{
		Title:  "Raum buchen",
		Room:   room,
		Action: roomPath(room.ID) + "/bookings",
	})
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}

	form := bookingFormFromRequest(r, room.ID)

	_, err := h.services.BookingService.CreateBooking(r.Context(), form)
	if ve, ok := validators.AsValidationError(err); ok {
		h.render(w, r, http.StatusUnprocessableEntity, viewBookingForm, pageData{
			Title:       "Raum buchen",
			Errors:      ve.Messages,
			Room:        room,
			BookingForm: form,
			Action:      roomPath(room.ID) + "/bookings",
		})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, roomPath(room.ID), http.StatusSeeOther)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bookingID, err := pathID(r, "bookingID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.BookingService.DeleteBooking(r.Context(), roomID, bookingID); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, roomPath(roomID), http.StatusSeeOther)
}
