// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-room-booking/internal/logger"
	"github.com/MKhiriev/go-room-booking/internal/validators"
	"github.com/MKhiriev/go-room-booking/models"
)

func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.services.RoomService.ListRooms(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, viewRoomsIndex, pageData{Title: "Räume", Rooms: rooms})
}

func (h *Handler) newRoom(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, viewRoomForm, pageData{Title: "Neuer Raum", Action: "/rooms"})
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	form := roomFormFromRequest(r)

	room, err := h.services.RoomService.CreateRoom(r.Context(), form)
	if ve, ok := validators.AsValidationError(err); ok {
		h.render(w, r, http.StatusUnprocessableEntity, viewRoomForm, pageData{
			Title:    "Neuer Raum",
			Errors:   ve.Messages,
			RoomForm: form,
			Action:   "/rooms",
		})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, roomPath(room.ID), http.StatusSeeOther)
}

func (h *Handler) showRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}

	bookings, err := h.services.BookingService.ListBookings(r.Context(), room.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, viewRoomShow, pageData{Title: room.Name, Room: room, Bookings: bookings})
}

func (h *Handler) editRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := h.loadRoom(w, r)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, viewRoomForm, pageData{
		Title:    "Raum bearbeiten",
		RoomForm: room.Form(),
		Action:   roomPath(room.ID),
	})
}

func (h *Handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	form := roomFormFromRequest(r)
	form.ID = id

	_, err = h.services.RoomService.UpdateRoom(r.Context(), form)
	if ve, ok := validators.AsValidationError(err); ok {
		h.render(w, r, http.StatusUnprocessableEntity, viewRoomForm, pageData{
			Title:    "Raum bearbeiten",
			Errors:   ve.Messages,
			RoomForm: form,
			Action:   roomPath(id),
		})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, roomPath(id), http.StatusSeeOther)
}

func (h *Handler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.RoomService.DeleteRoom(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("room_id", id).Msg("room removed by request")
	http.Redirect(w, r, "/rooms", http.StatusSeeOther)
}

// loadRoom fetches the room named by the {id} parameter. On failure the
// error response is already written.
func (h *Handler) loadRoom(w http.ResponseWriter, r *http.Request) (models.Room, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return models.Room{}, false
	}

	room, err := h.services.RoomService.GetRoom(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return models.Room{}, false
	}

	return room, true
}
