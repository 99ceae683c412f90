package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-room-booking/models"
)

func roomPath(id int64) string {
	return "/rooms/" + strconv.FormatInt(id, 10)
}

// pathID reads a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Values are passed on untrimmed; validation and conversion decide what
// whitespace means for each field.
func roomFormFromRequest(r *http.Request) models.RoomForm {
	return models.RoomForm{
		Name:         r.PostFormValue("name"),
		Code:         r.PostFormValue("code"),
		Capacity:     r.PostFormValue("capacity"),
		PricePerHour: r.PostFormValue("price_per_hour"),
		Description:  r.PostFormValue("description"),
		Accessible:   r.PostFormValue("accessible"),
	}
}

func bookingFormFromRequest(r *http.Request, roomID int64) models.BookingForm {
	return models.BookingForm{
		RoomID:            roomID,
		GuestName:         r.PostFormValue("guest_name"),
		Email:             r.PostFormValue("email"),
		EmailConfirmation: r.PostFormValue("email_confirmation"),
		Persons:           r.PostFormValue("persons"),
		Hours:             r.PostFormValue("hours"),
		Notes:             r.PostFormValue("notes"),
		TermsAccepted:     r.PostFormValue("terms_accepted"),
	}
}
