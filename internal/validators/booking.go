// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-room-booking/models"
)

// Field name constants used to restrict booking validation.
const (
	FieldBookingGuestName = "guest_name"
	FieldBookingEmail     = "email"
	FieldBookingEmailSame = "email_confirmation"
	FieldBookingPersons   = "persons"
	FieldBookingHours     = "hours"
	FieldBookingNotes     = "notes"
	FieldBookingTerms     = "terms"
)

const (
	GuestNameMinLength  = 2
	GuestNameMaxLength  = 100
	EmailMaxLength      = 255
	BookingMinHours     = 0.5
	BookingMaxHours     = 24
	BookingNotesMaxSize = 500
)

var DefaultBookingFields = []string{
	FieldBookingGuestName,
	FieldBookingEmail,
	FieldBookingEmailSame,
	FieldBookingPersons,
	FieldBookingHours,
	FieldBookingNotes,
	FieldBookingTerms,
}

// BookingValidator validates submitted booking forms.
type BookingValidator struct{}

func NewBookingValidator() Validator {
	return &BookingValidator{}
}

// Validate accepts models.BookingForm and *models.BookingForm.
func (v *BookingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BookingForm:
		return v.validateBookingForm(value, fields...)
	case *models.BookingForm:
		return v.validateBookingForm(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookingValidator) validateBookingForm(form models.BookingForm, fields ...string) error {
	if len(fields) == 0 {
		fields = DefaultBookingFields
	}

	rv := New()

	for _, f := range fields {
		var err error

		switch f {
		case FieldBookingGuestName:
			err = rv.Check(RuleLetters, strings.TrimSpace(form.GuestName),
				WithLabel("Name"), Required(), Min(GuestNameMinLength), Max(GuestNameMaxLength))
		case FieldBookingEmail:
			err = rv.Check(RuleTextNum, strings.TrimSpace(form.Email),
				WithLabel("E-Mail"), Required(), Max(EmailMaxLength))
		case FieldBookingEmailSame:
			rv.Compare(
				Pair{Value: strings.TrimSpace(form.Email), Label: "E-Mail"},
				Pair{Value: strings.TrimSpace(form.EmailConfirmation), Label: "E-Mail (Wiederholung)"},
			)
		case FieldBookingPersons:
			opts := []FieldOption{WithLabel("Personen"), Required(), Min(1)}
			if form.RoomCapacity > 0 {
				opts = append(opts, Max(float64(form.RoomCapacity)))
			}
			err = rv.Check(RuleInt, form.Persons, opts...)
		case FieldBookingHours:
			err = rv.Check(RuleNumeric, form.Hours,
				WithLabel("Stunden"), Required(), Min(BookingMinHours), Max(BookingMaxHours))
		case FieldBookingNotes:
			err = rv.Check(RuleTextNum, strings.TrimSpace(form.Notes),
				WithLabel("Anmerkungen"), Max(BookingNotesMaxSize))
		case FieldBookingTerms:
			err = rv.Check(RuleCheckbox, form.TermsAccepted,
				WithLabel("AGB"), Required())
		default:
			return ErrUnknownField
		}

		if err != nil {
			return err
		}
	}

	return rv.Err()
}
