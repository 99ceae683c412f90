// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-room-booking/models"
)

// Field name constants used to restrict room validation to a subset of
// fields.
const (
	FieldRoomName        = "name"
	FieldRoomCode        = "code"
	FieldRoomCodeUnique  = "code_unique"
	FieldRoomCapacity    = "capacity"
	FieldRoomPrice       = "price_per_hour"
	FieldRoomDescription = "description"
	FieldRoomAccessible  = "accessible"
)

// Bounds applied to room forms.
const (
	RoomNameMinLength        = 3
	RoomNameMaxLength        = 100
	RoomCodeMinLength        = 2
	RoomCodeMaxLength        = 20
	RoomMinCapacity          = 1
	RoomMaxCapacity          = 500
	RoomMaxPricePerHour      = 10000
	RoomDescriptionMaxLength = 500
)

// DefaultRoomFields is the field set validated when none is given.
var DefaultRoomFields = []string{
	FieldRoomName,
	FieldRoomCode,
	FieldRoomCodeUnique,
	FieldRoomCapacity,
	FieldRoomPrice,
	FieldRoomDescription,
	FieldRoomAccessible,
}

// RoomValidator validates submitted room forms. The code uniqueness check
// queries storage through the configured [Counter].
type RoomValidator struct {
	counter Counter
}

// NewRoomValidator constructs a RoomValidator and returns it as the
// Validator interface.
func NewRoomValidator(counter Counter) Validator {
	return &RoomValidator{counter: counter}
}

// Validate accepts models.RoomForm and *models.RoomForm.
// Returns ErrUnsupportedType for anything else.
func (v *RoomValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RoomForm:
		return v.validateRoomForm(ctx, value, fields...)
	case *models.RoomForm:
		return v.validateRoomForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateRoomForm runs one validation pass over form. The uniqueness
// query is skipped when the code fails its own checks, whether or not
// FieldRoomCode was requested.
func (v *RoomValidator) validateRoomForm(ctx context.Context, form models.RoomForm, fields ...string) error {
	if len(fields) == 0 {
		fields = DefaultRoomFields
	}

	rv := New(WithCounter(v.counter))

	for _, f := range fields {
		var err error

		switch f {
		case FieldRoomName:
			err = rv.Check(RuleTextNum, strings.TrimSpace(form.Name),
				WithLabel("Name"), Required(), Min(RoomNameMinLength), Max(RoomNameMaxLength))
		case FieldRoomCode:
			err = checkRoomCode(rv, strings.TrimSpace(form.Code))
		case FieldRoomCodeUnique:
			code := strings.TrimSpace(form.Code)
			if !validRoomCode(code) {
				continue
			}
			_, err = rv.Unique(ctx, code, "Raumcode", models.Room{}.TableName(), "code")
		case FieldRoomCapacity:
			err = rv.Check(RuleInt, form.Capacity,
				WithLabel("Kapazität"), Required(), Min(RoomMinCapacity), Max(RoomMaxCapacity))
		case FieldRoomPrice:
			err = rv.Check(RuleFloat, form.PricePerHour,
				WithLabel("Preis pro Stunde"), Required(), Min(0), Max(RoomMaxPricePerHour))
		case FieldRoomDescription:
			err = rv.Check(RuleText, strings.TrimSpace(form.Description),
				WithLabel("Beschreibung"), Max(RoomDescriptionMaxLength))
		case FieldRoomAccessible:
			err = rv.Check(RuleCheckbox, form.Accessible, WithLabel("Barrierefrei"))
		default:
			return ErrUnknownField
		}

		if err != nil {
			return err
		}
	}

	return rv.Err()
}

func checkRoomCode(rv *RuleValidator, code string) error {
	return rv.Check(RuleAlphanumeric, code,
		WithLabel("Raumcode"), Required(), Min(RoomCodeMinLength), Max(RoomCodeMaxLength))
}

// validRoomCode runs the code checks on a scratch validator.
func validRoomCode(code string) bool {
	rv := New()
	return checkRoomCode(rv, code) == nil && !rv.HasErrors()
}
