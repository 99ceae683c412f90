// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Room is a bookable room.
type Room struct {
	// ID is the database-assigned identifier.
	ID int64 `json:"id"`

	// Name is the display name shown in listings.
	Name string `json:"name"`

	// Code is the short unique room code (e.g. "A101").
	Code string `json:"code"`

	// Capacity is the maximum number of persons.
	Capacity int `json:"capacity"`

	// PricePerHour is the hourly rate in euros.
	PricePerHour float64 `json:"price_per_hour"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Accessible marks wheelchair accessible rooms.
	Accessible bool `json:"accessible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Room model.
func (r Room) TableName() string {
	return "rooms"
}

// PriceFor returns the price of booking the room for hours.
func (r Room) PriceFor(hours float64) float64 {
	return r.PricePerHour * hours
}

// Form returns the room as form input, used to prefill edit forms.
func (r Room) Form() RoomForm {
	form := RoomForm{
		ID:           r.ID,
		Name:         r.Name,
		Code:         r.Code,
		Capacity:     formatInt(r.Capacity),
		PricePerHour: formatFloat(r.PricePerHour),
		Description:  r.Description,
	}
	if r.Accessible {
		form.Accessible = "on"
	}
	return form
}
