// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Booking is a reservation of a room for a number of hours.
type Booking struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	GuestName string    `json:"guest_name"`
	Email     string    `json:"email"`
	Persons   int       `json:"persons"`
	Hours     float64   `json:"hours"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}
