// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// RoomForm holds the raw values of a submitted room form.
// Values are kept as strings so that invalid input can be rendered back.
type RoomForm struct {
	// ID is zero when creating a room.
	ID int64

	Name         string
	Code         string
	Capacity     string
	PricePerHour string
	Description  string
	Accessible   string
}

// Room converts a validated form into a [Room].
// It must only be called after validation succeeded.
func (f RoomForm) Room() Room {
	return Room{
		ID:           f.ID,
		Name:         strings.TrimSpace(f.Name),
		Code:         strings.TrimSpace(f.Code),
		Capacity:     parseInt(f.Capacity),
		PricePerHour: parseFloat(f.PricePerHour),
		Description:  strings.TrimSpace(f.Description),
		Accessible:   f.Accessible != "",
	}
}

// BookingForm holds the raw values of a submitted booking form.
type BookingForm struct {
	RoomID int64

	// RoomCapacity bounds Persons. It is filled from the stored room,
	// never from the request.
	RoomCapacity int

	GuestName         string
	Email             string
	EmailConfirmation string
	Persons           string
	Hours             string
	Notes             string
	TermsAccepted     string
}

// Booking converts a validated form into a [Booking].
func (f BookingForm) Booking() Booking {
	return Booking{
		RoomID:    f.RoomID,
		GuestName: strings.TrimSpace(f.GuestName),
		Email:     strings.TrimSpace(f.Email),
		Persons:   parseInt(f.Persons),
		Hours:     parseFloat(f.Hours),
		Notes:     strings.TrimSpace(f.Notes),
	}
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
