// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TripType distinguishes the three booking form variants.
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripAirport   TripType = "airport"
)

// Valid reports whether t is a known trip type.
func (t TripType) Valid() bool {
	switch t {
	case TripOneWay, TripRoundTrip, TripAirport:
		return true
	}
	return false
}

// Booking is a taxi booking request submitted through the public form.
// End users create it once and never touch it again; admins may update
// individual fields or delete it.
type Booking struct {
	ID          uuid.UUID  `json:"id"`
	TripType    TripType   `json:"tripType"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	Date        time.Time  `json:"date"`
	TripEndDate *time.Time `json:"tripEndDate,omitempty"` // round-trip only
	Passengers  int        `json:"passengers"`
	CarType     string     `json:"carType"`
	Phone       string     `json:"phone"`
	CreatedAt   time.Time  `json:"createdAt"`
}
