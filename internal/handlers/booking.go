// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"gujarattaxi/internal/models"
	"gujarattaxi/internal/store"
)

// Bookings groups the booking handlers. Create is public (rate-limited
// at the router); everything else is admin-only.
type Bookings struct {
	bookings *store.BookingStore
	audits   *store.AuditLogStore
}

// NewBookings creates a new Bookings handler group.
func NewBookings(bookings *store.BookingStore, audits *store.AuditLogStore) *Bookings {
	return &Bookings{bookings: bookings, audits: audits}
}

type bookingInput struct {
	TripType    string     `json:"tripType"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	Date        *time.Time `json:"date"`
	TripEndDate *time.Time `json:"tripEndDate"`
	Passengers  int        `json:"passengers"`
	CarType     string     `json:"carType"`
	Phone       string     `json:"phone"`
}

func (in *bookingInput) validate() string {
	if !models.TripType(in.TripType).Valid() {
		return "Trip type must be one-way, round-trip or airport."
	}
	if strings.TrimSpace(in.From) == "" {
		return "Pickup location is required."
	}
	if in.Date == nil {
		return "Travel date is required."
	}
	if models.TripType(in.TripType) == models.TripRoundTrip {
		if in.TripEndDate == nil {
			return "Return date is required for round trips."
		}
		if in.TripEndDate.Before(*in.Date) {
			return "Return date must not be before the travel date."
		}
	}
	if in.Passengers < 1 || in.Passengers > maxPassengers {
		return "Passengers must be between 1 and 16."
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return "Phone number is required."
	}
	if utf8.RuneCountInString(phone) > maxPhoneLen {
		return "Phone number is too long."
	}
	return ""
}

// Create accepts a booking request from the public form.
func (h *Bookings) Create(w http.ResponseWriter, r *http.Request) {
	var in bookingInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.bookings.Create(&models.Booking{
		TripType:    models.TripType(in.TripType),
		From:        strings.TrimSpace(in.From),
		To:          strings.TrimSpace(in.To),
		Date:        *in.Date,
		TripEndDate: in.TripEndDate,
		Passengers:  in.Passengers,
		CarType:     in.CarType,
		Phone:       strings.TrimSpace(in.Phone),
	})
	if err != nil {
		respondInternal(w, "create booking failed", err)
		return
	}

	respondOK(w, http.StatusCreated, "Booking request received", envelope{"booking": created})
}

// List returns all bookings for the admin surface, newest first.
func (h *Bookings) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List()
	if err != nil {
		respondInternal(w, "list bookings failed", err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// Get returns a single booking by ID.
func (h *Bookings) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	booking, err := h.bookings.FindByID(id)
	if err != nil {
		respondInternal(w, "find booking failed", err)
		return
	}
	if booking == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"booking": booking})
}

// Update replaces a booking's fields. Admin only.
func (h *Bookings) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	booking, err := h.bookings.FindByID(id)
	if err != nil {
		respondInternal(w, "find booking failed", err)
		return
	}
	if booking == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}

	var in bookingInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	booking.TripType = models.TripType(in.TripType)
	booking.From = strings.TrimSpace(in.From)
	booking.To = strings.TrimSpace(in.To)
	booking.Date = *in.Date
	booking.TripEndDate = in.TripEndDate
	booking.Passengers = in.Passengers
	booking.CarType = in.CarType
	booking.Phone = strings.TrimSpace(in.Phone)

	if err := h.bookings.Update(booking); err != nil {
		respondInternal(w, "update booking failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "booking")
	respondOK(w, http.StatusOK, "Booking updated", envelope{"booking": booking})
}

// Delete removes a booking by ID. Admin only.
func (h *Bookings) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	booking, err := h.bookings.FindByID(id)
	if err != nil {
		respondInternal(w, "find booking failed", err)
		return
	}
	if booking == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err := h.bookings.Delete(id); err != nil {
		respondInternal(w, "delete booking failed", err)
		return
	}
	recordAudit(h.audits, r, "delete", "booking")
	respondOK(w, http.StatusOK, "Booking deleted", nil)
}
