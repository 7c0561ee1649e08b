// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

// BookingStore handles taxi booking requests.
type BookingStore struct {
	db *sql.DB
}

// NewBookingStore creates a new BookingStore.
func NewBookingStore(db *sql.DB) *BookingStore {
	return &BookingStore{db: db}
}

const bookingColumns = `id, trip_type, from_place, to_place, travel_date,
	trip_end_date, passengers, car_type, phone, created_at`

func scanBooking(row scanner) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(&b.ID, &b.TripType, &b.From, &b.To, &b.Date,
		&b.TripEndDate, &b.Passengers, &b.CarType, &b.Phone, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all bookings, newest first.
func (s *BookingStore) List() ([]models.Booking, error) {
	rows, err := s.db.Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var items []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a booking. Returns nil if not found.
func (s *BookingStore) FindByID(id uuid.UUID) (*models.Booking, error) {
	b, err := scanBooking(s.db.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find booking by id: %w", err)
	}
	return b, nil
}

// Create inserts a booking submitted through the public form.
func (s *BookingStore) Create(b *models.Booking) (*models.Booking, error) {
	result, err := scanBooking(s.db.QueryRow(`
		INSERT INTO bookings (trip_type, from_place, to_place, travel_date,
		                      trip_end_date, passengers, car_type, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+bookingColumns,
		b.TripType, b.From, b.To, b.Date,
		b.TripEndDate, b.Passengers, b.CarType, b.Phone))
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return result, nil
}

// Update replaces a booking's fields. Admin-only; public users never
// modify a submitted booking.
func (s *BookingStore) Update(b *models.Booking) error {
	_, err := s.db.Exec(`
		UPDATE bookings SET trip_type = $1, from_place = $2, to_place = $3,
		       travel_date = $4, trip_end_date = $5, passengers = $6,
		       car_type = $7, phone = $8
		WHERE id = $9`,
		b.TripType, b.From, b.To, b.Date, b.TripEndDate,
		b.Passengers, b.CarType, b.Phone, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

// Delete removes a booking by ID.
func (s *BookingStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}
