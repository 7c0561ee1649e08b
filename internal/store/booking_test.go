package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

func TestBookingStoreLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewBookingStore(db)

	end := time.Now().Add(72 * time.Hour)
	created, err := s.Create(&models.Booking{
		TripType:    models.TripRoundTrip,
		From:        "Ahmedabad",
		To:          "Vadodara",
		Date:        time.Now().Add(24 * time.Hour),
		TripEndDate: &end,
		Passengers:  3,
		CarType:     "sedan",
		Phone:       "+919900112233",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { s.Delete(created.ID) })

	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.TripEndDate == nil {
		t.Error("expected trip end date for round trip")
	}

	created.Passengers = 4
	created.CarType = "suv"
	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Passengers != 4 || found.CarType != "suv" {
		t.Errorf("update round-trip: got %d passengers, %q car", found.Passengers, found.CarType)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, _ := s.FindByID(created.ID)
	if gone != nil {
		t.Error("expected nil after delete")
	}
}
