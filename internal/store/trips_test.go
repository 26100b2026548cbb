package store

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"aerobook/internal/domain"
	"aerobook/internal/domain/models"
)

func newTestStore(t *testing.T) *TripStore {
	t.Helper()
	s, err := NewTripStore(SeedTrips(time.Now(), nil))
	if err != nil {
		t.Fatalf("NewTripStore error: %v", err)
	}
	return s
}

func TestSeedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, trip := range SeedTrips(time.Now(), rng) {
		if len(trip.Seats) != trip.TotalSeats {
			t.Fatalf("%s: %d seats, totalSeats=%d", trip.ID, len(trip.Seats), trip.TotalSeats)
		}
		seen := map[string]bool{}
		for _, seat := range trip.Seats {
			if seen[seat.ID] {
				t.Fatalf("%s: duplicate seat id %s", trip.ID, seat.ID)
			}
			seen[seat.ID] = true
		}
		if !trip.ArrivalTime.After(trip.DepartureTime) {
			t.Fatalf("%s: arrival not after departure", trip.ID)
		}
	}
}

func TestNewTripStoreRejectsBadSeed(t *testing.T) {
	now := time.Now()
	bad := []models.Trip{{
		ID:            "TRIPX",
		DepartureTime: now,
		ArrivalTime:   now.Add(time.Hour),
		TotalSeats:    2,
		Seats:         []models.Seat{{ID: "S1"}}, // count mismatch
	}}
	if _, err := NewTripStore(bad); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	dup := SeedTrips(now, nil)
	dup = append(dup, dup[0])
	if _, err := NewTripStore(dup); !domain.IsValidation(err) {
		t.Fatalf("expected duplicate-id validation error, got %v", err)
	}
}

func TestBookSeatsHappyPath(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	b, err := s.BookSeats("TRIP001", []string{"S1", "S2"}, "Customer User")
	if err != nil {
		t.Fatalf("BookSeats error: %v", err)
	}
	if len(b.SeatIDs) != 2 {
		t.Fatalf("booking covers %d seats, want 2", len(b.SeatIDs))
	}
	if b.TotalPrice != 2*75.50 {
		t.Fatalf("total price %v, want %v", b.TotalPrice, 2*75.50)
	}
	if !b.BookedAt.Equal(fixed) {
		t.Fatalf("booked at %v, want %v", b.BookedAt, fixed)
	}

	trip, err := s.GetTrip("TRIP001")
	if err != nil {
		t.Fatalf("GetTrip error: %v", err)
	}
	if got := trip.AvailableSeats(); got != 38 {
		t.Fatalf("available seats %d, want 38", got)
	}
	if got := trip.Revenue(); got != 2*75.50 {
		t.Fatalf("revenue %v, want %v", got, 2*75.50)
	}
	for _, seat := range trip.Seats {
		booked := seat.ID == "S1" || seat.ID == "S2"
		if booked && (seat.Status != models.SeatBooked || seat.Version != 1) {
			t.Fatalf("seat %s not transitioned: %+v", seat.ID, seat)
		}
		if !booked && (seat.Status != models.SeatAvailable || seat.Version != 0) {
			t.Fatalf("seat %s changed unexpectedly: %+v", seat.ID, seat)
		}
	}
}

func TestBookSeatsRejectsAlreadyBooked(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.BookSeats("TRIP001", []string{"S1"}, ""); err != nil {
		t.Fatalf("first booking error: %v", err)
	}

	// Second identical request must fail without touching state or ledger.
	if _, err := s.BookSeats("TRIP001", []string{"S1"}, ""); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	trip, _ := s.GetTrip("TRIP001")
	if got := trip.AvailableSeats(); got != 39 {
		t.Fatalf("available seats %d, want 39", got)
	}
	if got := len(s.ListBookings()); got != 1 {
		t.Fatalf("ledger has %d records, want 1", got)
	}
}

func TestBookSeatsAllOrNothing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.BookSeats("TRIP001", []string{"S3"}, ""); err != nil {
		t.Fatalf("setup booking error: %v", err)
	}

	// S4 is free but S3 is taken: neither may change.
	if _, err := s.BookSeats("TRIP001", []string{"S4", "S3"}, ""); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	trip, _ := s.GetTrip("TRIP001")
	for _, seat := range trip.Seats {
		if seat.ID == "S4" && seat.Status != models.SeatAvailable {
			t.Fatalf("S4 was booked despite failed batch")
		}
	}
}

func TestBookSeatsUnknownTripAndSeat(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.BookSeats("TRIP999", []string{"S1"}, ""); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found for trip, got %v", err)
	}
	if _, err := s.BookSeats("TRIP001", []string{"S99"}, ""); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found for seat, got %v", err)
	}
	if _, err := s.BookSeats("TRIP001", nil, ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty set, got %v", err)
	}
}

func TestBookSeatsCollapsesDuplicates(t *testing.T) {
	s := newTestStore(t)

	b, err := s.BookSeats("TRIP004", []string{"S7", "S7", "S8"}, "")
	if err != nil {
		t.Fatalf("BookSeats error: %v", err)
	}
	if len(b.SeatIDs) != 2 {
		t.Fatalf("booking covers %d seats, want 2", len(b.SeatIDs))
	}
	if b.TotalPrice != 2*45.00 {
		t.Fatalf("total price %v, want %v", b.TotalPrice, 2*45.00)
	}
}

func TestSnapshotDoesNotAliasStoreState(t *testing.T) {
	s := newTestStore(t)

	snap := s.ListTrips()
	snap[0].Seats[0].Status = models.SeatBooked

	trip, _ := s.GetTrip(snap[0].ID)
	if trip.Seats[0].Status != models.SeatAvailable {
		t.Fatalf("mutating a snapshot leaked into the store")
	}
}

func TestGetBooking(t *testing.T) {
	s := newTestStore(t)

	b, err := s.BookSeats("TRIP002", []string{"S10"}, "Customer User")
	if err != nil {
		t.Fatalf("BookSeats error: %v", err)
	}

	got, err := s.GetBooking(b.ID)
	if err != nil {
		t.Fatalf("GetBooking error: %v", err)
	}
	if got.TripID != "TRIP002" || got.TotalPrice != 90.00 {
		t.Fatalf("unexpected booking %+v", got)
	}

	if _, err := s.GetBooking("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

// Two writers racing for the same seat: exactly one wins, the inventory moves
// by one seat, and the ledger records a single booking.
func TestConcurrentBookingSameSeat(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.BookSeats("TRIP003", []string{"S5"}, "")
		}(i)
	}
	wg.Wait()

	var conflicts, successes int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case domain.IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("got %d successes and %d conflicts, want 1 and 1", successes, conflicts)
	}

	trip, _ := s.GetTrip("TRIP003")
	if got := trip.BookedSeats(); got != 1 {
		t.Fatalf("booked seats %d, want 1", got)
	}
	if got := len(s.ListBookings()); got != 1 {
		t.Fatalf("ledger has %d records, want 1", got)
	}
}
