package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"aerobook/internal/domain"
	"aerobook/internal/domain/models"

	"github.com/google/uuid"
)

// TripStore owns the canonical trip list, the seat inventory and the booking
// ledger. It is the single source of truth every view reads from, and
// BookSeats is the sole write path.
//
// All state lives behind one mutex. Seat transitions are check-and-set under
// that lock, so two writers racing for the same seat cannot both succeed.
type TripStore struct {
	mu       sync.RWMutex
	trips    []*models.Trip
	byID     map[string]*models.Trip
	bookings []models.Booking
	now      func() time.Time
}

// NewTripStore validates the seed set and builds the store. Trips are fixed
// for the process lifetime; nothing creates or deletes them afterwards.
func NewTripStore(trips []models.Trip) (*TripStore, error) {
	s := &TripStore{
		byID: make(map[string]*models.Trip, len(trips)),
		now:  time.Now,
	}

	for _, t := range trips {
		if err := validateTrip(t); err != nil {
			return nil, err
		}
		if _, dup := s.byID[t.ID]; dup {
			return nil, domain.ValidationError{Field: "trip", Msg: fmt.Sprintf("duplicate trip id %s", t.ID)}
		}
		c := t.Clone()
		s.trips = append(s.trips, &c)
		s.byID[c.ID] = &c
	}

	return s, nil
}

func validateTrip(t models.Trip) error {
	if strings.TrimSpace(t.ID) == "" {
		return domain.ValidationError{Field: "trip.id", Msg: "empty"}
	}
	if t.TotalSeats <= 0 {
		return domain.ValidationError{Field: "trip.totalSeats", Msg: fmt.Sprintf("%s: must be positive", t.ID)}
	}
	if len(t.Seats) != t.TotalSeats {
		return domain.ValidationError{Field: "trip.seats", Msg: fmt.Sprintf("%s: %d seats for totalSeats=%d", t.ID, len(t.Seats), t.TotalSeats)}
	}
	if !t.ArrivalTime.After(t.DepartureTime) {
		return domain.ValidationError{Field: "trip.arrivalTime", Msg: fmt.Sprintf("%s: arrival must be after departure", t.ID)}
	}
	if t.Price < 0 {
		return domain.ValidationError{Field: "trip.price", Msg: fmt.Sprintf("%s: negative price", t.ID)}
	}

	seen := make(map[string]bool, len(t.Seats))
	for _, seat := range t.Seats {
		if strings.TrimSpace(seat.ID) == "" {
			return domain.ValidationError{Field: "seat.id", Msg: fmt.Sprintf("%s: empty seat id", t.ID)}
		}
		if seen[seat.ID] {
			return domain.ValidationError{Field: "seat.id", Msg: fmt.Sprintf("%s: duplicate seat id %s", t.ID, seat.ID)}
		}
		seen[seat.ID] = true
	}
	return nil
}

// ListTrips returns a deep-copied snapshot of all trips in seed order.
func (s *TripStore) ListTrips() []models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, t.Clone())
	}
	return out
}

// GetTrip returns a snapshot of one trip.
func (s *TripStore) GetTrip(tripID string) (models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[tripID]
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip " + tripID}
	}
	return t.Clone(), nil
}

// BookSeats transitions every requested seat from available to booked,
// all-or-nothing, and appends a record to the booking ledger.
//
// The whole batch is validated before any seat changes: an unknown trip or
// seat id fails with not-found, and a seat that is already booked fails with
// a conflict naming the seats, leaving the trip untouched. Re-booking a
// booked seat is therefore an error, not a silent no-op.
func (s *TripStore) BookSeats(tripID string, seatIDs []string, userName string) (models.Booking, error) {
	if len(seatIDs) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "seatIds", Msg: "at least one seat is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.byID[tripID]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "trip " + tripID}
	}

	index := make(map[string]int, len(trip.Seats))
	for i, seat := range trip.Seats {
		index[seat.ID] = i
	}

	var missing, taken []string
	requested := make([]int, 0, len(seatIDs))
	seen := make(map[string]bool, len(seatIDs))
	for _, id := range seatIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		i, ok := index[id]
		switch {
		case !ok:
			missing = append(missing, id)
		case trip.Seats[i].Status != models.SeatAvailable:
			taken = append(taken, id)
		default:
			requested = append(requested, i)
		}
	}

	if len(missing) > 0 {
		return models.Booking{}, domain.NotFoundError{
			Resource: fmt.Sprintf("seat %s on trip %s", strings.Join(missing, ", "), tripID),
		}
	}
	if len(taken) > 0 {
		return models.Booking{}, domain.ConflictError{
			Resource: "seat",
			Msg:      "already booked: " + strings.Join(taken, ", "),
		}
	}

	booked := make([]string, 0, len(requested))
	for _, i := range requested {
		trip.Seats[i].Status = models.SeatBooked
		trip.Seats[i].Version++
		booked = append(booked, trip.Seats[i].ID)
	}

	b := models.Booking{
		ID:         uuid.NewString(),
		TripID:     trip.ID,
		SeatIDs:    booked,
		UserName:   userName,
		TotalPrice: float64(len(booked)) * trip.Price,
		BookedAt:   s.now(),
	}
	s.bookings = append(s.bookings, b)

	return cloneBooking(b), nil
}

// ListBookings returns the ledger in booking order.
func (s *TripStore) ListBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, cloneBooking(b))
	}
	return out
}

// GetBooking returns one ledger record by id.
func (s *TripStore) GetBooking(bookingID string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == bookingID {
			return cloneBooking(b), nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking " + bookingID}
}

func cloneBooking(b models.Booking) models.Booking {
	out := b
	out.SeatIDs = make([]string, len(b.SeatIDs))
	copy(out.SeatIDs, b.SeatIDs)
	return out
}
