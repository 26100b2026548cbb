package services

import (
	"fmt"
	"strings"

	"aerobook/internal/domain"
	"aerobook/internal/domain/models"
	"aerobook/internal/store"
	"aerobook/internal/utils"
)

// BookingService validates booking intents at the API boundary and delegates
// the actual seat transitions to the trip store.
type BookingService struct {
	Trips     *store.TripStore
	Sessions  *store.SessionStore
	RequestID string
}

// ListTrips returns the current snapshot, optionally filtered by a
// case-insensitive substring match on origin or destination.
func (s BookingService) ListTrips(query string) []models.Trip {
	trips := s.Trips.ListTrips()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return trips
	}

	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if strings.Contains(strings.ToLower(t.Origin), query) ||
			strings.Contains(strings.ToLower(t.Destination), query) {
			out = append(out, t)
		}
	}
	return out
}

func (s BookingService) GetTrip(tripID string) (models.Trip, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return models.Trip{}, domain.ValidationError{Field: "tripId", Msg: "empty"}
	}
	return s.Trips.GetTrip(tripID)
}

// Book reserves the requested seats for the active session user. Seat ids
// are normalized (trimmed, uppercased, de-duplicated) before the store sees
// them; the store enforces the all-or-nothing transition.
func (s BookingService) Book(tripID string, seatIDs []string) (models.Booking, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return models.Booking{}, domain.ValidationError{Field: "tripId", Msg: "empty"}
	}

	ids := utils.NormalizeSeatIDs(seatIDs)
	if len(ids) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "seatIds", Msg: "at least one seat is required"}
	}

	var userName string
	if u, ok := s.Sessions.CurrentUser(); ok {
		userName = u.Name
	}

	b, err := s.Trips.BookSeats(tripID, ids, userName)
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "book_seats",
		fmt.Sprintf("trip=%s seats=%d total=%s", b.TripID, len(b.SeatIDs), utils.FormatMoney(b.TotalPrice)))
	return b, nil
}

func (s BookingService) ListBookings() []models.Booking {
	return s.Trips.ListBookings()
}

func (s BookingService) GetBooking(bookingID string) (models.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return models.Booking{}, domain.ValidationError{Field: "bookingId", Msg: "empty"}
	}
	return s.Trips.GetBooking(bookingID)
}
