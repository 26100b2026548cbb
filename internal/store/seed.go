package store

import (
	"fmt"
	"math/rand"
	"time"

	"aerobook/internal/domain/models"
)

const seatsPerTrip = 40

// SeedTrips builds the demo dataset: four fixed routes departing relative to
// now, each with seats S1..S40. With a nil rng every seat starts available;
// otherwise roughly 30% are pre-booked to make the dashboards look lived-in.
func SeedTrips(now time.Time, rng *rand.Rand) []models.Trip {
	return []models.Trip{
		{
			ID:            "TRIP001",
			Origin:        "New York, NY",
			Destination:   "Boston, MA",
			DepartureTime: now.Add(2 * time.Hour),
			ArrivalTime:   now.Add(6 * time.Hour),
			Price:         75.50,
			TotalSeats:    seatsPerTrip,
			Seats:         makeSeats(seatsPerTrip, rng),
		},
		{
			ID:            "TRIP002",
			Origin:        "Los Angeles, CA",
			Destination:   "San Francisco, CA",
			DepartureTime: now.Add(4 * time.Hour),
			ArrivalTime:   now.Add(10 * time.Hour),
			Price:         90.00,
			TotalSeats:    seatsPerTrip,
			Seats:         makeSeats(seatsPerTrip, rng),
		},
		{
			ID:            "TRIP003",
			Origin:        "Chicago, IL",
			Destination:   "Denver, CO",
			DepartureTime: now.Add(24 * time.Hour),
			ArrivalTime:   now.Add(36 * time.Hour),
			Price:         150.25,
			TotalSeats:    seatsPerTrip,
			Seats:         makeSeats(seatsPerTrip, rng),
		},
		{
			ID:            "TRIP004",
			Origin:        "Miami, FL",
			Destination:   "Orlando, FL",
			DepartureTime: now.Add(26 * time.Hour),
			ArrivalTime:   now.Add(30 * time.Hour),
			Price:         45.00,
			TotalSeats:    seatsPerTrip,
			Seats:         makeSeats(seatsPerTrip, rng),
		},
	}
}

func makeSeats(count int, rng *rand.Rand) []models.Seat {
	seats := make([]models.Seat, count)
	for i := range seats {
		status := models.SeatAvailable
		if rng != nil && rng.Float64() > 0.7 {
			status = models.SeatBooked
		}
		seats[i] = models.Seat{
			ID:     fmt.Sprintf("S%d", i+1),
			Status: status,
		}
	}
	return seats
}
