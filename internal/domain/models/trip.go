package models

import "time"

// SeatStatus is the persisted seat state. "selected" exists only in the
// frontend while a customer is picking seats and is never stored here.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

// Seat is one bookable unit of capacity on a trip. Version increments on
// every status transition so concurrent writers can be detected.
type Seat struct {
	ID      string     `json:"id"`
	Status  SeatStatus `json:"status"`
	Version int64      `json:"version"`
}

// Trip is a scheduled origin->destination run with a fixed seat inventory.
type Trip struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Price         float64   `json:"price"`
	TotalSeats    int       `json:"totalSeats"`
	Seats         []Seat    `json:"seats"`
}

// Clone returns a deep copy so snapshots cannot alias store state.
func (t Trip) Clone() Trip {
	out := t
	out.Seats = make([]Seat, len(t.Seats))
	copy(out.Seats, t.Seats)
	return out
}

// BookedSeats counts seats currently booked.
func (t Trip) BookedSeats() int {
	n := 0
	for _, s := range t.Seats {
		if s.Status == SeatBooked {
			n++
		}
	}
	return n
}

// AvailableSeats counts seats still open for booking.
func (t Trip) AvailableSeats() int {
	n := 0
	for _, s := range t.Seats {
		if s.Status == SeatAvailable {
			n++
		}
	}
	return n
}

// Occupancy returns booked/total as a percentage.
func (t Trip) Occupancy() float64 {
	if t.TotalSeats == 0 {
		return 0
	}
	return float64(t.BookedSeats()) / float64(t.TotalSeats) * 100
}

// Revenue returns the amount earned from booked seats at the per-seat price.
func (t Trip) Revenue() float64 {
	return float64(t.BookedSeats()) * t.Price
}
