package models

import "time"

// Booking is the recorded fact of reserving seats on a trip. Records are
// appended to the in-memory ledger; there is no cancellation in scope, so a
// booking never changes after creation.
type Booking struct {
	ID         string    `json:"id"`
	TripID     string    `json:"tripId"`
	SeatIDs    []string  `json:"seatIds"`
	UserName   string    `json:"userName,omitempty"`
	TotalPrice float64   `json:"totalPrice"`
	BookedAt   time.Time `json:"bookedAt"`
}
