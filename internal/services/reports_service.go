package services

import (
	"math"
	"time"

	"aerobook/internal/store"
	"aerobook/internal/utils"
)

// ReportsService computes the dashboard projections. Everything is derived
// fresh from the current snapshot on each call; nothing is cached.
type ReportsService struct {
	Trips *store.TripStore
}

// FleetSummary backs the admin stat cards.
type FleetSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalBookings    int     `json:"totalBookings"`
	ActiveTrips      int     `json:"activeTrips"`
	OverallOccupancy float64 `json:"overallOccupancy"`
}

// TripMetrics is one row of the operator's current-routes table.
type TripMetrics struct {
	TripID         string    `json:"tripId"`
	Route          string    `json:"route"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	BookedSeats    int       `json:"bookedSeats"`
	Occupancy      float64   `json:"occupancy"`
	Revenue        float64   `json:"revenue"`
}

// OccupancyPoint is one bar of the admin occupancy chart.
type OccupancyPoint struct {
	Name      string  `json:"name"`
	Occupancy float64 `json:"occupancy"`
}

// RevenuePoint is one day of the revenue series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

func (s ReportsService) Summary() FleetSummary {
	trips := s.Trips.ListTrips()

	var out FleetSummary
	var totalSeats int
	for _, t := range trips {
		booked := t.BookedSeats()
		out.TotalBookings += booked
		out.TotalRevenue += float64(booked) * t.Price
		totalSeats += t.TotalSeats
	}
	out.ActiveTrips = len(trips)
	if totalSeats > 0 {
		out.OverallOccupancy = float64(out.TotalBookings) / float64(totalSeats) * 100
	}
	return out
}

func (s ReportsService) TripMetrics() []TripMetrics {
	trips := s.Trips.ListTrips()

	out := make([]TripMetrics, 0, len(trips))
	for _, t := range trips {
		out = append(out, TripMetrics{
			TripID:         t.ID,
			Route:          t.Origin + " to " + t.Destination,
			DepartureTime:  t.DepartureTime,
			ArrivalTime:    t.ArrivalTime,
			Price:          t.Price,
			AvailableSeats: t.AvailableSeats(),
			BookedSeats:    t.BookedSeats(),
			Occupancy:      t.Occupancy(),
			Revenue:        t.Revenue(),
		})
	}
	return out
}

// OccupancyByRoute labels each trip by its city pair ("New York-Boston") and
// rounds occupancy to two decimals for charting.
func (s ReportsService) OccupancyByRoute() []OccupancyPoint {
	trips := s.Trips.ListTrips()

	out := make([]OccupancyPoint, 0, len(trips))
	for _, t := range trips {
		out = append(out, OccupancyPoint{
			Name:      utils.CityLabel(t.Origin) + "-" + utils.CityLabel(t.Destination),
			Occupancy: math.Round(t.Occupancy()*100) / 100,
		})
	}
	return out
}

// RevenueByDay buckets ledger revenue by calendar day for the trailing
// window ending at now, oldest day first. Days without bookings report zero.
func (s ReportsService) RevenueByDay(now time.Time, days int) []RevenuePoint {
	if days <= 0 {
		days = 7
	}

	totals := make(map[string]float64)
	for _, b := range s.Trips.ListBookings() {
		totals[b.BookedAt.Format("2006-01-02")] += b.TotalPrice
	}

	out := make([]RevenuePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		out = append(out, RevenuePoint{
			Date:    day.Format("Jan 2"),
			Revenue: totals[day.Format("2006-01-02")],
		})
	}
	return out
}
