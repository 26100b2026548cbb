package services

import (
	"testing"
	"time"

	"aerobook/internal/store"
)

func newReportsFixture(t *testing.T) (ReportsService, *store.TripStore) {
	t.Helper()
	trips, err := store.NewTripStore(store.SeedTrips(time.Now(), nil))
	if err != nil {
		t.Fatalf("NewTripStore error: %v", err)
	}
	return ReportsService{Trips: trips}, trips
}

func TestSummaryRecomputesFromSnapshot(t *testing.T) {
	svc, trips := newReportsFixture(t)

	empty := svc.Summary()
	if empty.TotalBookings != 0 || empty.TotalRevenue != 0 || empty.OverallOccupancy != 0 {
		t.Fatalf("empty summary not zero: %+v", empty)
	}
	if empty.ActiveTrips != 4 {
		t.Fatalf("active trips %d, want 4", empty.ActiveTrips)
	}

	if _, err := trips.BookSeats("TRIP001", []string{"S1", "S2"}, ""); err != nil {
		t.Fatalf("booking error: %v", err)
	}

	got := svc.Summary()
	if got.TotalBookings != 2 {
		t.Fatalf("total bookings %d, want 2", got.TotalBookings)
	}
	if got.TotalRevenue != 2*75.50 {
		t.Fatalf("total revenue %v, want %v", got.TotalRevenue, 2*75.50)
	}
	want := float64(2) / float64(160) * 100
	if got.OverallOccupancy != want {
		t.Fatalf("occupancy %v, want %v", got.OverallOccupancy, want)
	}
}

func TestTripMetricsRow(t *testing.T) {
	svc, trips := newReportsFixture(t)

	if _, err := trips.BookSeats("TRIP002", []string{"S1", "S2", "S3", "S4"}, ""); err != nil {
		t.Fatalf("booking error: %v", err)
	}

	rows := svc.TripMetrics()
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	row := rows[1]
	if row.TripID != "TRIP002" || row.Route != "Los Angeles, CA to San Francisco, CA" {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.BookedSeats != 4 || row.AvailableSeats != 36 {
		t.Fatalf("seat counts wrong: %+v", row)
	}
	if row.Occupancy != 10 {
		t.Fatalf("occupancy %v, want 10", row.Occupancy)
	}
	if row.Revenue != 4*90.00 {
		t.Fatalf("revenue %v, want %v", row.Revenue, 4*90.00)
	}
}

func TestOccupancyByRouteLabels(t *testing.T) {
	svc, _ := newReportsFixture(t)

	points := svc.OccupancyByRoute()
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}
	if points[0].Name != "New York-Boston" {
		t.Fatalf("label %q, want New York-Boston", points[0].Name)
	}
	if points[2].Name != "Chicago-Denver" {
		t.Fatalf("label %q, want Chicago-Denver", points[2].Name)
	}
}

func TestRevenueByDayBuckets(t *testing.T) {
	svc, _ := newReportsFixture(t)

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	points := svc.RevenueByDay(now, 7)
	if len(points) != 7 {
		t.Fatalf("got %d points, want 7", len(points))
	}
	if points[0].Date != "Aug 23" || points[6].Date != "Aug 29" {
		t.Fatalf("window wrong: first=%s last=%s", points[0].Date, points[6].Date)
	}
	for _, p := range points {
		if p.Revenue != 0 {
			t.Fatalf("expected zero revenue before bookings, got %+v", p)
		}
	}
}

func TestRevenueByDayIncludesLedger(t *testing.T) {
	trips, err := store.NewTripStore(store.SeedTrips(time.Now(), nil))
	if err != nil {
		t.Fatalf("NewTripStore error: %v", err)
	}
	svc := ReportsService{Trips: trips}

	if _, err := trips.BookSeats("TRIP001", []string{"S1"}, ""); err != nil {
		t.Fatalf("booking error: %v", err)
	}

	points := svc.RevenueByDay(time.Now(), 7)
	last := points[len(points)-1]
	if last.Revenue != 75.50 {
		t.Fatalf("today's revenue %v, want 75.50", last.Revenue)
	}
}
