package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"aerobook/internal/store"
	"aerobook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a PDF e-ticket per booking.
type DocsService struct {
	Trips     *store.TripStore
	RequestID string
	Loader    func(bookingID string) (ticketData, error)
}

type ticketData struct {
	BookingID    string
	TripID       string
	Origin       string
	Destination  string
	SeatIDs      []string
	UserName     string
	Departure    time.Time
	Arrival      time.Time
	PricePerSeat float64
	TotalPrice   float64
	BookedAt     time.Time
}

// GenerateETicket returns the PDF bytes and a download filename for the
// booking.
func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%s", bookingID))
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketData(bookingID string) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	var out ticketData
	b, err := s.Trips.GetBooking(bookingID)
	if err != nil {
		return out, err
	}
	t, err := s.Trips.GetTrip(b.TripID)
	if err != nil {
		return out, err
	}

	out.BookingID = b.ID
	out.TripID = t.ID
	out.Origin = t.Origin
	out.Destination = t.Destination
	out.SeatIDs = b.SeatIDs
	out.UserName = b.UserName
	out.Departure = t.DepartureTime
	out.Arrival = t.ArrivalTime
	out.PricePerSeat = t.Price
	out.TotalPrice = b.TotalPrice
	out.BookedAt = b.BookedAt
	return out, nil
}

func buildETicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "AEROBOOK E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", safe(d.UserName, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(d.Origin, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Departure      : %s", d.Departure.Format("2006-01-02 15:04")),
		fmt.Sprintf("Arrival        : %s", d.Arrival.Format("2006-01-02 15:04")),
		fmt.Sprintf("Seats          : %s", safe(strings.Join(d.SeatIDs, ", "), "-")),
		fmt.Sprintf("Price per seat : %s", utils.FormatMoney(d.PricePerSeat)),
		fmt.Sprintf("Total paid     : %s", utils.FormatMoney(d.TotalPrice)),
		fmt.Sprintf("Booked at      : %s", d.BookedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Trip           : %s", safe(d.TripID, "-")),
		fmt.Sprintf("Booking code   : %s", safe(d.BookingID, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this e-ticket covers every seat listed above. Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", safeFilenamePart(d.TripID), safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "x"
	}
	return out
}
