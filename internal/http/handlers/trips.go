package handlers

import (
	"net/http"

	"aerobook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/trips?q=city
func (h *Handler) ListTrips(c *gin.Context) {
	svc := h.bookingService(middleware.GetRequestID(c))
	c.JSON(http.StatusOK, svc.ListTrips(c.Query("q")))
}

// GET /api/trips/:id
func (h *Handler) GetTrip(c *gin.Context) {
	svc := h.bookingService(middleware.GetRequestID(c))
	trip, err := svc.GetTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/trips/:id/seats
func (h *Handler) GetTripSeats(c *gin.Context) {
	svc := h.bookingService(middleware.GetRequestID(c))
	trip, err := svc.GetTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tripId":         trip.ID,
		"seats":          trip.Seats,
		"availableSeats": trip.AvailableSeats(),
		"totalSeats":     trip.TotalSeats,
	})
}

type bookSeatsRequest struct {
	SeatIDs []string `json:"seatIds"`
}

// BookSeats reserves seats all-or-nothing. Conflicting or unknown seats
// reject the whole batch; nothing is booked silently.
//
// POST /api/trips/:id/book
func (h *Handler) BookSeats(c *gin.Context) {
	var req bookSeatsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := h.bookingService(middleware.GetRequestID(c))
	booking, err := svc.Book(c.Param("id"), req.SeatIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}
