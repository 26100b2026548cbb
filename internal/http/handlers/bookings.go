package handlers

import (
	"net/http"

	"aerobook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	svc := h.bookingService(middleware.GetRequestID(c))
	c.JSON(http.StatusOK, svc.ListBookings())
}

// GET /api/bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	svc := h.bookingService(middleware.GetRequestID(c))
	booking, err := svc.GetBooking(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/bookings/:id/ticket
func (h *Handler) GetBookingTicket(c *gin.Context) {
	svc := h.docsService(middleware.GetRequestID(c))
	pdf, filename, err := svc.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
