package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/summary
func (h *Handler) GetReportSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportsService().Summary())
}

// GET /api/reports/trips
func (h *Handler) GetTripMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportsService().TripMetrics())
}

// GET /api/reports/occupancy
func (h *Handler) GetOccupancyReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportsService().OccupancyByRoute())
}

// GET /api/reports/revenue?days=7
func (h *Handler) GetRevenueReport(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 90 {
			respondError(c, http.StatusBadRequest, "validation_error", "days must be between 1 and 90")
			return
		}
		days = n
	}
	c.JSON(http.StatusOK, h.reportsService().RevenueByDay(time.Now(), days))
}
