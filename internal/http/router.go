package api

import (
	"log"
	stdhttp "net/http"

	intconfig "aerobook/internal/config"
	h "aerobook/internal/http/handlers"
	"aerobook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, handler *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.SessionClaims([]byte(env.TokenSecret)),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Auth / session
		auth := api.Group("/auth")
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", handler.Me)

		// Trips & seat booking
		trips := api.Group("/trips")
		trips.GET("", handler.ListTrips)
		trips.GET("/:id", handler.GetTrip)
		trips.GET("/:id/seats", handler.GetTripSeats)
		trips.POST("/:id/book", handler.BookSeats)

		// Booking ledger
		bookings := api.Group("/bookings")
		bookings.GET("", handler.ListBookings)
		bookings.GET("/:id", handler.GetBooking)
		bookings.GET("/:id/ticket", handler.GetBookingTicket)

		// Reports
		reports := api.Group("/reports")
		reports.GET("/summary", handler.GetReportSummary)
		reports.GET("/trips", handler.GetTripMetrics)
		reports.GET("/occupancy", handler.GetOccupancyReport)
		reports.GET("/revenue", handler.GetRevenueReport)

		// AI route optimization
		api.GET("/optimizations", handler.GetRouteOptimizations)
	}

	h.SetRouter(r)

	return r
}
