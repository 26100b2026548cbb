package handlers

import (
	"aerobook/internal/gemini"
	"aerobook/internal/services"
	"aerobook/internal/store"
)

// Handler bundles the stores behind the HTTP surface. Per-request services
// are built on the fly so they carry the request id into their logs.
type Handler struct {
	Sessions    *store.SessionStore
	Trips       *store.TripStore
	TokenSecret []byte

	GeminiAPIKey string
	GeminiModel  string
}

func New(sessions *store.SessionStore, trips *store.TripStore, tokenSecret []byte, geminiAPIKey, geminiModel string) *Handler {
	return &Handler{
		Sessions:     sessions,
		Trips:        trips,
		TokenSecret:  tokenSecret,
		GeminiAPIKey: geminiAPIKey,
		GeminiModel:  geminiModel,
	}
}

func (h *Handler) bookingService(requestID string) services.BookingService {
	return services.BookingService{Trips: h.Trips, Sessions: h.Sessions, RequestID: requestID}
}

func (h *Handler) reportsService() services.ReportsService {
	return services.ReportsService{Trips: h.Trips}
}

func (h *Handler) docsService(requestID string) services.DocsService {
	return services.DocsService{Trips: h.Trips, RequestID: requestID}
}

func (h *Handler) optimizerService(requestID string) services.RouteOptimizer {
	return services.RouteOptimizer{
		APIKey:    h.GeminiAPIKey,
		Generate:  gemini.Client{APIKey: h.GeminiAPIKey, Model: h.GeminiModel}.Generate,
		RequestID: requestID,
	}
}
