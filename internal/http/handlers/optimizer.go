package handlers

import (
	"net/http"

	"aerobook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GetRouteOptimizations asks the model for schedule suggestions. The
// response always succeeds: with no credential, or on any upstream failure,
// it carries the canned fallback payload and source=fallback.
//
// GET /api/optimizations
func (h *Handler) GetRouteOptimizations(c *gin.Context) {
	svc := h.optimizerService(middleware.GetRequestID(c))
	c.JSON(http.StatusOK, svc.Optimize(c.Request.Context()))
}
