package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type loginRequest struct {
	Role string `json:"role"`
}

// Login selects a role and makes it the active session. This is identity
// selection, not authentication: there is no credential to check.
//
// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Sessions.Login(req.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": user.Name,
		"role": string(user.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString(h.TokenSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to sign session token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": signed,
	})
}

// Logout clears the active session; calling it logged-out is fine.
//
// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.Sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reports the active session user, or null when nobody is logged in.
//
// GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	user, ok := h.Sessions.CurrentUser()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
