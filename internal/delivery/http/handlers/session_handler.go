package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ocopmarket/order-gateway/internal/delivery/http/dto"
	"github.com/ocopmarket/order-gateway/internal/domain"
)

type SessionHandler struct {
	sessions domain.SessionUsecase
}

func NewSessionHandler(sessions domain.SessionUsecase) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, sess, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.User{
			ID:           sess.UserID,
			Role:         string(sess.Role),
			EnterpriseID: sess.EnterpriseID,
			ShipperID:    sess.ShipperID,
		},
	})
}

// Recheck is called when a client tab regains visibility. It deliberately
// bypasses the auth middleware: rechecking must not count as activity, so
// the bearer token is read here without touching the idle clock.
func (h *SessionHandler) Recheck(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "missing bearer token",
			"redirect": "/login",
		})
		return
	}

	if err := h.sessions.Recheck(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": true})
}

func (h *SessionHandler) Logout(c *gin.Context) {
	sess := sessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}

	if err := h.sessions.Logout(c.Request.Context(), sess.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
