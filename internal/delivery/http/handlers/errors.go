package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocopmarket/order-gateway/internal/domain"
)

// respondError maps domain errors onto HTTP responses. Auth failures carry a
// redirect hint so browser clients know to send the user back to login.
// Backend 5xx details never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrAuthExpired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "session expired, please log in again",
			"redirect": "/login",
		})
	case errors.Is(err, domain.ErrLoginFailed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrLoginFailed.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to perform this action"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrNothingToSettle),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNetwork):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable, please try again later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
	}
}
