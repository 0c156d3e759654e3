package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ocopmarket/order-gateway/internal/delivery/http/dto"
	"github.com/ocopmarket/order-gateway/internal/domain"
)

type NotificationHandler struct {
	notifications domain.NotificationUsecase
}

func NewNotificationHandler(notifications domain.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	sess := sessionFromContext(c)
	unreadOnly := c.Query("unreadOnly") == "true"

	list, err := h.notifications.List(c.Request.Context(), sess, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": dto.FromDomainNotifications(list)})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	sess := sessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), sess, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	sess := sessionFromContext(c)

	if err := h.notifications.MarkAllRead(c.Request.Context(), sess); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all marked as read"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	sess := sessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.notifications.Delete(c.Request.Context(), sess, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
