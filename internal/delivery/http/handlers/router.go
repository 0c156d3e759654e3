package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter assembles the gateway's HTTP surface: public auth and health
// endpoints, and session-guarded order and notification endpoints.
func NewRouter(
	sessions domain.SessionUsecase,
	orders domain.OrderUsecase,
	notifications domain.NotificationUsecase,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))

	sessionHandler := NewSessionHandler(sessions)
	orderHandler := NewOrderHandler(orders)
	notificationHandler := NewNotificationHandler(notifications)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.POST("/auth/login", sessionHandler.Login)
	// Outside the auth group: a recheck must never register as activity.
	api.POST("/auth/recheck", sessionHandler.Recheck)

	protected := api.Group("")
	protected.Use(Auth(sessions))
	{
		protected.POST("/auth/logout", sessionHandler.Logout)

		protected.GET("/orders", orderHandler.List)
		protected.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		protected.GET("/orders/:id/payments", orderHandler.Payments)
		protected.POST("/orders/:id/settle-payments", orderHandler.SettlePayments)

		protected.GET("/notifications", notificationHandler.List)
		protected.POST("/notifications/:id/read", notificationHandler.MarkRead)
		protected.POST("/notifications/read-all", notificationHandler.MarkAllRead)
		protected.DELETE("/notifications/:id", notificationHandler.Delete)
	}

	return r
}
