package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ocopmarket/order-gateway/internal/delivery/http/dto"
	"github.com/ocopmarket/order-gateway/internal/domain"
	orderusecase "github.com/ocopmarket/order-gateway/internal/usecase/order"
)

type OrderHandler struct {
	orders domain.OrderUsecase
}

func NewOrderHandler(orders domain.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List returns the orders visible to the caller's role, optionally narrowed
// by a status bucket and a free-text search over id, product and enterprise.
func (h *OrderHandler) List(c *gin.Context) {
	sess := sessionFromContext(c)

	orders, err := h.orders.ListOrdersForRole(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	statusFilter := c.DefaultQuery("status", "all")
	search := c.Query("search")
	filtered := orderusecase.FilterOrders(orders, statusFilter, search)

	c.JSON(http.StatusOK, gin.H{"orders": dto.FromDomainOrders(filtered)})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	sess := sessionFromContext(c)

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	target, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.orders.AdvanceStatus(c.Request.Context(), sess, orderID, target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": dto.FromDomainOrder(order)})
}

func (h *OrderHandler) SettlePayments(c *gin.Context) {
	sess := sessionFromContext(c)

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	results, err := h.orders.SettlePayments(c.Request.Context(), sess, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": dto.FromDomainSettlements(results)})
}

func (h *OrderHandler) Payments(c *gin.Context) {
	sess := sessionFromContext(c)

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	payments, err := h.orders.GetOrderPayments(c.Request.Context(), sess, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	// settled tells the UI the seller has been fully paid, so it can hide
	// the transfer action instead of offering a no-op settlement.
	c.JSON(http.StatusOK, gin.H{
		"payments": dto.FromDomainPayments(payments),
		"settled":  domain.Settled(payments),
	})
}
