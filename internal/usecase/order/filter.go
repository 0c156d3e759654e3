package usecase

import (
	"strconv"
	"strings"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

// statusBuckets maps the named filter buckets the UIs use onto enum values.
// Filtering goes through the enum, never a raw string compare, so backend
// casing drift cannot change which bucket an order lands in.
var statusBuckets = map[string][]domain.OrderStatus{
	"all":        nil,
	"pending":    {domain.StatusPending},
	"processing": {domain.StatusProcessing},
	"shipped":    {domain.StatusShipped},
	"completed":  {domain.StatusCompleted},
	"cancelled":  {domain.StatusCancelled},
}

// FilterOrders is pure and synchronous: a named status bucket plus a free
// text search over order ID, product names and enterprise names. An unknown
// bucket matches nothing.
func FilterOrders(orders []*domain.Order, statusFilter, searchText string) []*domain.Order {
	bucket, known := statusBuckets[strings.ToLower(strings.TrimSpace(statusFilter))]
	if !known {
		return []*domain.Order{}
	}

	search := strings.ToLower(strings.TrimSpace(searchText))

	filtered := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if !inBucket(order.Status, bucket) {
			continue
		}
		if search != "" && !matchesSearch(order, search) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}

func inBucket(status domain.OrderStatus, bucket []domain.OrderStatus) bool {
	if bucket == nil {
		return true
	}
	for _, s := range bucket {
		if s == status {
			return true
		}
	}
	return false
}

func matchesSearch(order *domain.Order, search string) bool {
	if strings.Contains(strconv.FormatInt(order.ID, 10), search) {
		return true
	}
	for _, item := range order.Items {
		if strings.Contains(strings.ToLower(item.ProductName), search) {
			return true
		}
		if strings.Contains(strings.ToLower(item.EnterpriseName), search) {
			return true
		}
	}
	return false
}
