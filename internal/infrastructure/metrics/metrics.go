package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GatewayMetrics covers the order lifecycle, payment settlement, sessions and
// backend calls.
type GatewayMetrics struct {
	OrdersAdvancedTotal       prometheus.CounterVec
	TransitionsRejectedTotal  prometheus.CounterVec
	PaymentsSettledTotal      prometheus.CounterVec
	SettlementFailuresTotal   prometheus.CounterVec
	SessionsOpenedTotal       prometheus.Counter
	SessionsExpiredTotal      prometheus.Counter
	BackendErrorsTotal        prometheus.CounterVec
	BackendRequestDuration    prometheus.HistogramVec
	NotificationPollsTotal    prometheus.CounterVec
}

func NewGatewayMetrics() *GatewayMetrics {
	return &GatewayMetrics{
		OrdersAdvancedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_orders_advanced_total",
				Help: "Confirmed order status transitions",
			},
			[]string{"from", "to", "role"},
		),

		TransitionsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_transitions_rejected_total",
				Help: "Status transitions rejected before reaching the backend",
			},
			[]string{"reason"},
		),

		PaymentsSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_payments_settled_total",
				Help: "Payment records marked Paid by shipper settlement",
			},
			[]string{"result"},
		),

		SettlementFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_settlement_failures_total",
				Help: "Settlement batches that ended with at least one failed update",
			},
			[]string{"order_status"},
		),

		SessionsOpenedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "gateway_sessions_opened_total",
				Help: "Sessions opened through login",
			},
		),

		SessionsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "gateway_sessions_expired_total",
				Help: "Sessions ended by the idle guard",
			},
		),

		BackendErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_backend_errors_total",
				Help: "Backend API failures by error class",
			},
			[]string{"class"},
		),

		BackendRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_backend_request_duration_seconds",
				Help:    "Backend API request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		NotificationPollsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_notification_polls_total",
				Help: "Notification poll cycles",
			},
			[]string{"result"},
		),
	}
}
