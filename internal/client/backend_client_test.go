package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testMetrics = metrics.NewGatewayMetrics()

func newTestClient(t *testing.T, handler http.Handler) (*BackendClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewBackendClient(config.BackendAPI{
		BaseURL:        srv.URL,
		TimeoutSeconds: 5,
	}, zap.NewNop(), testMetrics)
	return c, srv
}

func TestGetOrders_DecodesAndNormalizesStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":     42,
				"status": "processing",
				"orderItems": []map[string]any{
					{"id": 1, "productName": "Tra shan tuyet", "enterpriseId": 7, "price": 120000, "quantity": 2},
				},
			},
		})
	}))

	orders, err := c.GetOrders(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(42), orders[0].ID)
	assert.Equal(t, domain.StatusProcessing, orders[0].Status)
	assert.Equal(t, int64(7), orders[0].Items[0].EnterpriseID)
}

func TestGetOrders_UnknownStatusIsHardError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "status": "refunded"}})
	}))

	_, err := c.GetOrders(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestUpdateOrderStatus_SendsStatusBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/42/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Shipped", body["status"])

		json.NewEncoder(w).Encode(map[string]any{"id": 42, "status": "Shipped"})
	}))

	order, err := c.UpdateOrderStatus(context.Background(), "tok", 42, domain.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, order.Status)
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"auth expired", http.StatusUnauthorized, `{}`, domain.ErrAuthExpired},
		{"forbidden", http.StatusForbidden, `{}`, domain.ErrForbidden},
		{"not found", http.StatusNotFound, `{}`, domain.ErrNotFound},
		{"validation", http.StatusBadRequest, `{"message":"quantity must be positive"}`, domain.ErrValidation},
		{"server error", http.StatusInternalServerError, `{"message":"panic: nil"}`, domain.ErrServer},
		{"bad gateway", http.StatusBadGateway, `{}`, domain.ErrServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))

			_, err := c.GetOrders(context.Background(), "tok")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidation_CarriesBackendMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"order already confirmed"}`))
	}))

	_, err := c.UpdateOrderStatus(context.Background(), "tok", 7, domain.StatusProcessing)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "order already confirmed")
}

func TestServerError_NeverLeaksStatusCode(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := c.GetOrders(context.Background(), "tok")
	require.ErrorIs(t, err, domain.ErrServer)
	assert.NotContains(t, err.Error(), "503")
}

func TestNetworkFailure(t *testing.T) {
	c, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := c.GetOrders(context.Background(), "tok")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
