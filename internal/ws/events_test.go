package ws

import (
	"encoding/json"
	"testing"

	"github.com/dj1alilou/windyluxury/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreatedEventShape(t *testing.T) {
	order := &model.Order{
		CustomerName: "Amina Benali",
		Wilaya:       "Alger",
		Total:        decimal.NewFromInt(10350),
	}
	order.ID = "o-1"

	raw, err := json.Marshal(newOrderCreated(order))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "order_created", got["type"])
	assert.Contains(t, got["message"], "o-1")

	summary := got["order"].(map[string]interface{})
	assert.Equal(t, "Amina Benali", summary["customerName"])
	assert.Equal(t, "10350", summary["total"])
}

func TestStatusEventShape(t *testing.T) {
	order := &model.Order{Status: model.OrderCompleted}
	order.ID = "o-2"

	raw, err := json.Marshal(newOrderStatusChanged(order))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "order_status", got["type"])
	assert.Equal(t, "o-2", got["orderId"])
	assert.Equal(t, "completed", got["status"])
}

func TestPublishOnNilHub(t *testing.T) {
	var h *Hub
	// Services run without a live feed in tests; this must be a no-op,
	// not a panic.
	h.OrderCreated(&model.Order{})
	h.OrderStatusChanged(&model.Order{})
	h.ProductChanged("created", &model.Product{})
}
