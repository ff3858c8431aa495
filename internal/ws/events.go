package ws

import (
	"fmt"

	"github.com/dj1alilou/windyluxury/internal/model"

	"github.com/shopspring/decimal"
)

type orderEvent struct {
	Type    string       `json:"type"`
	Order   orderSummary `json:"order"`
	Message string       `json:"message"`
}

type orderSummary struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Wilaya       string          `json:"wilaya"`
	Total        decimal.Decimal `json:"total"`
}

type statusEvent struct {
	Type    string            `json:"type"`
	OrderID string            `json:"orderId"`
	Status  model.OrderStatus `json:"status"`
	Message string            `json:"message"`
}

type productEvent struct {
	Type    string         `json:"type"`
	Action  string         `json:"action"`
	Product productDetails `json:"product"`
	Message string         `json:"message"`
}

type productDetails struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Stock int             `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

func newOrderCreated(o *model.Order) orderEvent {
	return orderEvent{
		Type: "order_created",
		Order: orderSummary{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			Wilaya:       o.Wilaya,
			Total:        o.Total,
		},
		Message: fmt.Sprintf("New order %s from %s (%s)", o.ID, o.CustomerName, o.Wilaya),
	}
}

func newOrderStatusChanged(o *model.Order) statusEvent {
	return statusEvent{
		Type:    "order_status",
		OrderID: o.ID,
		Status:  o.Status,
		Message: fmt.Sprintf("Order %s is now %s", o.ID, o.Status),
	}
}

func newProductChanged(action string, p *model.Product) productEvent {
	return productEvent{
		Type:   "stock_update",
		Action: action,
		Product: productDetails{
			ID:    p.ID,
			Name:  p.Name,
			Stock: p.Stock,
			Price: p.Price,
		},
		Message: fmt.Sprintf("Product '%s' %s", p.Name, action),
	}
}

// OrderCreated notifies the back-office of a new storefront order.
func (h *Hub) OrderCreated(o *model.Order) { h.publish(newOrderCreated(o)) }

// OrderStatusChanged notifies of a status transition.
func (h *Hub) OrderStatusChanged(o *model.Order) { h.publish(newOrderStatusChanged(o)) }

// ProductChanged notifies of a catalog edit; action is "created",
// "updated" or "deleted".
func (h *Hub) ProductChanged(action string, p *model.Product) { h.publish(newProductChanged(action, p)) }
