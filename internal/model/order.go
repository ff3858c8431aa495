package model

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

type DeliveryType string

const (
	DeliveryHome   DeliveryType = "home"
	DeliveryOffice DeliveryType = "office"
)

// OrderLine snapshots the product at order time. Historic orders stay
// stable when the product is later edited or deleted.
type OrderLine struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Image     string          `json:"image,omitempty"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type Order struct {
	BaseModel
	CustomerName   string          `gorm:"type:varchar(255);not null" json:"customerName" validate:"required"`
	CustomerPhone  string          `gorm:"type:varchar(30);not null" json:"customerPhone" validate:"required,dz_phone"`
	CustomerPhone2 string          `gorm:"type:varchar(30)" json:"customerPhone2,omitempty" validate:"omitempty,dz_phone"`
	Wilaya         string          `gorm:"type:varchar(100);not null" json:"wilaya" validate:"required"`
	Commune        string          `gorm:"type:varchar(255);not null" json:"commune" validate:"required"`
	Address        string          `json:"address,omitempty"`
	DeliveryType   DeliveryType    `gorm:"type:varchar(10)" json:"deliveryType"`
	Lines          []OrderLine     `gorm:"serializer:json" json:"products"`
	Subtotal       decimal.Decimal `gorm:"type:numeric" json:"subtotal"`
	DeliveryPrice  decimal.Decimal `gorm:"type:numeric" json:"deliveryPrice"`
	Total          decimal.Decimal `gorm:"type:numeric" json:"total"`
	Status         OrderStatus     `gorm:"type:varchar(20);default:pending" json:"status"`
	Notes          string          `json:"notes,omitempty"`
}
