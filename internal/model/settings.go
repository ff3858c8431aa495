package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the primary key of the single settings row.
const SettingsID = "settings"

// DeliveryWilaya maps a wilaya name to its two delivery price tiers.
// Wilayas are matched by name, case-insensitively. A rename breaks price
// lookups for existing orders referencing the old name.
type DeliveryWilaya struct {
	Name        string          `json:"name"`
	HomePrice   decimal.Decimal `json:"homePrice"`
	OfficePrice decimal.Decimal `json:"officePrice"`
}

// Settings is persisted as one document. Every write reads the whole row,
// merges fields and writes it back, so concurrent admin edits to different
// fields can silently overwrite each other. Known limitation, kept.
type Settings struct {
	ID              string           `gorm:"type:varchar(40);primaryKey" json:"id"`
	StoreName       string           `json:"storeName,omitempty"`
	StorePhone      string           `json:"storePhone,omitempty"`
	StoreEmail      string           `json:"storeEmail,omitempty"`
	Facebook        string           `json:"facebook,omitempty"`
	Instagram       string           `json:"instagram,omitempty"`
	DeliveryWilayas []DeliveryWilaya `gorm:"serializer:json" json:"deliveryWilayas"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
