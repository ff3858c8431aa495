package model

import "github.com/shopspring/decimal"

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// SizeVariant tracks stock for a single size label. When a product carries
// variants, the top-level Stock field is ignored for availability checks.
type SizeVariant struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

// ColorVariant is a selectable color with an optional price increment
// added to the base price when the customer picks it.
type ColorVariant struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Image is a reference into the image store. The first entry is the
// canonical display image.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type Product struct {
	BaseModel
	Name         string           `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	CategoryID   string           `gorm:"type:varchar(40)" json:"categoryId"`
	Description  string           `json:"description,omitempty"`
	Price        decimal.Decimal  `gorm:"type:numeric" json:"price"`
	OldPrice     *decimal.Decimal `gorm:"type:numeric" json:"oldPrice,omitempty"`
	Stock        int              `gorm:"default:0" json:"stock"`
	SizeVariants []SizeVariant    `gorm:"serializer:json" json:"sizeVariants,omitempty"`
	Colors       []ColorVariant   `gorm:"serializer:json" json:"colors,omitempty"`
	Images       []Image          `gorm:"serializer:json" json:"images"`
	Status       ProductStatus    `gorm:"type:varchar(20);default:active" json:"status"`
	Featured     bool             `json:"featured"`
}

// HasSizes reports whether availability is tracked per size variant.
func (p *Product) HasSizes() bool {
	return len(p.SizeVariants) > 0
}

// VariantFor returns the variant matching the size label, or nil.
func (p *Product) VariantFor(size string) *SizeVariant {
	for i := range p.SizeVariants {
		if p.SizeVariants[i].Size == size {
			return &p.SizeVariants[i]
		}
	}
	return nil
}

// HasStock reports availability for the requested size, or against the
// top-level stock when the product has no variants.
func (p *Product) HasStock(size string) bool {
	if p.HasSizes() {
		v := p.VariantFor(size)
		return v != nil && v.Stock > 0
	}
	return p.Stock > 0
}

// ColorSurcharge returns the price increment of the named color, zero
// when the color is unknown or free.
func (p *Product) ColorSurcharge(name string) decimal.Decimal {
	for _, c := range p.Colors {
		if c.Name == name {
			return c.Price
		}
	}
	return decimal.Zero
}

// DisplayImage returns the canonical image URL, empty if none.
func (p *Product) DisplayImage() string {
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}
