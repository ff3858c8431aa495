package model

type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Icon string `gorm:"type:varchar(100)" json:"icon"`
}

// DefaultCategories returns the compiled-in category set. Served whenever
// the store is empty or unreachable, and used to seed the collection.
func DefaultCategories() []Category {
	return []Category{
		{BaseModel: BaseModel{ID: "1"}, Name: "Parure", Icon: "fas fa-layer-group"},
		{BaseModel: BaseModel{ID: "2"}, Name: "Bracelet", Icon: "fas fa-band-aid"},
		{BaseModel: BaseModel{ID: "3"}, Name: "Bague", Icon: "fas fa-ring"},
		{BaseModel: BaseModel{ID: "4"}, Name: "Boucles", Icon: "fas fa-gem"},
		{BaseModel: BaseModel{ID: "5"}, Name: "Montre", Icon: "fas fa-clock"},
		{BaseModel: BaseModel{ID: "6"}, Name: "Collier", Icon: "fas fa-necklace"},
	}
}
