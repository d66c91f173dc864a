// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name    string `json:"name" gorm:"size:255;not null"`
	Barcode string `json:"barcode" gorm:"uniqueIndex;size:255;not null"`

	// Relationships
	Inventories []Inventory `json:"inventories,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
