// internal/models/inventory.go
package models

import (
	"github.com/google/uuid"
)

// Inventory is the quantity-on-hand of one product at one store. At most one
// row may exist per (product, store) pair; the composite unique index is the
// authoritative guard against concurrent duplicate inserts.
type Inventory struct {
	BaseModel
	ProductID         uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_inventories_on_product_id_and_store_id"`
	StoreID           uuid.UUID `json:"store_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_inventories_on_product_id_and_store_id"`
	AvailableQuantity int       `json:"available_quantity" gorm:"not null;default:0"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Store   *Store   `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}
