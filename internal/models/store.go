// internal/models/store.go
package models

type Store struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null"`
	Address     string `json:"address,omitempty" gorm:"type:text"`
	ContactInfo string `json:"contact_info,omitempty" gorm:"size:255"`

	// Relationships
	Inventories []Inventory `json:"inventories,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}
