// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelftrack/shelftrack-backend/internal/database"
	"github.com/shelftrack/shelftrack-backend/internal/models"
	"github.com/shelftrack/shelftrack-backend/internal/utils"
)

type InventoryService struct {
	db *gorm.DB
}

// AvailableQuantity is a pointer so an explicit zero is distinguishable from
// a missing value; a missing or null quantity is rejected.
type CreateInventoryRequest struct {
	ProductID         uuid.UUID `json:"product_id" validate:"required"`
	StoreID           uuid.UUID `json:"store_id" validate:"required"`
	AvailableQuantity *int      `json:"available_quantity" validate:"required,gte=0"`
}

type SetQuantityRequest struct {
	AvailableQuantity *int `json:"available_quantity" validate:"required,gte=0"`
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// CreateInventory stocks a product at a store. The pair (product, store) is
// unique: the pre-check gives a friendly error on the common path, and the
// composite unique index decides the winner when two creates race. A
// nonexistent product or store surfaces as a ReferentialIntegrityError from
// the foreign key constraints.
func (s *InventoryService) CreateInventory(req *CreateInventoryRequest) (*models.Inventory, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationErrorFromStruct(err)
	}

	inventory := &models.Inventory{
		ProductID:         req.ProductID,
		StoreID:           req.StoreID,
		AvailableQuantity: *req.AvailableQuantity,
	}

	// Pre-check and insert share one transaction; the composite unique index
	// still decides between two racing creates.
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Inventory{}).
			Where("product_id = ? AND store_id = ?", req.ProductID, req.StoreID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if count > 0 {
			return NewValidationError("product_id", "and store combination must be unique")
		}
		return tx.Create(inventory).Error
	})
	if err != nil {
		return nil, translateConstraintError(err)
	}

	if err := s.db.Preload("Product").Preload("Store").First(inventory, inventory.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory associations: %w", err)
	}

	return inventory, nil
}

// SetQuantity assigns a new quantity-on-hand; negative or missing values are
// rejected.
func (s *InventoryService) SetQuantity(id uuid.UUID, req *SetQuantityRequest) (*models.Inventory, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationErrorFromStruct(err)
	}

	var inventory models.Inventory
	if err := s.db.First(&inventory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	inventory.AvailableQuantity = *req.AvailableQuantity
	if err := s.db.Save(&inventory).Error; err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	return &inventory, nil
}

func (s *InventoryService) GetInventory(id uuid.UUID) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := s.db.Preload("Product").Preload("Store").First(&inventory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &inventory, nil
}

type InventoryListParams struct {
	utils.PaginationParams
	ProductID *uuid.UUID
	StoreID   *uuid.UUID
}

func (s *InventoryService) ListInventories(params InventoryListParams) (utils.PaginationResult, error) {
	query := s.db.Model(&models.Inventory{})
	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("database error: %w", err)
	}

	var inventories []models.Inventory
	query = query.Preload("Product").Preload("Store")
	query = utils.ApplySort(query, params.PaginationParams, []string{"created_at", "available_quantity"})
	if err := utils.ApplyPagination(query, params.PaginationParams).Find(&inventories).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("database error: %w", err)
	}

	return utils.CreatePaginationResult(inventories, total, params.PaginationParams), nil
}

func (s *InventoryService) DeleteInventory(id uuid.UUID) error {
	result := s.db.Delete(&models.Inventory{}, id)
	if result.Error != nil {
		return fmt.Errorf("database error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
