// internal/handlers/inventory.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shelftrack/shelftrack-backend/internal/services"
	"github.com/shelftrack/shelftrack-backend/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// GET /inventories
func (h *InventoryHandler) GetInventories(c *gin.Context) {
	params := services.InventoryListParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if productID := c.Query("product_id"); productID != "" {
		id, err := uuid.Parse(productID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid product ID", nil)
			return
		}
		params.ProductID = &id
	}
	if storeID := c.Query("store_id"); storeID != "" {
		id, err := uuid.Parse(storeID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid store ID", nil)
			return
		}
		params.StoreID = &id
	}

	result, err := h.inventoryService.ListInventories(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, result)
}

// GET /inventories/:id
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inventory ID", nil)
		return
	}

	inventory, err := h.inventoryService.GetInventory(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Inventory")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"inventory": inventory})
}

// POST /inventories
func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var req services.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	inventory, err := h.inventoryService.CreateInventory(&req)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			utils.ValidationErrorResponse(c, ve.Errors)
			return
		}
		var rie *services.ReferentialIntegrityError
		if errors.As(err, &rie) {
			utils.UnprocessableResponse(c, "Referenced product or store does not exist", nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{"inventory": inventory})
}

// PUT /inventories/:id/quantity
func (h *InventoryHandler) SetQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inventory ID", nil)
		return
	}

	var req services.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	inventory, err := h.inventoryService.SetQuantity(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Inventory")
			return
		}
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			utils.ValidationErrorResponse(c, ve.Errors)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"inventory": inventory})
}

// DELETE /inventories/:id
func (h *InventoryHandler) DeleteInventory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inventory ID", nil)
		return
	}

	if err := h.inventoryService.DeleteInventory(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Inventory")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Inventory deleted"})
}
