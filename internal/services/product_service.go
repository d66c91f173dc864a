// internal/services/product_service.go
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

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name    string `json:"name" validate:"required,notblank"`
	Barcode string `json:"barcode" validate:"required,notblank"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProduct persists a product. Barcodes are globally unique; the lookup
// before the insert is advisory and the unique index on products.barcode is
// the authoritative guard when two creates race.
func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationErrorFromStruct(err)
	}

	product := &models.Product{
		Name:    req.Name,
		Barcode: req.Barcode,
	}

	// Pre-check and insert share one transaction; the unique index on
	// products.barcode still decides between two racing creates.
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("barcode = ?", req.Barcode).Count(&count).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if count > 0 {
			return NewValidationError("barcode", "has already been taken")
		}
		return tx.Create(product).Error
	})
	if err != nil {
		return nil, translateConstraintError(err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) GetProductByBarcode(barcode string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("barcode = ?", barcode).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) ListProducts(params utils.PaginationParams) (utils.PaginationResult, error) {
	query := s.db.Model(&models.Product{})
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("database error: %w", err)
	}

	var products []models.Product
	query = utils.ApplySort(query, params, []string{"created_at", "name", "barcode"})
	if err := utils.ApplyPagination(query, params).Find(&products).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("database error: %w", err)
	}

	return utils.CreatePaginationResult(products, total, params), nil
}

// DeleteProduct removes the product; the ON DELETE CASCADE rule on
// inventories.product_id removes dependent inventory rows in the same
// transaction.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("database error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
