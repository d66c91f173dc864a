// internal/services/store_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelftrack/shelftrack-backend/internal/models"
	"github.com/shelftrack/shelftrack-backend/internal/utils"
)

type StoreService struct {
	db *gorm.DB
}

type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Address     string `json:"address,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

func (s *StoreService) CreateStore(req *CreateStoreRequest) (*models.Store, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationErrorFromStruct(err)
	}

	store := &models.Store{
		Name:        req.Name,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
	}

	if err := s.db.Create(store).Error; err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

func (s *StoreService) GetStore(id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := s.db.First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &store, nil
}

func (s *StoreService) ListStores(params utils.PaginationParams) (utils.PaginationResult, error) {
	query := s.db.Model(&models.Store{})
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("database error: %w", err)
	}

	var stores []models.Store
	query = utils.ApplySort(query, params, []string{"created_at", "name"})
	if err := utils.ApplyPagination(query, params).Find(&stores).Error; err != nil {
		return utils.PaginationResult{}, fmt.Errorf("database error: %w", err)
	}

	return utils.CreatePaginationResult(stores, total, params), nil
}

// DeleteStore removes the store; dependent inventory rows go with it through
// the ON DELETE CASCADE rule on inventories.store_id.
func (s *StoreService) DeleteStore(id uuid.UUID) error {
	result := s.db.Delete(&models.Store{}, id)
	if result.Error != nil {
		return fmt.Errorf("database error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
