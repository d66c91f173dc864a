// internal/services/inventory_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceSuite struct {
	ServiceSuite
	svc *InventoryService
}

func (s *InventoryServiceSuite) SetupTest() {
	s.ServiceSuite.SetupTest()
	s.svc = NewInventoryService(s.db)
}

func intPtr(v int) *int { return &v }

func (s *InventoryServiceSuite) TestCreateInventory() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")

	inventory, err := s.svc.CreateInventory(&CreateInventoryRequest{
		ProductID:         product.ID,
		StoreID:           store.ID,
		AvailableQuantity: intPtr(10),
	})
	s.Require().NoError(err)
	s.Equal(10, inventory.AvailableQuantity)
	s.Require().NotNil(inventory.Product)
	s.Equal("Widget", inventory.Product.Name)
}

func (s *InventoryServiceSuite) TestCreateInventoryZeroQuantity() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")

	inventory, err := s.svc.CreateInventory(&CreateInventoryRequest{
		ProductID:         product.ID,
		StoreID:           store.ID,
		AvailableQuantity: intPtr(0),
	})
	s.Require().NoError(err)
	s.Equal(0, inventory.AvailableQuantity)
}

func (s *InventoryServiceSuite) TestCreateInventoryMissingQuantity() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")

	_, err := s.svc.CreateInventory(&CreateInventoryRequest{
		ProductID: product.ID,
		StoreID:   store.ID,
	})
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("available_quantity", ve.Errors[0].Field)
	s.Equal("can't be blank", ve.Errors[0].Message)
}

func (s *InventoryServiceSuite) TestCreateInventoryNegativeQuantity() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")

	_, err := s.svc.CreateInventory(&CreateInventoryRequest{
		ProductID:         product.ID,
		StoreID:           store.ID,
		AvailableQuantity: intPtr(-1),
	})
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("available_quantity", ve.Errors[0].Field)
	s.Equal("must be greater than or equal to 0", ve.Errors[0].Message)
}

func (s *InventoryServiceSuite) TestDuplicateProductStorePair() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")
	s.createInventory(product, store, 5)

	_, err := s.svc.CreateInventory(&CreateInventoryRequest{
		ProductID:         product.ID,
		StoreID:           store.ID,
		AvailableQuantity: intPtr(9),
	})
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("product_id", ve.Errors[0].Field)
	s.Equal("and store combination must be unique", ve.Errors[0].Message)
}

func (s *InventoryServiceSuite) TestDuplicatePairConcurrent() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := s.svc.CreateInventory(&CreateInventoryRequest{
				ProductID:         product.ID,
				StoreID:           store.ID,
				AvailableQuantity: intPtr(1),
			})
			results <- err
		}()
	}

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			failures++
			var ve *ValidationError
			s.Require().ErrorAs(err, &ve)
			s.Equal("and store combination must be unique", ve.Errors[0].Message)
		}
	}
	s.Equal(1, failures, "exactly one of two racing creates must fail")
}

func (s *InventoryServiceSuite) TestSamePairDifferentStoreAllowed() {
	product := s.createProduct("Widget", "111")
	storeA := s.createStore("Downtown")
	storeB := s.createStore("Uptown")

	s.createInventory(product, storeA, 5)
	s.createInventory(product, storeB, 5)
}

func (s *InventoryServiceSuite) TestCreateInventoryUnknownProduct() {
	store := s.createStore("Downtown")

	_, err := s.svc.CreateInventory(&CreateInventoryRequest{
		ProductID:         uuid.New(),
		StoreID:           store.ID,
		AvailableQuantity: intPtr(1),
	})
	var rie *ReferentialIntegrityError
	s.Require().ErrorAs(err, &rie)
}

func (s *InventoryServiceSuite) TestSetQuantity() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")
	inventory := s.createInventory(product, store, 5)

	updated, err := s.svc.SetQuantity(inventory.ID, &SetQuantityRequest{AvailableQuantity: intPtr(12)})
	s.Require().NoError(err)
	s.Equal(12, updated.AvailableQuantity)
}

func (s *InventoryServiceSuite) TestSetQuantityRejectsNegativeAndMissing() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")
	inventory := s.createInventory(product, store, 5)

	_, err := s.svc.SetQuantity(inventory.ID, &SetQuantityRequest{AvailableQuantity: intPtr(-1)})
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)

	_, err = s.svc.SetQuantity(inventory.ID, &SetQuantityRequest{})
	s.Require().ErrorAs(err, &ve)
	s.Equal("can't be blank", ve.Errors[0].Message)

	unchanged, err := s.svc.GetInventory(inventory.ID)
	s.Require().NoError(err)
	s.Equal(5, unchanged.AvailableQuantity)
}

func (s *InventoryServiceSuite) TestSetQuantityMissingInventory() {
	_, err := s.svc.SetQuantity(uuid.New(), &SetQuantityRequest{AvailableQuantity: intPtr(1)})
	s.ErrorIs(err, ErrNotFound)
}

func (s *InventoryServiceSuite) TestListInventoriesFiltered() {
	product := s.createProduct("Widget", "111")
	other := s.createProduct("Gadget", "222")
	store := s.createStore("Downtown")
	s.createInventory(product, store, 5)
	s.createInventory(other, store, 2)

	result, err := s.svc.ListInventories(InventoryListParams{
		PaginationParams: utilsPaginationDefaults(),
		ProductID:        &product.ID,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), result.Total)
}

func (s *InventoryServiceSuite) TestDeleteInventory() {
	product := s.createProduct("Widget", "111")
	store := s.createStore("Downtown")
	inventory := s.createInventory(product, store, 5)

	s.Require().NoError(s.svc.DeleteInventory(inventory.ID))
	_, err := s.svc.GetInventory(inventory.ID)
	s.ErrorIs(err, ErrNotFound)

	s.ErrorIs(s.svc.DeleteInventory(inventory.ID), ErrNotFound)
}

func TestInventoryServiceSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceSuite))
}
