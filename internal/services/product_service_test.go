// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/shelftrack/shelftrack-backend/internal/models"
)

type ProductServiceSuite struct {
	ServiceSuite
	svc *ProductService
}

func (s *ProductServiceSuite) SetupTest() {
	s.ServiceSuite.SetupTest()
	s.svc = NewProductService(s.db)
}

func (s *ProductServiceSuite) TestCreateAndLookupByBarcode() {
	created, err := s.svc.CreateProduct(&CreateProductRequest{Name: "Widget", Barcode: "123456789"})
	s.Require().NoError(err)

	found, err := s.svc.GetProductByBarcode("123456789")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Widget", found.Name)
}

func (s *ProductServiceSuite) TestCreateBlankFields() {
	_, err := s.svc.CreateProduct(&CreateProductRequest{Barcode: "123456789"})
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("name", ve.Errors[0].Field)
	s.Equal("can't be blank", ve.Errors[0].Message)

	_, err = s.svc.CreateProduct(&CreateProductRequest{Name: "Widget"})
	s.Require().ErrorAs(err, &ve)
	s.Equal("barcode", ve.Errors[0].Field)
}

func (s *ProductServiceSuite) TestDuplicateBarcode() {
	_, err := s.svc.CreateProduct(&CreateProductRequest{Name: "Widget", Barcode: "123456789"})
	s.Require().NoError(err)

	_, err = s.svc.CreateProduct(&CreateProductRequest{Name: "Other", Barcode: "123456789"})
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("barcode", ve.Errors[0].Field)
	s.Equal("has already been taken", ve.Errors[0].Message)
}

func (s *ProductServiceSuite) TestDuplicateBarcodeConcurrent() {
	type outcome struct{ err error }
	results := make(chan outcome, 2)

	for i := 0; i < 2; i++ {
		name := "Widget"
		go func() {
			_, err := s.svc.CreateProduct(&CreateProductRequest{Name: name, Barcode: "RACE-1"})
			results <- outcome{err: err}
		}()
	}

	var failures int
	for i := 0; i < 2; i++ {
		if r := <-results; r.err != nil {
			failures++
			var ve *ValidationError
			s.Require().ErrorAs(r.err, &ve)
			s.Equal("has already been taken", ve.Errors[0].Message)
		}
	}
	s.Equal(1, failures, "exactly one of two racing creates must fail")
}

func (s *ProductServiceSuite) TestDeleteCascadesInventories() {
	product := s.createProduct("Widget", "123456789")
	storeA := s.createStore("Downtown")
	storeB := s.createStore("Uptown")
	s.createInventory(product, storeA, 5)
	s.createInventory(product, storeB, 7)

	s.Require().NoError(s.svc.DeleteProduct(product.ID))

	var count int64
	s.db.Model(&models.Inventory{}).Where("product_id = ?", product.ID).Count(&count)
	s.Zero(count)
}

func (s *ProductServiceSuite) TestDeleteMissingProduct() {
	s.ErrorIs(s.svc.DeleteProduct(uuid.New()), ErrNotFound)
}

func (s *ProductServiceSuite) TestListProducts() {
	s.createProduct("Widget", "111")
	s.createProduct("Gadget", "222")

	result, err := s.svc.ListProducts(utilsPaginationDefaults())
	s.Require().NoError(err)
	s.Equal(int64(2), result.Total)
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}
