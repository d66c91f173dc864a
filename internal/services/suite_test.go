// internal/services/suite_test.go
package services

import (
	"os"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shelftrack/shelftrack-backend/internal/config"
	"github.com/shelftrack/shelftrack-backend/internal/database"
	"github.com/shelftrack/shelftrack-backend/internal/models"
	"github.com/shelftrack/shelftrack-backend/internal/utils"
)

// ServiceSuite runs against a real Postgres so the storage-level constraints
// (unique indexes, cascade foreign keys) are exercised for real. Set
// TEST_DATABASE_DSN to run it, e.g.
//
//	TEST_DATABASE_DSN="host=localhost user=postgres dbname=shelftrack_test sslmode=disable"
type ServiceSuite struct {
	suite.Suite
	db  *gorm.DB
	cfg *config.Config
}

func (s *ServiceSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_DSN not set; skipping database-backed tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(db))

	s.db = db
	s.cfg = &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
	}
}

func (s *ServiceSuite) SetupTest() {
	s.Require().NoError(
		s.db.Exec("TRUNCATE TABLE inventories, products, stores, users RESTART IDENTITY CASCADE").Error,
	)
}

func utilsPaginationDefaults() utils.PaginationParams {
	return utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}
}

func (s *ServiceSuite) createProduct(name, barcode string) *models.Product {
	product, err := NewProductService(s.db).CreateProduct(&CreateProductRequest{
		Name:    name,
		Barcode: barcode,
	})
	s.Require().NoError(err)
	return product
}

func (s *ServiceSuite) createStore(name string) *models.Store {
	store, err := NewStoreService(s.db).CreateStore(&CreateStoreRequest{Name: name})
	s.Require().NoError(err)
	return store
}

func (s *ServiceSuite) createInventory(p *models.Product, st *models.Store, qty int) *models.Inventory {
	inventory, err := NewInventoryService(s.db).CreateInventory(&CreateInventoryRequest{
		ProductID:         p.ID,
		StoreID:           st.ID,
		AvailableQuantity: &qty,
	})
	s.Require().NoError(err)
	return inventory
}
