// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/shoponline-backend/internal/domain/cart"
	"github.com/your-org/shoponline-backend/internal/domain/order"
	"github.com/your-org/shoponline-backend/internal/domain/product"
	"github.com/your-org/shoponline-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: owners before owned rows
	models := []interface{}{
		&user.User{},
		&product.Product{},
		&cart.Cart{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_name_category ON products(name, category)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_cart_product ON cart_items(cart_id, product_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts a few demo products for development
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	products := []product.Product{
		{Name: "Wireless Headphones", Category: "Electronics", Image: "static/images/products/headphones.jpg", Price: 79.99},
		{Name: "Running Shoes", Category: "Sports", Image: "static/images/products/shoes.jpg", Price: 59.50},
		{Name: "Coffee Mug", Category: "Home", Image: "static/images/products/mug.jpg", Price: 12.00},
	}

	for _, p := range products {
		var existing product.Product
		result := m.db.Where("name = ?", p.Name).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&p).Error; err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
			}
			log.Printf("✅ Created product: %s", p.Name)
		} else {
			log.Printf("⏭️ Product already exists: %s", p.Name)
		}
	}

	return nil
}
