// internal/domain/product/entity.go
package product

import (
	"time"
)

// Product represents a catalog entry. Deleting a product does not cascade
// to cart or order items referencing it.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255;index" json:"name"`
	Category  string    `gorm:"size:255;index" json:"category"`
	Image     string    `gorm:"size:500" json:"image"` // Stored location of the uploaded image
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}
