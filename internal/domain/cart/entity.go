// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// Cart is the mutable collection of line items a user assembles before
// checkout. Exactly one cart exists per user; TotalPrice is denormalized
// from the items and recomputed after every mutation.
type Cart struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalPrice float64   `gorm:"not null;default:0" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Cart) TableName() string {
	return "carts"
}

// CartItem is a line entry within a cart. Price captures the product's
// unit price at add-time; ProductID is a non-owning reference.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     uint      `gorm:"not null;index" json:"cart_id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Price      float64   `gorm:"not null" json:"price"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (CartItem) TableName() string {
	return "cart_items"
}
