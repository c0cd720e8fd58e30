// internal/domain/cart/repository.go
package cart

import (
	"errors"
	"fmt"

	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides typed access to carts and their items. WithTx runs
// fn against a transactional copy of the repository; every cart mutation
// goes through it so the running total and the item rows commit together.
type Repository interface {
	WithTx(fn func(tx Repository) error) error

	FindCartByUserID(userID uint) (*Cart, error)
	// LockCartByUserID loads the cart row with a FOR UPDATE lock so
	// concurrent mutations of the same cart serialize.
	LockCartByUserID(userID uint) (*Cart, error)
	CreateCart(c *Cart) error
	SaveCart(c *Cart) error

	FindItem(itemID uint) (*CartItem, error)
	FindItemInCart(cartID, productID uint) (*CartItem, error)
	FindItemsByCart(cartID uint) ([]CartItem, error)
	CreateItem(item *CartItem) error
	SaveItem(item *CartItem) error
	DeleteItem(itemID uint) error
	DeleteItemsByCart(cartID uint) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed cart repository
func NewGormRepository(db *gorm.DB) *gormRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(fn func(tx Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository{db: tx})
	})
}

func (r *gormRepository) FindCartByUserID(userID uint) (*Cart, error) {
	var c Cart
	if err := r.db.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart not found")
		}
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return &c, nil
}

func (r *gormRepository) LockCartByUserID(userID uint) (*Cart, error) {
	var c Cart
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart not found")
		}
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}
	return &c, nil
}

func (r *gormRepository) CreateCart(c *Cart) error {
	if err := r.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

func (r *gormRepository) SaveCart(c *Cart) error {
	if err := r.db.Save(c).Error; err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *gormRepository) FindItem(itemID uint) (*CartItem, error) {
	var item CartItem
	if err := r.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart item not found")
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return &item, nil
}

func (r *gormRepository) FindItemInCart(cartID, productID uint) (*CartItem, error) {
	var item CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart item not found")
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return &item, nil
}

func (r *gormRepository) FindItemsByCart(cartID uint) ([]CartItem, error) {
	var items []CartItem
	// Insertion order, matching the presentation contract.
	if err := r.db.Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

func (r *gormRepository) CreateItem(item *CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

func (r *gormRepository) SaveItem(item *CartItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	return nil
}

func (r *gormRepository) DeleteItem(itemID uint) error {
	if err := r.db.Delete(&CartItem{}, itemID).Error; err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (r *gormRepository) DeleteItemsByCart(cartID uint) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}
	return nil
}

// HasCart reports whether the user already owns a cart. Consumed by the
// account component's cart provisioning.
func (r *gormRepository) HasCart(userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Cart{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check cart existence: %w", err)
	}
	return count > 0, nil
}

// CreateForUser provisions an empty cart owned by the user.
func (r *gormRepository) CreateForUser(userID uint) error {
	return r.CreateCart(&Cart{UserID: userID})
}
