// internal/domain/user/repository.go
package user

import (
	"errors"
	"fmt"

	"github.com/your-org/shoponline-backend/internal/domain/cart"
	"github.com/your-org/shoponline-backend/internal/domain/order"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Repository provides typed access to the user table.
type Repository interface {
	Create(u *User) error
	FindByEmail(email string) (*User, error)
	FindByID(id uint) (*User, error)
	Save(u *User) error
	Exists(id uint) (bool, error)
	// DeleteWithOwnedData removes the user together with their cart, cart
	// items, orders and order items in a single transaction.
	DeleteWithOwnedData(userID uint) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed user repository
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(u *User) error {
	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("Email already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &u, nil
}

func (r *gormRepository) FindByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (r *gormRepository) Save(u *User) error {
	if err := r.db.Save(u).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *gormRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *gormRepository) DeleteWithOwnedData(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		cartIDs := tx.Model(&cart.Cart{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("cart_id IN (?)", cartIDs).Delete(&cart.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart items: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&cart.Cart{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}

		orderIDs := tx.Model(&order.Order{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&order.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&order.Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete orders: %w", err)
		}

		if err := tx.Delete(&User{}, userID).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
