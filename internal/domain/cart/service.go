// internal/domain/cart/service.go
package cart

import (
	"math"

	"github.com/your-org/shoponline-backend/internal/domain/product"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
)

// UserFinder is the user lookup the cart component consumes.
type UserFinder interface {
	Exists(userID uint) (bool, error)
}

// ProductFinder is the product lookup the cart component consumes.
type ProductFinder interface {
	FindByID(id uint) (*product.Product, error)
}

// Service handles cart business logic. Every mutation runs in a
// transaction that locks the cart row, applies the change and recomputes
// the cart total as a full resummation over its items.
type Service struct {
	repo     Repository
	products ProductFinder
	users    UserFinder
}

// NewService creates a new cart service
func NewService(repo Repository, products ProductFinder, users UserFinder) *Service {
	return &Service{
		repo:     repo,
		products: products,
		users:    users,
	}
}

// AddRequest represents an add-to-cart request
type AddRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// ItemRequest identifies a cart item for increment/decrement operations
type ItemRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	ItemID uint `json:"item_id" binding:"required"`
}

// QuantityUpdate carries an absolute quantity for an existing item
type QuantityUpdate struct {
	Quantity int `json:"quantity"`
}

// ItemResponse is a cart line annotated with the referenced product's
// display name and image for presentation convenience.
type ItemResponse struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	TotalPrice   float64 `json:"total_price"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
}

// Response represents a cart with its items and running total
type Response struct {
	ID         uint           `json:"id"`
	TotalPrice float64        `json:"total_price"`
	Items      []ItemResponse `json:"items"`
}

// Add puts quantity units of a product into the user's cart. An existing
// line absorbs the quantity, keeps its add-time unit price and recomputes
// its subtotal from the product's current price; otherwise a new line
// captures the current unit price.
func (s *Service) Add(userID, productID uint, quantity int) (*Response, error) {
	if quantity <= 0 {
		return nil, apperrors.BadRequest("Quantity must be greater than zero")
	}

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	prod, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTx(func(tx Repository) error {
		c, err := tx.LockCartByUserID(userID)
		if err != nil {
			return err
		}

		item, err := tx.FindItemInCart(c.ID, productID)
		switch {
		case err == nil:
			item.Quantity += quantity
			item.TotalPrice = round2(float64(item.Quantity) * prod.Price)
			if err := tx.SaveItem(item); err != nil {
				return err
			}
		case apperrors.KindOf(err) == apperrors.KindNotFound:
			item = &CartItem{
				CartID:     c.ID,
				ProductID:  productID,
				Quantity:   quantity,
				Price:      prod.Price,
				TotalPrice: round2(float64(quantity) * prod.Price),
			}
			if err := tx.CreateItem(item); err != nil {
				return err
			}
		default:
			return err
		}

		return s.recomputeTotal(tx, c)
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// UpdateByProduct adjusts the user's cart by product id: a positive
// quantity merges into the existing line (or creates one), a negative
// quantity removes the line, and zero is rejected.
func (s *Service) UpdateByProduct(userID, productID uint, quantity int) (*Response, error) {
	if quantity == 0 {
		return nil, apperrors.BadRequest("Quantity must be greater than zero")
	}

	if quantity > 0 {
		return s.Add(userID, productID, quantity)
	}

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(productID); err != nil {
		return nil, err
	}

	err := s.repo.WithTx(func(tx Repository) error {
		c, err := tx.LockCartByUserID(userID)
		if err != nil {
			return err
		}

		item, err := tx.FindItemInCart(c.ID, productID)
		if err != nil {
			return err
		}
		if err := tx.DeleteItem(item.ID); err != nil {
			return err
		}

		return s.recomputeTotal(tx, c)
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// UpdateItem overwrites the absolute quantity of an existing cart item and
// reprices it from the current product price. The item, cart and product
// are resolved before the quantity is judged, so a missing item reports
// not found even when the quantity is also bad.
func (s *Service) UpdateItem(itemID, userID uint, quantity int) (*Response, error) {
	err := s.adjustItem(itemID, userID, func(item *CartItem, unitPrice float64) error {
		if quantity <= 0 {
			return apperrors.BadRequest("Invalid quantity")
		}
		item.Quantity = quantity
		item.TotalPrice = round2(float64(quantity) * unitPrice)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// Increment raises an item's quantity by one.
func (s *Service) Increment(itemID, userID uint) (*Response, error) {
	err := s.adjustItem(itemID, userID, func(item *CartItem, unitPrice float64) error {
		item.Quantity++
		item.TotalPrice = round2(float64(item.Quantity) * unitPrice)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// Decrement lowers an item's quantity by one, flooring at one. An item at
// quantity one is left untouched; decrement never deletes a line.
func (s *Service) Decrement(itemID, userID uint) (*Response, error) {
	err := s.adjustItem(itemID, userID, func(item *CartItem, unitPrice float64) error {
		if item.Quantity > 1 {
			item.Quantity--
			item.TotalPrice = round2(float64(item.Quantity) * unitPrice)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// Remove deletes a cart line.
func (s *Service) Remove(itemID, userID uint) (*Response, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	err := s.repo.WithTx(func(tx Repository) error {
		item, err := tx.FindItem(itemID)
		if err != nil {
			return err
		}

		c, err := tx.LockCartByUserID(userID)
		if err != nil {
			return err
		}
		if item.CartID != c.ID {
			return apperrors.NotFound("Cart item not found")
		}

		if err := tx.DeleteItem(item.ID); err != nil {
			return err
		}

		return s.recomputeTotal(tx, c)
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// Reset deletes every line in the user's cart and zeroes the total.
func (s *Service) Reset(userID uint) (*Response, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	err := s.repo.WithTx(func(tx Repository) error {
		c, err := tx.LockCartByUserID(userID)
		if err != nil {
			return err
		}

		if err := tx.DeleteItemsByCart(c.ID); err != nil {
			return err
		}

		c.TotalPrice = 0
		return tx.SaveCart(c)
	})
	if err != nil {
		return nil, err
	}

	return s.View(userID)
}

// View returns the cart with items in insertion order, each annotated with
// the referenced product's name and image. The reported total is the
// resummation over the items.
func (s *Service) View(userID uint) (*Response, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	c, err := s.repo.FindCartByUserID(userID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindItemsByCart(c.ID)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		ID:    c.ID,
		Items: make([]ItemResponse, 0, len(items)),
	}

	var total float64
	for _, item := range items {
		line := ItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: item.TotalPrice,
		}

		// A deleted product leaves the reference dangling; the line is
		// still shown, just without display details.
		if prod, err := s.products.FindByID(item.ProductID); err == nil {
			line.ProductName = prod.Name
			line.ProductImage = prod.Image
		} else if apperrors.KindOf(err) != apperrors.KindNotFound {
			return nil, err
		}

		total += item.TotalPrice
		resp.Items = append(resp.Items, line)
	}

	resp.TotalPrice = round2(total)
	return resp, nil
}

// adjustItem applies a quantity mutation to an existing item inside a
// locked transaction and recomputes the cart total. The mutate callback
// runs after the item, cart ownership and product have all been resolved.
func (s *Service) adjustItem(itemID, userID uint, mutate func(item *CartItem, unitPrice float64) error) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}

	return s.repo.WithTx(func(tx Repository) error {
		item, err := tx.FindItem(itemID)
		if err != nil {
			return err
		}

		c, err := tx.LockCartByUserID(userID)
		if err != nil {
			return err
		}
		if item.CartID != c.ID {
			return apperrors.NotFound("Cart item not found")
		}

		prod, err := s.products.FindByID(item.ProductID)
		if err != nil {
			return err
		}

		if err := mutate(item, prod.Price); err != nil {
			return err
		}
		if err := tx.SaveItem(item); err != nil {
			return err
		}

		return s.recomputeTotal(tx, c)
	})
}

// recomputeTotal stores the full resummation over the cart's items as the
// new running total.
func (s *Service) recomputeTotal(tx Repository, c *Cart) error {
	items, err := tx.FindItemsByCart(c.ID)
	if err != nil {
		return err
	}

	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}

	c.TotalPrice = round2(total)
	return tx.SaveCart(c)
}

func (s *Service) requireUser(userID uint) error {
	exists, err := s.users.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("User not found")
	}
	return nil
}

// round2 quantizes a price to two decimals. The store keeps floats, so all
// comparisons downstream tolerate sub-cent noise.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
