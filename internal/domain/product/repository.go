// internal/domain/product/repository.go
package product

import (
	"errors"
	"fmt"

	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Repository provides typed access to the product table.
type Repository interface {
	Create(p *Product) error
	FindAll() ([]Product, error)
	FindByID(id uint) (*Product, error)
	FindByNameLike(substr string) ([]Product, error)
	FindByCategoryLike(substr string) ([]Product, error)
	Save(p *Product) error
	Delete(id uint) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed product repository
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(p *Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *gormRepository) FindAll() ([]Product, error) {
	var products []Product
	if err := r.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *gormRepository) FindByID(id uint) (*Product, error) {
	var p Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

func (r *gormRepository) FindByNameLike(substr string) ([]Product, error) {
	var products []Product
	if err := r.db.Where("name ILIKE ?", "%"+substr+"%").Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products by name: %w", err)
	}
	return products, nil
}

func (r *gormRepository) FindByCategoryLike(substr string) ([]Product, error) {
	var products []Product
	if err := r.db.Where("category ILIKE ?", "%"+substr+"%").Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products by category: %w", err)
	}
	return products, nil
}

func (r *gormRepository) Save(p *Product) error {
	if err := r.db.Save(p).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *gormRepository) Delete(id uint) error {
	result := r.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}
