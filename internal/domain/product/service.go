// internal/domain/product/service.go
package product

import (
	"mime/multipart"

	"github.com/your-org/shoponline-backend/internal/config"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
	"github.com/your-org/shoponline-backend/internal/pkg/storage"
)

// Service handles catalog business logic
type Service struct {
	repo   Repository
	images storage.ImageStore
	config *config.Config
}

// NewService creates a new product service
func NewService(repo Repository, images storage.ImageStore, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		images: images,
		config: cfg,
	}
}

// UpdateRequest represents product update data
type UpdateRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
}

// Create persists a new product, storing its uploaded image first. The
// image store rejects disallowed extensions before anything is written.
func (s *Service) Create(name, category string, price float64, file multipart.File, header *multipart.FileHeader) (*Product, error) {
	imagePath, err := s.images.Save(file, header)
	if err != nil {
		return nil, err
	}

	p := &Product{
		Name:     name,
		Category: category,
		Image:    imagePath,
		Price:    price,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns all products.
func (s *Service) List() ([]Product, error) {
	return s.repo.FindAll()
}

// GetByID returns a single product.
func (s *Service) GetByID(id uint) (*Product, error) {
	return s.repo.FindByID(id)
}

// SearchByName returns products whose name contains the substring,
// case-insensitively. Zero matches is reported as not found.
func (s *Service) SearchByName(name string) ([]Product, error) {
	products, err := s.repo.FindByNameLike(name)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFound("No products found with the given name.")
	}
	return products, nil
}

// SearchByCategory returns products whose category contains the substring,
// case-insensitively. Zero matches is reported as not found.
func (s *Service) SearchByCategory(category string) ([]Product, error) {
	products, err := s.repo.FindByCategoryLike(category)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFound("No products found for the specified category")
	}
	return products, nil
}

// Update overwrites a product's name, category and price. The stored image
// is left untouched.
func (s *Service) Update(id uint, req *UpdateRequest) (*Product, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Category = req.Category
	p.Price = req.Price

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a product. Cart and order items referencing it are left
// in place.
func (s *Service) Delete(id uint) error {
	return s.repo.Delete(id)
}
