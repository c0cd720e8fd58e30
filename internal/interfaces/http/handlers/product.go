// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shoponline-backend/internal/domain/product"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	productService *product.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct handles multipart product creation with an image upload
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	name := formOrQuery(c, "name")
	category := formOrQuery(c, "category")
	priceRaw := formOrQuery(c, "price")

	if name == "" || category == "" || priceRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Fields 'name', 'category' and 'price' are required",
		})
		return
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Field 'price' must be a number",
		})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}
	defer file.Close()

	p, err := h.productService.Create(name, category, price, file, header)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListProducts returns the full catalog
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID returns a single product
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	p, err := h.productService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// SearchByName returns products matching a name substring
func (h *ProductHandler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'name' is required",
		})
		return
	}

	products, err := h.productService.SearchByName(name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchByCategory returns products matching a category substring
func (h *ProductHandler) SearchByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'category' is required",
		})
		return
	}

	products, err := h.productService.SearchByCategory(category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct overwrites a product's name, category and price
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req product.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.productService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteProduct removes a product from the catalog
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detail": "Product deleted successfully",
	})
}

// formOrQuery reads a value from the multipart form, falling back to the
// query string.
func formOrQuery(c *gin.Context, key string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return c.Query(key)
}

// parseIDParam parses a numeric path parameter, writing a 400 response on
// failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}
