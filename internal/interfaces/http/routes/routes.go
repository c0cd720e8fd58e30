// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/shoponline-backend/internal/config"
	"github.com/your-org/shoponline-backend/internal/domain/cart"
	"github.com/your-org/shoponline-backend/internal/domain/product"
	"github.com/your-org/shoponline-backend/internal/domain/user"
	"github.com/your-org/shoponline-backend/internal/interfaces/http/handlers"
	"github.com/your-org/shoponline-backend/internal/pkg/auth"
	"github.com/your-org/shoponline-backend/internal/pkg/storage"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto the engine.
// The route paths match the upstream API surface exactly.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userRepo := user.NewGormRepository(db)
	productRepo := product.NewGormRepository(db)
	cartRepo := cart.NewGormRepository(db)

	imageStore := storage.NewLocalImageStore(cfg)
	verifier := auth.NewGoogleVerifier(cfg.Google.ClientID)

	userService := user.NewService(userRepo, cartRepo, verifier, cfg)
	productService := product.NewService(productRepo, imageStore, cfg)
	cartService := cart.NewService(cartRepo, productRepo, userRepo)

	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)

	// Account
	r.POST("/signup/", authHandler.Signup)
	r.POST("/login/", authHandler.Login)
	r.POST("/google-login/", authHandler.GoogleLogin)
	r.DELETE("/removeUser/", authHandler.DeleteUser)
	r.PUT("/updatePassword/", authHandler.UpdatePassword)

	// Catalog
	r.POST("/addProduct", productHandler.CreateProduct)
	r.GET("/products", productHandler.ListProducts)
	r.GET("/products/", productHandler.ListProducts)
	r.GET("/products/byName/", productHandler.SearchByName)
	r.GET("/products/byId/:product_id", productHandler.GetProductByID)
	r.GET("/products/byCategory/", productHandler.SearchByCategory)
	r.PUT("/products/updateProduct/:product_id", productHandler.UpdateProduct)
	r.DELETE("/products/remove/:product_id", productHandler.DeleteProduct)

	// Cart
	r.POST("/cart/add", cartHandler.AddToCart)
	r.POST("/cart/update", cartHandler.UpdateCart)
	r.GET("/cart/", cartHandler.ViewCart)
	r.PUT("/cart/update/:item_id", cartHandler.UpdateCartItem)
	r.PUT("/cart/reset/:user_id", cartHandler.ResetCart)
	r.DELETE("/cart/remove", cartHandler.RemoveCartItem)
	r.PUT("/cart/increment", cartHandler.IncrementCartItem)
	r.PUT("/cart/decrement", cartHandler.DecrementCartItem)
}
