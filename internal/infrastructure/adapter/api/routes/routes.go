package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/handler"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/middleware"
)

// Handlers bundles every handler the router needs
type Handlers struct {
	Auth     *handler.AuthHandler
	Store    *handler.StoreHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	User     *handler.UserHandler
	Admin    *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authUseCase usecase.AuthUseCase,
	sessionCookie string,
	logger coreport.Logger,
) {
	// Public routes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", handlers.Auth.Register)
		authRoutes.POST("/login", handlers.Auth.Login)
		authRoutes.POST("/logout", handlers.Auth.Logout)
	}

	storeRoutes := router.Group("/store")
	{
		storeRoutes.GET("/products", handlers.Store.ListProducts)
		storeRoutes.GET("/products/:id", handlers.Store.GetProduct)
	}

	// Session routes
	session := router.Group("")
	session.Use(middleware.RequireSession(authUseCase, sessionCookie, logger))
	{
		session.GET("/cart", handlers.Cart.GetCart)
		session.POST("/cart/items", handlers.Cart.AddItem)
		session.PATCH("/cart/items/:itemId", handlers.Cart.UpdateItem)
		session.DELETE("/cart/items/:itemId", handlers.Cart.RemoveItem)
		session.DELETE("/cart", handlers.Cart.Clear)

		session.POST("/checkout", handlers.Checkout.Checkout)

		session.GET("/me/balance", handlers.User.GetBalance)
		session.POST("/me/money", handlers.User.AddMoney)
		session.GET("/me/orders", handlers.Checkout.ListOrders)
	}

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(middleware.RequireSession(authUseCase, sessionCookie, logger))
	admin.Use(middleware.RequireAdmin(logger))
	{
		admin.GET("/products", handlers.Admin.ListProducts)
		admin.POST("/products", handlers.Admin.CreateProduct)
		admin.PUT("/products/:id", handlers.Admin.UpdateProduct)
		admin.DELETE("/products/:id", handlers.Admin.DeleteProduct)

		admin.GET("/users", handlers.Admin.ListUsers)
		admin.POST("/users/:id/money", handlers.Admin.GrantMoney)
		admin.GET("/dashboard", handlers.Admin.Dashboard)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
