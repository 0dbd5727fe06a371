// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmnaturals/internal/delivery/api/middleware"
	"farmnaturals/internal/delivery/api/router/handler"
	"farmnaturals/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	StorefrontHandler *handler.StorefrontHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	DashboardHandler  *handler.DashboardHandler
	MediaHandler      *handler.MediaHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	storefrontHandler *handler.StorefrontHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	dashboardHandler  *handler.DashboardHandler
	mediaHandler      *handler.MediaHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		storefrontHandler: params.StorefrontHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		dashboardHandler:  params.DashboardHandler,
		mediaHandler:      params.MediaHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/token", r.authHandler.Token)

	// Pages
	e.GET("/admin", r.storefrontHandler.AdminPage)
	e.GET("/shop/:category", r.storefrontHandler.CategoryPage)

	// Media
	e.POST("/upload-image", r.mediaHandler.UploadImage)
	e.GET("/images/*", r.mediaHandler.ServeImage)

	e.GET("/products/public", r.catalogHandler.ListPublicProducts)

	cartGroup := e.Group("/cart")
	{
		cartGroup.POST("/add", r.cartHandler.AddToCart)
		cartGroup.GET("/:email", r.cartHandler.GetCart)
		cartGroup.DELETE("/:email", r.cartHandler.ClearCart)
	}

	ordersGroup := e.Group("/orders")
	{
		ordersGroup.POST("/create", r.orderHandler.CreateOrder)
		ordersGroup.GET("/status/:order_id", r.orderHandler.GetStatus)
		ordersGroup.GET("/user/:email", r.orderHandler.ListForUser)
		ordersGroup.GET("/:order_id/qr", r.orderHandler.TrackingQR)
	}

	// Admin API, every route requires an admin bearer token
	adminGroup := e.Group("/admin/api")
	adminGroup.Use(r.authMiddleware.RequireCapability(entity.CapabilityAdmin))
	{
		adminGroup.GET("/categories", r.catalogHandler.ListCategories)
		adminGroup.POST("/categories", r.catalogHandler.CreateCategory)
		adminGroup.GET("/categories/:id", r.catalogHandler.GetCategory)
		adminGroup.PUT("/categories/:id", r.catalogHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.catalogHandler.DeleteCategory)

		adminGroup.GET("/products", r.catalogHandler.ListProducts)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.GET("/products/export", r.catalogHandler.ExportProducts)
		adminGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		adminGroup.GET("/orders", r.orderHandler.ListAll)
		adminGroup.PUT("/orders/:order_id/status", r.orderHandler.UpdateStatus)

		adminGroup.GET("/dashboard/stats", r.dashboardHandler.Stats)
	}
}
