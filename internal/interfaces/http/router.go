package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/neocommerce-api/internal/application/chat"
	"github.com/jhoicas/neocommerce-api/internal/application/dashboard"
	"github.com/jhoicas/neocommerce-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC    *usecase.CatalogUseCase
	StorefrontUC *usecase.StorefrontUseCase
	ContactUC    *usecase.ContactUseCase
	Chat         *chat.Service
	DashboardUC  *dashboard.DashboardUseCase
	Logger       zerolog.Logger
}

// Router registra las rutas de la API. Todas son públicas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))

	// Storefront
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC)
	api.Get("/home", storefrontHandler.Home)
	api.Get("/navigation", storefrontHandler.Navigation)
	api.Post("/newsletter", storefrontHandler.Subscribe)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/categories", catalogHandler.Categories)
	products := api.Group("/products")
	products.Get("/", catalogHandler.Search)
	products.Get("/export.pdf", catalogHandler.ExportPDF)
	products.Get("/:id", catalogHandler.GetByID)
	products.Post("/:id/cart", catalogHandler.Intent(usecase.IntentAddToCart))
	products.Post("/:id/wishlist", catalogHandler.Intent(usecase.IntentToggleWishlist))
	products.Post("/:id/view", catalogHandler.Intent(usecase.IntentView))

	// Contacto
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Get("/contact", contactHandler.Channels)
	api.Post("/contact", contactHandler.Submit)

	// Chat
	chatHandler := NewChatHandler(deps.Chat)
	chatGroup := api.Group("/chat")
	chatGroup.Get("/quick-actions", chatHandler.QuickActions)
	chatGroup.Post("/sessions", chatHandler.Open)
	chatGroup.Get("/sessions/:id/messages", chatHandler.Messages)
	chatGroup.Post("/sessions/:id/messages", chatHandler.Send)
	chatGroup.Delete("/sessions/:id", chatHandler.Close)

	// Panel del vendedor
	vendorHandler := NewVendorHandler(deps.DashboardUC)
	vendorGroup := api.Group("/vendor")
	vendorGroup.Get("/dashboard", vendorHandler.Dashboard)
	vendorGroup.Post("/products", vendorHandler.DraftProduct)
}
