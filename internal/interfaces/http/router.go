package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/techstore-api/internal/application/auth"
	"github.com/jhoicas/techstore-api/internal/application/usecase"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	ProviderUC *usecase.ProviderUseCase
	ImportUC   *usecase.ImportUseCase
	Users      repository.UserRepository
	JWTSecret  string
}

// Router registra las rutas de la API. Política de acceso:
//   - público: auth y todas las lecturas de productos
//   - autenticado: categorías, proveedores y descuento de stock
//   - ADMIN: escrituras de productos e importación masiva
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret, deps.Users)
	adminOnly := RequireRole(entity.RoleAdmin)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/authenticate", authHandler.Authenticate)

	// Products: lecturas públicas. Las rutas con nombre fijo van antes de /:id.
	productHandler := NewProductHandler(deps.ProductUC, deps.ImportUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/filter", productHandler.Filter)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/expensive", productHandler.Expensive)
	products.Get("/quick", productHandler.Quick)
	products.Get("/:id", productHandler.GetByID)

	// Products: escrituras de ADMIN
	products.Post("/", authRequired, adminOnly, productHandler.Create)
	products.Post("/upload", authRequired, adminOnly, productHandler.Upload)
	products.Put("/:id", authRequired, adminOnly, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	// Descuento de stock: cualquier usuario autenticado
	products.Patch("/:id/stock", authRequired, productHandler.ReduceStock)

	// Categories (autenticado)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories", authRequired)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Providers (autenticado)
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers := api.Group("/providers", authRequired)
	providers.Get("/", providerHandler.List)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Post("/", providerHandler.Create)
	providers.Delete("/:id", providerHandler.Delete)
}
