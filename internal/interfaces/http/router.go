package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/order"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/pkg/logger"
	"github.com/tu-usuario/ventas-api/pkg/pubsub"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	ClientUC  *usecase.ClientUseCase
	OrderUC   *order.OrderUseCase
	ReportUC  *usecase.ReportUseCase
	Broker    *pubsub.Broker
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. La identidad es opcional en todo el
// grupo: un token ausente o inválido deja el request anónimo y cada handler
// que exige identidad responde 401 por su cuenta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", OptionalAuth(deps.JWTSecret, deps.Log))

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authHandler.Me)

	// Products (catálogo; lecturas públicas)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Broker)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/events", productHandler.Events)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clients (directorio; List es sin filtro, ListMine es por vendedor)
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/mine", clientHandler.ListMine)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Orders (flujo de órdenes)
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/mine", orderHandler.ListMine)
	orders.Get("/status/:status", orderHandler.ListByStatus)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Reports (agregaciones de solo lectura)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/best-clients", reportHandler.BestClients)
	reports.Get("/best-sellers", reportHandler.BestSellers)
}
