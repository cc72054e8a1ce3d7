package http

import (
	"github.com/gofiber/fiber/v2"
)

// Roles con permiso para registrar pagos a proveedores.
var paymentRoles = []string{"admin", "contabilidad"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Articles     ArticleService
	ThirdParties ThirdPartyService
	Warehouses   WarehouseService
	Orders       OrderService
	Payments     PaymentService
	Reception    ReceptionService
	Aging        AgingService
	Invoices     InvoiceService
	Dashboard    DashboardService
	JWTSecret    string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	articleHandler := NewArticleHandler(deps.Articles)
	articles := api.Group("/articles")
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)

	tpHandler := NewThirdPartyHandler(deps.ThirdParties)
	thirdParties := api.Group("/third-parties")
	thirdParties.Post("/", tpHandler.Create)
	thirdParties.Get("/", tpHandler.List)
	thirdParties.Get("/:id", tpHandler.GetByID)
	thirdParties.Put("/:id", tpHandler.Update)
	thirdParties.Delete("/:id", tpHandler.Delete)

	warehouseHandler := NewWarehouseHandler(deps.Warehouses)
	warehouses := api.Group("/warehouses")
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Órdenes de compra: recepción y pagos
	orderHandler := NewOrderHandler(deps.Orders, deps.Payments, deps.Reception)
	orders := api.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.Get)
	orders.Get("/:id/payments", orderHandler.PaymentSummary)
	orders.Post("/:id/payments", RequireRole(paymentRoles...), orderHandler.RecordPayment)
	orders.Get("/:id/entries", orderHandler.Entries)
	api.Post("/warehouse-entries", orderHandler.RecordEntry)

	// Cartera
	recHandler := NewReceivablesHandler(deps.Aging, deps.Invoices)
	receivables := api.Group("/receivables")
	receivables.Get("/aging", recHandler.Aging)
	receivables.Get("/aging.pdf", recHandler.AgingPDF)
	receivables.Get("/aging.xlsx", recHandler.AgingXLSX)
	invoices := api.Group("/invoices")
	invoices.Post("/", recHandler.CreateInvoice)
	invoices.Get("/", recHandler.ListInvoices)
	invoices.Get("/:id", recHandler.GetInvoice)

	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
