package routes

import (
	handlers "cancha.link/handlers/dashboard"
	"cancha.link/middlewares"
	"cancha.link/pkg/realtime"
	"cancha.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes define las rutas administrativas bajo /dashboard.
// Requieren sesión iniciada.
func registerDashboardRoutes(app *fiber.App, agendaService services.IAgendaService, subscriber *realtime.Subscriber) {
	homeHandler := handlers.NewHomeHandler(agendaService)
	agendaHandler := handlers.NewAgendaHandler(agendaService)
	notificationHandler := handlers.NewNotificationHandler(services.NewNotificationService(), subscriber)
	courtHandler := handlers.NewCourtHandler()
	categoryHandler := handlers.NewCategoryHandler()
	productHandler := handlers.NewProductHandler()
	goodsHandler := handlers.NewGoodsHandler()
	invoiceHandler := handlers.NewInvoiceHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(middlewares.AuthMiddleware)

	dashboardGroup.Get("/", homeHandler.Show)
	dashboardGroup.Get("/home", homeHandler.Show)

	// Agenda de citas
	dashboardGroup.Get("/agenda", agendaHandler.List)
	dashboardGroup.Get("/agenda/:id", agendaHandler.Detail)
	dashboardGroup.Post("/agenda/:id/estado", agendaHandler.UpdateStatus)
	dashboardGroup.Post("/agenda/:id/eliminar", agendaHandler.Delete)

	// Campana de notificaciones
	dashboardGroup.Get("/notificaciones", notificationHandler.Feed)
	dashboardGroup.Post("/notificaciones/visto", notificationHandler.MarkSeen)
	dashboardGroup.Get("/notificaciones/stream", notificationHandler.Stream)

	// Canchas
	dashboardGroup.Get("/canchas", courtHandler.List)
	dashboardGroup.Get("/canchas/crear", courtHandler.ShowCreate)
	dashboardGroup.Post("/canchas/crear", courtHandler.Create)
	dashboardGroup.Get("/canchas/editar/:id", courtHandler.ShowUpdate)
	dashboardGroup.Post("/canchas/editar/:id", courtHandler.Update)
	dashboardGroup.Post("/canchas/eliminar/:id", courtHandler.Delete)

	// Categorías de la tienda
	dashboardGroup.Get("/categorias", categoryHandler.List)
	dashboardGroup.Post("/categorias/crear", categoryHandler.Create)
	dashboardGroup.Post("/categorias/editar/:id", categoryHandler.Update)
	dashboardGroup.Post("/categorias/eliminar/:id", categoryHandler.Delete)

	// Productos
	dashboardGroup.Get("/productos", productHandler.List)
	dashboardGroup.Post("/productos/crear", productHandler.Create)
	dashboardGroup.Post("/productos/editar/:id", productHandler.Update)
	dashboardGroup.Post("/productos/eliminar/:id", productHandler.Delete)

	// Bienes del inventario (productos fijados a categorías reservadas)
	dashboardGroup.Get("/bienes-propios", goodsHandler.ListOwnGoods)
	dashboardGroup.Post("/bienes-propios/crear", goodsHandler.CreateOwnGood)
	dashboardGroup.Get("/bienes-del-estado", goodsHandler.ListStateGoods)
	dashboardGroup.Post("/bienes-del-estado/crear", goodsHandler.CreateStateGood)

	// Facturación
	dashboardGroup.Get("/facturas", invoiceHandler.List)
	dashboardGroup.Get("/facturas/crear", invoiceHandler.ShowCreate)
	dashboardGroup.Post("/facturas/crear", invoiceHandler.Create)
	dashboardGroup.Get("/facturas/:id", invoiceHandler.Detail)
	dashboardGroup.Post("/facturas/:id/eliminar", invoiceHandler.Delete)
}
