package routes

import (
	"cancha.link/configs"
	"cancha.link/pkg/proofstore"
	"cancha.link/pkg/realtime"
	"cancha.link/services"
	"cancha.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes registra todos los middlewares generales y las rotas de la
// aplicación: el agendador público, la autenticación y el dashboard.
func SetupRoutes(app *fiber.App, proofs *proofstore.Store) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	rdb := configs.GetRedis()
	publisher := realtime.NewPublisher(rdb)
	subscriber := realtime.NewSubscriber(rdb)

	bookingService := services.NewBookingService(proofs, publisher)
	agendaService := services.NewAgendaService(proofs)

	registerSchedulerRoutes(app, bookingService)
	registerAuthRoutes(app)
	registerDashboardRoutes(app, agendaService, subscriber)

	// El agendador es la portada pública.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/agenda", fiber.StatusFound)
	})

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals inyecta el store de sesiones y la identidad
// autenticada (si la hay) en los locals del request.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, err := utils.GetUserIDFromSession(sess); err == nil {
			c.Locals("userID", userID)
		}
		if isSystem, err := utils.GetIsSystemFromSession(sess); err == nil {
			c.Locals("isSystem", isSystem)
		}
		if userName, ok := utils.GetUserNameFromSession(sess); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "recurso no encontrado"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404",
		fiber.Map{"Title": "Página no encontrada"}, "layouts/error_layout")
}
