package routes

import (
	scheduler_handlers "cancha.link/handlers/scheduler"
	"cancha.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerSchedulerRoutes define el flujo público de reservas bajo /agenda.
func registerSchedulerRoutes(app *fiber.App, booking services.IBookingService) {
	handler := scheduler_handlers.NewSchedulerHandler(booking)

	agenda := app.Group("/agenda")
	agenda.Get("/", handler.Show)
	agenda.Post("/fecha", handler.ChooseDate)
	agenda.Post("/cancha/:id", handler.ChooseCourt)
	agenda.Post("/horario", handler.ToggleSlot)
	agenda.Post("/confirmar", handler.Confirm)
}
