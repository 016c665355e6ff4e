package handlers

import (
	"cancha.link/configs/configslog"
	"cancha.link/pkg/flashmessages"
	"cancha.link/pkg/renderer"
	"cancha.link/repositories"
	"cancha.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HomeHandler atiende la portada del dashboard.
type HomeHandler struct {
	agendaService services.IAgendaService
}

func NewHomeHandler(agenda services.IAgendaService) *HomeHandler {
	return &HomeHandler{agendaService: agenda}
}

// Show dibuja la portada con las tarjetas de estado de la agenda.
func (h *HomeHandler) Show(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	stats, err := h.agendaService.GetStats(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - Home: no se pudieron calcular las estadísticas", zap.Error(err))
		stats = repositories.AgendaStats{}
	}

	renderData := fiber.Map{
		"Title": "Panel",
		"Stats": stats,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", renderData)
}
