package handlers

import (
	"errors"
	"net/http"

	"cancha.link/configs/configslog"
	"cancha.link/pkg/flashmessages"
	"cancha.link/pkg/queryparams"
	"cancha.link/pkg/renderer"
	"cancha.link/repositories"
	"cancha.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AgendaHandler administra las citas desde el dashboard.
type AgendaHandler struct {
	service services.IAgendaService
}

func NewAgendaHandler(service services.IAgendaService) *AgendaHandler {
	return &AgendaHandler{service: service}
}

// List muestra la agenda paginada con búsqueda libre y filtro por estado.
func (h *AgendaHandler) List(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("appointment_date")
	}
	params.Validate()

	result, err := h.service.GetAppointmentsPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Agenda",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	if err != nil {
		configslog.Log.Error("Dashboard - Agenda List: error al listar", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar las citas."
		renderData["Result"] = &queryparams.PaginatedResult{}
	} else {
		stats, statsErr := h.service.GetStats(c.UserContext())
		if statsErr == nil {
			renderData["Stats"] = stats
		} else {
			renderData["Stats"] = repositories.AgendaStats{}
		}
	}
	return renderer.Render(c, "dashboard/agenda/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// Detail muestra una cita con su comprobante, si lo tiene.
func (h *AgendaHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de cita inválido.")
		return c.Redirect("/dashboard/agenda", fiber.StatusSeeOther)
	}

	detail, err := h.service.GetAppointmentDetail(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "No se pudo cargar la cita."
		if errors.Is(err, services.ErrAppointmentNotFound) {
			errMsg = services.ErrAppointmentNotFound.Error()
		} else {
			configslog.Log.Error("Dashboard - Agenda Detail: error al cargar", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/agenda", fiber.StatusSeeOther)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":       "Detalle de cita",
		"Appointment": detail,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/agenda/detail", "layouts/dashboard_layout", renderData)
}

// UpdateStatus cambia el estado administrativo de una cita.
func (h *AgendaHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de cita inválido.")
		return c.Redirect("/dashboard/agenda", fiber.StatusSeeOther)
	}
	status := c.FormValue("status")

	if err := h.service.UpdateStatus(c.UserContext(), uint(id), status); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Estado actualizado.")
	}
	return c.Redirect(c.FormValue("volver_a", "/dashboard/agenda"), fiber.StatusSeeOther)
}

// Delete elimina una cita de la agenda.
func (h *AgendaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de cita inválido.")
		return c.Redirect("/dashboard/agenda", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteAppointment(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Cita eliminada.")
	}
	return c.Redirect("/dashboard/agenda", fiber.StatusSeeOther)
}
