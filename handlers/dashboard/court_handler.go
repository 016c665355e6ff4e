package handlers

import (
	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/flashmessages"
	"cancha.link/pkg/renderer"
	"cancha.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CourtHandler administra las canchas desde el dashboard.
type CourtHandler struct {
	service services.ICourtService
}

func NewCourtHandler() *CourtHandler {
	return &CourtHandler{service: services.NewCourtService()}
}

// List muestra todas las canchas, activas o no.
func (h *CourtHandler) List(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	courts, err := h.service.GetAllCourts(c.UserContext())
	renderData := fiber.Map{
		"Title":  "Canchas",
		"Courts": courts,
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		configslog.Log.Error("Dashboard - Canchas: error al listar", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar las canchas."
	}
	return renderer.Render(c, "dashboard/courts/list", "layouts/dashboard_layout", renderData)
}

// ShowCreate dibuja el formulario de cancha nueva.
func (h *CourtHandler) ShowCreate(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":    "Nueva cancha",
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/courts/create", "layouts/dashboard_layout", renderData)
}

// Create guarda una cancha nueva.
func (h *CourtHandler) Create(c *fiber.Ctx) error {
	var court models.Court
	if err := c.BodyParser(&court); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos de formulario inválidos.")
		return c.Redirect("/dashboard/canchas/crear", fiber.StatusSeeOther)
	}
	court.Active = c.FormValue("active", "on") == "on"

	if err := h.service.CreateCourt(c.UserContext(), &court); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, court)
		return c.Redirect("/dashboard/canchas/crear", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Cancha creada.")
	return c.Redirect("/dashboard/canchas", fiber.StatusFound)
}

// ShowUpdate dibuja el formulario de edición de una cancha.
func (h *CourtHandler) ShowUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de cancha inválido.")
		return c.Redirect("/dashboard/canchas", fiber.StatusSeeOther)
	}

	court, err := h.service.GetCourtByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/dashboard/canchas", fiber.StatusSeeOther)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":    "Editar cancha",
		"Court":    court,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/courts/update", "layouts/dashboard_layout", renderData)
}

// Update guarda los cambios de una cancha.
func (h *CourtHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de cancha inválido.")
		return c.Redirect("/dashboard/canchas", fiber.StatusSeeOther)
	}

	var data models.Court
	if err := c.BodyParser(&data); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos de formulario inválidos.")
		return c.Redirect("/dashboard/canchas", fiber.StatusSeeOther)
	}
	data.Active = c.FormValue("active") == "on"

	if err := h.service.UpdateCourt(c.UserContext(), uint(id), data); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, data)
		return c.Redirect("/dashboard/canchas", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Cancha actualizada.")
	return c.Redirect("/dashboard/canchas", fiber.StatusFound)
}

// Delete elimina una cancha. Las citas existentes no se tocan.
func (h *CourtHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de cancha inválido.")
		return c.Redirect("/dashboard/canchas", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteCourt(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Cancha eliminada.")
	}
	return c.Redirect("/dashboard/canchas", fiber.StatusSeeOther)
}
