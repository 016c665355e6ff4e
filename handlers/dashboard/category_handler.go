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

// CategoryHandler administra las categorías de la tienda.
type CategoryHandler struct {
	service services.ICategoryService
}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{service: services.NewCategoryService()}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	categories, err := h.service.GetAllCategories(c.UserContext())
	renderData := fiber.Map{
		"Title":      "Categorías",
		"Categories": categories,
		"FormData":   flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		configslog.Log.Error("Dashboard - Categorías: error al listar", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar las categorías."
	}
	return renderer.Render(c, "dashboard/categories/list", "layouts/dashboard_layout", renderData)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos de formulario inválidos.")
		return c.Redirect("/dashboard/categorias", fiber.StatusSeeOther)
	}

	if err := h.service.CreateCategory(c.UserContext(), &category); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, category)
		return c.Redirect("/dashboard/categorias", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Categoría creada.")
	return c.Redirect("/dashboard/categorias", fiber.StatusFound)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de categoría inválido.")
		return c.Redirect("/dashboard/categorias", fiber.StatusSeeOther)
	}

	var data models.Category
	if err := c.BodyParser(&data); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos de formulario inválidos.")
		return c.Redirect("/dashboard/categorias", fiber.StatusSeeOther)
	}

	if err := h.service.UpdateCategory(c.UserContext(), uint(id), data); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/dashboard/categorias", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Categoría actualizada.")
	return c.Redirect("/dashboard/categorias", fiber.StatusFound)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de categoría inválido.")
		return c.Redirect("/dashboard/categorias", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteCategory(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Categoría eliminada.")
	}
	return c.Redirect("/dashboard/categorias", fiber.StatusSeeOther)
}
