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

// ProductHandler administra el catálogo de productos.
type ProductHandler struct {
	service         services.IProductService
	categoryService services.ICategoryService
}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{
		service:         services.NewProductService(),
		categoryService: services.NewCategoryService(),
	}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	products, err := h.service.GetAllProducts(c.UserContext())
	categories, _ := h.categoryService.GetAllCategories(c.UserContext())
	renderData := fiber.Map{
		"Title":      "Productos",
		"Products":   products,
		"Categories": categories,
		"FormData":   flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		configslog.Log.Error("Dashboard - Productos: error al listar", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar los productos."
	}
	return renderer.Render(c, "dashboard/products/list", "layouts/dashboard_layout", renderData)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos de formulario inválidos.")
		return c.Redirect("/dashboard/productos", fiber.StatusSeeOther)
	}

	if err := h.service.CreateProduct(c.UserContext(), &product); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, product)
		return c.Redirect("/dashboard/productos", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Producto creado.")
	return c.Redirect("/dashboard/productos", fiber.StatusFound)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de producto inválido.")
		return c.Redirect("/dashboard/productos", fiber.StatusSeeOther)
	}

	var data models.Product
	if err := c.BodyParser(&data); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos de formulario inválidos.")
		return c.Redirect("/dashboard/productos", fiber.StatusSeeOther)
	}

	if err := h.service.UpdateProduct(c.UserContext(), uint(id), data); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/dashboard/productos", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Producto actualizado.")
	return c.Redirect("/dashboard/productos", fiber.StatusFound)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de producto inválido.")
		return c.Redirect("/dashboard/productos", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteProduct(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Producto eliminado.")
	}
	return c.Redirect("/dashboard/productos", fiber.StatusSeeOther)
}
