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

// GoodsHandler administra las vistas de bienes del inventario: bienes
// propios y bienes del estado. Son productos fijados a una categoría
// reservada, con su propio listado y alta.
type GoodsHandler struct {
	service services.IProductService
}

func NewGoodsHandler() *GoodsHandler {
	return &GoodsHandler{service: services.NewProductService()}
}

// goodsView describe cada vista de bienes: su categoría reservada, el
// título de la página y la ruta base de sus formularios.
type goodsView struct {
	CategoryName string
	Title        string
	Singular     string
	BasePath     string
}

var ownGoodsView = goodsView{
	CategoryName: models.CategoryOwnGoods,
	Title:        "Bienes propios",
	Singular:     "bien propio",
	BasePath:     "/dashboard/bienes-propios",
}

var stateGoodsView = goodsView{
	CategoryName: models.CategoryStateGoods,
	Title:        "Bienes del Estado",
	Singular:     "bien del estado",
	BasePath:     "/dashboard/bienes-del-estado",
}

// ListOwnGoods muestra los bienes propios.
func (h *GoodsHandler) ListOwnGoods(c *fiber.Ctx) error {
	return h.list(c, ownGoodsView)
}

// ListStateGoods muestra los bienes del estado.
func (h *GoodsHandler) ListStateGoods(c *fiber.Ctx) error {
	return h.list(c, stateGoodsView)
}

// CreateOwnGood da de alta un bien propio.
func (h *GoodsHandler) CreateOwnGood(c *fiber.Ctx) error {
	return h.create(c, ownGoodsView)
}

// CreateStateGood da de alta un bien del estado.
func (h *GoodsHandler) CreateStateGood(c *fiber.Ctx) error {
	return h.create(c, stateGoodsView)
}

func (h *GoodsHandler) list(c *fiber.Ctx, view goodsView) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	goods, err := h.service.GetGoods(c.UserContext(), view.CategoryName)
	renderData := fiber.Map{
		"Title":    view.Title,
		"Singular": view.Singular,
		"BasePath": view.BasePath,
		"Goods":    goods,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		configslog.Log.Error("Dashboard - Bienes: error al listar",
			zap.String("category", view.CategoryName), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar los bienes."
	}
	return renderer.Render(c, "dashboard/goods/list", "layouts/dashboard_layout", renderData)
}

func (h *GoodsHandler) create(c *fiber.Ctx, view goodsView) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Datos de formulario inválidos.")
		return c.Redirect(view.BasePath, fiber.StatusSeeOther)
	}

	if err := h.service.CreateGood(c.UserContext(), &product, view.CategoryName); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, product)
		return c.Redirect(view.BasePath, fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Bien creado.")
	return c.Redirect(view.BasePath, fiber.StatusFound)
}
