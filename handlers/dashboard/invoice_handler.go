package handlers

import (
	"strconv"

	"cancha.link/configs/configslog"
	"cancha.link/pkg/flashmessages"
	"cancha.link/pkg/queryparams"
	"cancha.link/pkg/renderer"
	"cancha.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InvoiceHandler administra la facturación de la tienda.
type InvoiceHandler struct {
	service        services.IInvoiceService
	productService services.IProductService
}

func NewInvoiceHandler() *InvoiceHandler {
	return &InvoiceHandler{
		service:        services.NewInvoiceService(),
		productService: services.NewProductService(),
	}
}

// List muestra las facturas paginadas con búsqueda.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetInvoicesPaginated(c.UserContext(), params)
	renderData := fiber.Map{
		"Title":  "Facturas",
		"Result": result,
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)
	if err != nil {
		configslog.Log.Error("Dashboard - Facturas: error al listar", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "No se pudieron listar las facturas."
		renderData["Result"] = &queryparams.PaginatedResult{}
	} else {
		stats, err := h.service.GetSalesStats(c.UserContext(), params)
		if err != nil {
			configslog.Log.Error("Dashboard - Facturas: error al resumir las ventas", zap.Error(err))
		} else {
			renderData["Stats"] = stats
		}
	}
	return renderer.Render(c, "dashboard/invoices/list", "layouts/dashboard_layout", renderData)
}

// ShowCreate dibuja el formulario de factura nueva con el catálogo.
func (h *InvoiceHandler) ShowCreate(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	products, err := h.productService.GetAllProducts(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - Facturas: error al cargar el catálogo", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":    "Nueva factura",
		"Products": products,
		"FormData": flashmessages.GetFlashFormData(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/invoices/create", "layouts/dashboard_layout", renderData)
}

// Create guarda una factura con sus renglones. El formulario manda pares
// producto/cantidad repetidos.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	data := services.InvoiceData{
		CustomerName:     c.FormValue("customer_name"),
		CustomerEmail:    c.FormValue("customer_email"),
		PaymentReference: c.FormValue("payment_reference"),
	}

	args := c.Request().PostArgs()
	productIDs := args.PeekMulti("product_id")
	quantities := args.PeekMulti("quantity")
	for i := range productIDs {
		productID, err := strconv.ParseUint(string(productIDs[i]), 10, 32)
		if err != nil || productID == 0 {
			continue
		}
		quantity := 0
		if i < len(quantities) {
			quantity, _ = strconv.Atoi(string(quantities[i]))
		}
		data.Lines = append(data.Lines, services.InvoiceLine{
			ProductID: uint(productID),
			Quantity:  quantity,
		})
	}

	invoice, err := h.service.CreateInvoice(c.UserContext(), data)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, fiber.Map{
			"customer_name":     data.CustomerName,
			"customer_email":    data.CustomerEmail,
			"payment_reference": data.PaymentReference,
		})
		return c.Redirect("/dashboard/facturas/crear", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Factura creada.")
	return c.Redirect("/dashboard/facturas/"+strconv.FormatUint(uint64(invoice.ID), 10), fiber.StatusFound)
}

// Detail muestra una factura con sus renglones.
func (h *InvoiceHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de factura inválido.")
		return c.Redirect("/dashboard/facturas", fiber.StatusSeeOther)
	}

	invoice, err := h.service.GetInvoiceByID(c.UserContext(), uint(id))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/dashboard/facturas", fiber.StatusSeeOther)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":   "Detalle de factura",
		"Invoice": invoice,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/invoices/detail", "layouts/dashboard_layout", renderData)
}

// Delete elimina una factura.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "ID de factura inválido.")
		return c.Redirect("/dashboard/facturas", fiber.StatusSeeOther)
	}

	if err := h.service.DeleteInvoice(c.UserContext(), uint(id)); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Factura eliminada.")
	}
	return c.Redirect("/dashboard/facturas", fiber.StatusSeeOther)
}
