// Package renderer centraliza el renderizado de vistas con layout y
// la inyección de mensajes flash en los datos de la plantilla.
package renderer

import (
	"net/http"

	"cancha.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Claves bajo las que las vistas esperan los mensajes flash.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
	FlashWarningKeyView = "Warning"
)

// SetFlashMessages copia los mensajes pendientes a los datos de render.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
	if flash.Warning != "" {
		data[FlashWarningKeyView] = flash.Warning
	}
}

// Render dibuja la vista con el layout dado. El estado HTTP es opcional
// (por defecto 200).
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	// Datos comunes a todas las vistas autenticadas.
	if userName, ok := c.Locals("userName").(string); ok {
		data["CurrentUserName"] = userName
	}
	return c.Status(code).Render(view, data, layout)
}
