// Package middlewares contiene los guardias de acceso del dashboard.
package middlewares

import (
	"cancha.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware exige una sesión autenticada; sin ella redirige al login.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashWarningKey, "Inicia sesión para continuar.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware es el inverso: un usuario ya autenticado no vuelve a
// ver el formulario de login.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Next()
}
