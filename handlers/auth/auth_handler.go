package handlers

import (
	"cancha.link/configs/configslog"
	"cancha.link/pkg/flashmessages"
	"cancha.link/pkg/renderer"
	"cancha.link/services"
	"cancha.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler atiende el inicio y cierre de sesión del dashboard.
type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

// ShowLogin dibuja el formulario de inicio de sesión.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	formData := flashmessages.GetFlashFormData(c)

	renderData := fiber.Map{
		"Title":    "Iniciar sesión",
		"FormData": formData,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "auth/login", "layouts/main_layout", renderData)
}

// Login verifica las credenciales y abre la sesión del dashboard.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(c.UserContext(), email, password)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"email": email})
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Auth - Login: sesión inaccesible", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "No se pudo abrir la sesión.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	utils.SetUserSession(sess, user.ID, user.Name, user.IsSystem)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Auth - Login: no se pudo guardar la sesión", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout destruye la sesión y vuelve al agendador público.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			configslog.Log.Error("Auth - Logout: no se pudo destruir la sesión", zap.Error(err))
		}
	}
	return c.Redirect("/agenda", fiber.StatusFound)
}
