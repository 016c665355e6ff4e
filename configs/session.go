package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession crea (una sola vez) el store de sesiones basado en cookies.
// La sesión guarda el usuario autenticado, los mensajes flash y el estado
// de selección del agendador público.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		Expiration:     12 * time.Hour,
		KeyLookup:      "cookie:cancha_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return sessionStore
}
