// Package utils reúne los ayudantes de sesión compartidos por
// handlers y middlewares.
package utils

import (
	"encoding/json"
	"errors"
	"time"

	"cancha.link/pkg/selection"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var ErrSessionStoreMissing = errors.New("el store de sesiones no está en el contexto")

const (
	sessionUserIDKey    = "user_id"
	sessionUserNameKey  = "user_name"
	sessionIsSystemKey  = "is_system"
	sessionSelectionKey = "agenda_selection"
	sessionLastSeenKey  = "notifications_last_seen"
)

// SessionStart obtiene la sesión del request usando el store inyectado
// en Locals por el router.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// SetUserSession guarda la identidad autenticada en la sesión.
func SetUserSession(sess *session.Session, userID uint, name string, isSystem bool) {
	sess.Set(sessionUserIDKey, userID)
	sess.Set(sessionUserNameKey, name)
	sess.Set(sessionIsSystemKey, isSystem)
}

// GetUserIDFromSession devuelve el usuario autenticado, si lo hay.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get(sessionUserIDKey).(uint)
	if !ok || id == 0 {
		return 0, errors.New("sesión sin usuario")
	}
	return id, nil
}

// GetUserNameFromSession devuelve el nombre del usuario autenticado.
func GetUserNameFromSession(sess *session.Session) (string, bool) {
	name, ok := sess.Get(sessionUserNameKey).(string)
	return name, ok
}

// GetIsSystemFromSession indica si la sesión pertenece al usuario sistema.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	isSystem, ok := sess.Get(sessionIsSystemKey).(bool)
	if !ok {
		return false, errors.New("sesión sin bandera de sistema")
	}
	return isSystem, nil
}

// GetSelection lee el estado de selección del agendador (vacío si no hay).
func GetSelection(sess *session.Session) selection.State {
	raw, ok := sess.Get(sessionSelectionKey).(string)
	if !ok || raw == "" {
		return selection.State{}
	}
	var state selection.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return selection.State{}
	}
	return state
}

// SaveSelection persiste el estado de selección en la sesión.
func SaveSelection(sess *session.Session, state selection.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	sess.Set(sessionSelectionKey, string(raw))
	return sess.Save()
}

// GetNotificationsLastSeen devuelve el recibo de lectura local del feed.
// En una sesión nueva es el momento actual: el contador arranca en cero
// y no sobrevive la recarga.
func GetNotificationsLastSeen(sess *session.Session) time.Time {
	raw, ok := sess.Get(sessionLastSeenKey).(string)
	if !ok || raw == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Now()
	}
	return t
}

// EnsureNotificationsLastSeen devuelve el recibo de lectura y, si la
// sesión aún no tiene uno, lo ancla en el momento actual para que solo
// cuenten las citas creadas de aquí en adelante.
func EnsureNotificationsLastSeen(sess *session.Session) time.Time {
	if raw, ok := sess.Get(sessionLastSeenKey).(string); ok && raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return t
		}
	}
	now := time.Now()
	_ = SetNotificationsLastSeen(sess, now)
	return now
}

// SetNotificationsLastSeen marca el feed como visto ahora.
func SetNotificationsLastSeen(sess *session.Session, t time.Time) error {
	sess.Set(sessionLastSeenKey, t.Format(time.RFC3339Nano))
	return sess.Save()
}
