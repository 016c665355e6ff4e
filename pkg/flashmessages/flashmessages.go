// Package flashmessages guarda mensajes de un solo uso en la sesión,
// para el patrón redirigir-y-mostrar de los formularios.
package flashmessages

import (
	"encoding/json"

	"cancha.link/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	FlashWarningKey  = "flash_warning"
	flashFormDataKey = "flash_form_data"
)

// FlashData agrupa los mensajes pendientes de una sesión.
type FlashData struct {
	Success string
	Error   string
	Warning string
}

// SetFlashMessage guarda un mensaje bajo la clave dada.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages consume (lee y borra) los mensajes pendientes.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return FlashData{}, err
	}
	data := FlashData{}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	if v, ok := sess.Get(FlashWarningKey).(string); ok {
		data.Warning = v
		sess.Delete(FlashWarningKey)
	}
	return data, sess.Save()
}

// SetFlashFormData conserva los campos de un formulario fallido para
// repoblarlo después de la redirección.
func SetFlashFormData(c *fiber.Ctx, form interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData consume los campos guardados, si los hay.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var form map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil
	}
	return form
}
