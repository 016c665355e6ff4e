package selection

import (
	"strings"

	"cancha.link/models"
)

// ValidationError es un error de envío recuperable: se muestra en línea
// y no se pierde ningún dato del formulario.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrIncompleteSelection ValidationError = "por favor selecciona una fecha, cancha y al menos un horario"
	ErrNameRequired        ValidationError = "por favor ingresa tu nombre"
	ErrPaymentRequired     ValidationError = "por favor selecciona un método de pago"
	ErrProofRequired       ValidationError = "por favor sube el comprobante de pago móvil"
)

// Submission es la selección completada lista para enviarse al escritor
// de citas: los campos exactos del formulario, sin payloads dinámicos.
type Submission struct {
	State
	UserName      string
	PaymentMethod string
	HasProof      bool
}

// Validate aplica la compuerta de envío. Con pago_movil el comprobante
// es obligatorio aquí: el escritor de citas nunca se invoca sin él.
func (sub Submission) Validate() error {
	if sub.Date == "" || sub.CourtID == 0 || len(sub.Times) == 0 {
		return ErrIncompleteSelection
	}
	// El escritor recorta el nombre antes de guardarlo; un nombre de puros
	// espacios quedaría vacío en la cita, así que se rechaza aquí.
	if strings.TrimSpace(sub.UserName) == "" {
		return ErrNameRequired
	}
	if !models.ValidPaymentMethod(sub.PaymentMethod) {
		return ErrPaymentRequired
	}
	if sub.PaymentMethod == models.PaymentMethodPagoMovil && !sub.HasProof {
		return ErrProofRequired
	}
	return nil
}
