package models

// Métodos de pago aceptados. El comprobante solo aplica a pago_movil.
const (
	PaymentMethodEfectivo  = "efectivo"
	PaymentMethodPagoMovil = "pago_movil"
)

// Estados administrativos de una cita. El valor vacío significa
// "sin estado": es el valor por defecto al crear la reserva.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus indica si s es un estado asignable desde el dashboard.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// ValidPaymentMethod indica si m pertenece a la enumeración cerrada.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodEfectivo || m == PaymentMethodPagoMovil
}

// Appointment es una reserva persistida: una o más horas de una cancha,
// en una fecha, a nombre de un cliente. AppointmentDate es una fecha de
// calendario sin componente horario (cadena ISO); AppointmentTimes guarda
// las etiquetas de los horarios elegidos tal como se seleccionaron.
type Appointment struct {
	BaseModel
	CourtID          *uint    `gorm:"index:idx_appointments_court_date" json:"court_id"`
	UserName         string   `gorm:"type:varchar(150);not null" json:"user_name"`
	AppointmentDate  string   `gorm:"type:date;not null;index:idx_appointments_court_date" json:"appointment_date"`
	AppointmentTimes []string `gorm:"serializer:json;type:jsonb;not null" json:"appointment_times"`
	PaymentMethod    string   `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentProofURL  *string  `gorm:"type:varchar(300)" json:"payment_proof_url"`
	Status           string   `gorm:"type:varchar(20);index" json:"status"`

	Court *Court `gorm:"foreignKey:CourtID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"court,omitempty"`
}

// CourtName devuelve el nombre de la cancha asociada o un marcador
// cuando la cita quedó sin cancha asignada.
func (a Appointment) CourtName() string {
	if a.Court != nil && a.Court.Name != "" {
		return a.Court.Name
	}
	return "No asignada"
}

// StatusLabel traduce el estado para las vistas del dashboard.
func (a Appointment) StatusLabel() string {
	switch a.Status {
	case StatusConfirmed:
		return "Confirmada"
	case StatusPending:
		return "Pendiente"
	case StatusCancelled:
		return "Cancelada"
	default:
		return "Sin estado"
	}
}
