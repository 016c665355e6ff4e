// Package timeslot genera la grilla fija de horarios ofrecibles por día.
// Los horarios no se persisten: se recalculan en cada render a partir del
// rango fijo de horas y del conjunto de etiquetas ya reservadas.
package timeslot

import "fmt"

// Ventana diaria de reserva: de las 4:00pm a las 12:00am (medianoche),
// una hora por slot, extremos inclusive. La hora 24 es un slot final
// válido y se muestra como "12:00am".
const (
	StartHour = 16
	EndHour   = 24
)

// Slot es un horario ofrecible dentro de la ventana diaria.
type Slot struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Label convierte una hora entera al formato de 12 horas usado en toda
// la aplicación: 1-11 -> "h:00am", 12 -> "12:00pm", 13-23 -> "h-12:00pm",
// 24 -> "12:00am".
func Label(hour int) string {
	switch {
	case hour == 24:
		return "12:00am"
	case hour > 12:
		return fmt.Sprintf("%d:00pm", hour-12)
	case hour == 12:
		return "12:00pm"
	default:
		return fmt.Sprintf("%d:00am", hour)
	}
}

// Labels devuelve las etiquetas de la grilla completa, en orden de hora.
func Labels() []string {
	labels := make([]string, 0, EndHour-StartHour+1)
	for hour := StartHour; hour <= EndHour; hour++ {
		labels = append(labels, Label(hour))
	}
	return labels
}

// Grid genera la grilla del día marcando como no disponibles los slots
// cuya etiqueta aparece en unavailable. Es pura y determinista: puede
// llamarse cualquier cantidad de veces con el mismo resultado.
func Grid(unavailable []string) []Slot {
	taken := make(map[string]struct{}, len(unavailable))
	for _, label := range unavailable {
		taken[label] = struct{}{}
	}

	slots := make([]Slot, 0, EndHour-StartHour+1)
	for hour := StartHour; hour <= EndHour; hour++ {
		label := Label(hour)
		_, isTaken := taken[label]
		slots = append(slots, Slot{
			ID:        fmt.Sprintf("%d-00", hour),
			Time:      label,
			Available: !isTaken,
		})
	}
	return slots
}
