// Package calendar arma la grilla mensual del agendador y decide qué
// días son seleccionables.
package calendar

import "time"

// Day es una celda de la grilla mensual.
type Day struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	Selectable     bool
}

// Selectable indica si una fecha puede elegirse: los días estrictamente
// anteriores a hoy (comparación por día de calendario, ignorando la hora)
// no se pueden reservar; hoy sí.
func Selectable(date, today time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(t)
}

// MonthGrid genera las 42 celdas (6 semanas, domingo a sábado) del mes
// visible. Los días fuera del mes actual nunca son seleccionables.
func MonthGrid(month time.Time, selected *time.Time, today time.Time) []Day {
	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))

	days := make([]Day, 0, 42)
	for i := 0; i < 42; i++ {
		date := start.AddDate(0, 0, i)
		inMonth := date.Month() == month.Month()
		day := Day{
			Date:           date,
			IsCurrentMonth: inMonth,
			IsToday:        sameDay(date, today),
			Selectable:     inMonth && Selectable(date, today),
		}
		if selected != nil {
			day.IsSelected = sameDay(date, *selected)
		}
		days = append(days, day)
	}
	return days
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
