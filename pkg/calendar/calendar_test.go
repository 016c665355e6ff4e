package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSelectable(t *testing.T) {
	today := date(2025, time.June, 10)

	if Selectable(date(2025, time.June, 9), today) {
		t.Error("ayer no debe ser seleccionable")
	}
	if !Selectable(today, today) {
		t.Error("hoy debe ser seleccionable")
	}
	if !Selectable(date(2025, time.June, 11), today) {
		t.Error("mañana debe ser seleccionable")
	}
	// La hora del día no cambia la comparación.
	lateToday := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	if !Selectable(date(2025, time.June, 10), lateToday) {
		t.Error("hoy debe seguir siendo seleccionable aunque ya sea tarde")
	}
}

func TestMonthGrid(t *testing.T) {
	today := date(2025, time.June, 10)
	sel := date(2025, time.June, 15)
	days := MonthGrid(date(2025, time.June, 1), &sel, today)

	if len(days) != 42 {
		t.Fatalf("la grilla debe tener 42 celdas, tiene %d", len(days))
	}
	// Junio de 2025 empieza un domingo: la primera celda es el día 1.
	if days[0].Date.Day() != 1 || !days[0].IsCurrentMonth {
		t.Fatalf("primera celda inesperada: %v", days[0].Date)
	}

	var selectedCount, todayCount int
	for _, d := range days {
		if d.IsSelected {
			selectedCount++
		}
		if d.IsToday {
			todayCount++
		}
		if !d.IsCurrentMonth && d.Selectable {
			t.Errorf("día fuera del mes marcado como seleccionable: %v", d.Date)
		}
		if d.IsCurrentMonth && d.Date.Day() < 10 && d.Selectable {
			t.Errorf("día pasado marcado como seleccionable: %v", d.Date)
		}
	}
	if selectedCount != 1 {
		t.Errorf("debe haber exactamente un día seleccionado, hay %d", selectedCount)
	}
	if todayCount != 1 {
		t.Errorf("debe haber exactamente un día marcado como hoy, hay %d", todayCount)
	}
}
