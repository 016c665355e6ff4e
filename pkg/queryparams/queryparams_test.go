package queryparams

import (
	"testing"
	"time"
)

func TestValidateDescartaFechasInvalidas(t *testing.T) {
	p := ListParams{DateFrom: "no-es-fecha", DateTo: "2026/08/27"}
	p.Validate()

	if p.DateFrom != "" || p.DateTo != "" {
		t.Fatalf("las fechas que no parsean deben descartarse: %+v", p)
	}
	if p.HasDateFilter() {
		t.Fatal("sin fechas válidas no hay filtro de fechas")
	}
}

func TestValidateConservaFechasValidas(t *testing.T) {
	p := ListParams{DateFrom: "2026-08-01", DateTo: "2026-08-27"}
	p.Validate()

	if p.DateFrom != "2026-08-01" || p.DateTo != "2026-08-27" {
		t.Fatalf("las fechas válidas deben conservarse: %+v", p)
	}
	if !p.HasDateFilter() {
		t.Fatal("con fechas válidas debe haber filtro de fechas")
	}
}

func TestDateToTimeExclusiveCubreElDiaCompleto(t *testing.T) {
	p := ListParams{DateTo: "2026-08-27"}

	limit, ok := p.DateToTimeExclusive()
	if !ok {
		t.Fatal("se esperaba un límite superior")
	}
	// Una venta a las 23:59 del día "hasta" entra; una del día siguiente no.
	endOfDay := time.Date(2026, 8, 27, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if !endOfDay.Before(limit) {
		t.Fatal("el final del día 'hasta' debe quedar dentro del filtro")
	}
	if nextDay.Before(limit) {
		t.Fatal("el día siguiente debe quedar fuera del filtro")
	}
}

func TestDateFromTimeEsElInicioDelDia(t *testing.T) {
	p := ListParams{DateFrom: "2026-08-01"}

	start, ok := p.DateFromTime()
	if !ok {
		t.Fatal("se esperaba un límite inferior")
	}
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Fatalf("inicio = %v, se esperaba %v", start, want)
	}
}

func TestRangoVacioNoFiltra(t *testing.T) {
	var p ListParams
	if _, ok := p.DateFromTime(); ok {
		t.Fatal("sin 'desde' no hay límite inferior")
	}
	if _, ok := p.DateToTimeExclusive(); ok {
		t.Fatal("sin 'hasta' no hay límite superior")
	}
}
