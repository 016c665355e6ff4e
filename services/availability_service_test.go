package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cancha.link/models"
	"cancha.link/repositories"
)

func TestOccupiedSetUnionSinDuplicados(t *testing.T) {
	appointments := []models.Appointment{
		{AppointmentTimes: []string{"4:00pm", "5:00pm"}},
		{AppointmentTimes: []string{"5:00pm", "9:00pm"}},
		{AppointmentTimes: []string{"12:00am"}},
	}

	got := OccupiedSet(appointments)
	want := []string{"12:00am", "4:00pm", "5:00pm", "9:00pm"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OccupiedSet = %v, se esperaba %v", got, want)
	}
}

func TestOccupiedSetSinCitas(t *testing.T) {
	if got := OccupiedSet(nil); len(got) != 0 {
		t.Fatalf("sin citas se esperaba unión vacía, se obtuvo %v", got)
	}
}

// stubAppointmentRepo permite fijar la respuesta del resolutor en pruebas.
type stubAppointmentRepo struct {
	repositories.IAppointmentRepository
	appointments []models.Appointment
	err          error
}

func (s *stubAppointmentRepo) FindActiveByCourtAndDate(ctx context.Context, courtID uint, date string) ([]models.Appointment, error) {
	return s.appointments, s.err
}

func TestOccupiedTimesConCitasActivas(t *testing.T) {
	svc := &AvailabilityService{appointmentRepo: &stubAppointmentRepo{
		appointments: []models.Appointment{
			{AppointmentTimes: []string{"7:00pm"}},
			{AppointmentTimes: []string{"4:00pm", "7:00pm"}},
		},
	}}

	got, err := svc.OccupiedTimes(context.Background(), 1, "2026-09-01")
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	want := []string{"4:00pm", "7:00pm"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OccupiedTimes = %v, se esperaba %v", got, want)
	}
}

func TestOccupiedTimesFallaAbierto(t *testing.T) {
	svc := &AvailabilityService{appointmentRepo: &stubAppointmentRepo{
		err: errors.New("conexión perdida"),
	}}

	got, err := svc.OccupiedTimes(context.Background(), 1, "2026-09-01")
	if err == nil {
		t.Fatal("el error de consulta debe devolverse para la advertencia de la vista")
	}
	if len(got) != 0 {
		t.Fatalf("con error de consulta todos los horarios deben verse libres, se obtuvo %v", got)
	}
}

func TestOccupiedTimesParametrosIncompletos(t *testing.T) {
	svc := &AvailabilityService{appointmentRepo: &stubAppointmentRepo{
		appointments: []models.Appointment{{AppointmentTimes: []string{"4:00pm"}}},
	}}

	if got, err := svc.OccupiedTimes(context.Background(), 0, "2026-09-01"); got != nil || err != nil {
		t.Fatalf("sin cancha no debe consultarse nada, se obtuvo %v (%v)", got, err)
	}
	if got, err := svc.OccupiedTimes(context.Background(), 1, ""); got != nil || err != nil {
		t.Fatalf("sin fecha no debe consultarse nada, se obtuvo %v (%v)", got, err)
	}
}

func TestSlotGridMarcaOcupados(t *testing.T) {
	svc := &AvailabilityService{appointmentRepo: &stubAppointmentRepo{
		appointments: []models.Appointment{{AppointmentTimes: []string{"4:00pm", "12:00am"}}},
	}}

	grid, err := svc.SlotGrid(context.Background(), 2, "2026-09-01")
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(grid) != 9 {
		t.Fatalf("la grilla debe tener 9 horarios, tiene %d", len(grid))
	}
	for _, slot := range grid {
		occupied := slot.Time == "4:00pm" || slot.Time == "12:00am"
		if slot.Available == occupied {
			t.Errorf("horario %s: Available=%v no corresponde", slot.Time, slot.Available)
		}
	}
}
