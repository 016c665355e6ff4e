package selection

import (
	"reflect"
	"testing"

	"cancha.link/models"
)

func TestDateChosenResetsCourtAndTimes(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 3, Times: []string{"5:00pm", "6:00pm"}, Token: "tok"}
	s = Apply(s, DateChosen{Date: "2025-06-11"})

	if s.Date != "2025-06-11" {
		t.Errorf("fecha = %q", s.Date)
	}
	if s.CourtID != 0 || len(s.Times) != 0 || s.Token != "" {
		t.Errorf("cambiar la fecha debe vaciar cancha, horarios y token: %+v", s)
	}
	if s.Phase() != PhaseDateChosen {
		t.Errorf("fase = %v", s.Phase())
	}
}

func TestCourtChosenResetsTimes(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 1, Times: []string{"5:00pm", "7:00pm", "8:00pm"}, Token: "tok"}
	s = Apply(s, CourtChosen{CourtID: 2})

	if s.Date != "2025-06-10" || s.CourtID != 2 {
		t.Errorf("estado inesperado: %+v", s)
	}
	if len(s.Times) != 0 || s.Token != "" {
		t.Errorf("cambiar la cancha debe vaciar horarios y token: %+v", s)
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 1, Token: "tok", Times: []string{"5:00pm"}}
	before := copyTimes(s.Times)

	s = Apply(s, TimeToggled{Label: "7:00pm", Token: "tok"})
	s = Apply(s, TimeToggled{Label: "7:00pm", Token: "tok"})

	if !reflect.DeepEqual(s.Times, before) {
		t.Errorf("toggle doble debe volver al estado previo: %v vs %v", s.Times, before)
	}
}

func TestToggleKeepsLabelsSorted(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 1, Token: "tok"}
	for _, label := range []string{"7:00pm", "4:00pm", "12:00am", "10:00pm"} {
		s = Apply(s, TimeToggled{Label: label, Token: "tok"})
	}
	// Orden lexicográfico por etiqueta, como en la visualización.
	want := []string{"10:00pm", "12:00am", "4:00pm", "7:00pm"}
	if !reflect.DeepEqual(s.Times, want) {
		t.Errorf("horarios = %v, se esperaba %v", s.Times, want)
	}
}

func TestToggleWithoutSnapshotIsDiscarded(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 1}
	s = Apply(s, TimeToggled{Label: "5:00pm", Token: "cualquiera"})
	if len(s.Times) != 0 {
		t.Error("sin instantánea de disponibilidad no se aceptan toggles")
	}
}

func TestToggleWithStaleTokenIsDiscarded(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 1, Token: "nuevo"}
	s = Apply(s, TimeToggled{Label: "5:00pm", Token: "viejo"})
	if len(s.Times) != 0 {
		t.Error("un toggle con token obsoleto debe descartarse")
	}
}

func TestZeroSlotsKeepsDateAndCourt(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 1, Token: "tok"}
	s = Apply(s, TimeToggled{Label: "5:00pm", Token: "tok"})
	s = Apply(s, TimeToggled{Label: "5:00pm", Token: "tok"})

	if s.Phase() != PhaseCourtChosen {
		t.Errorf("fase = %v, se esperaba PhaseCourtChosen", s.Phase())
	}
	if s.Date == "" || s.CourtID == 0 {
		t.Error("quedarse sin horarios no debe descartar fecha ni cancha")
	}
}

func TestClearedResetsEverything(t *testing.T) {
	s := State{Date: "2025-06-10", CourtID: 1, Times: []string{"5:00pm"}, Token: "tok"}
	s = Apply(s, Cleared{})
	if s.Phase() != PhaseNoDate || s.Date != "" || s.CourtID != 0 || len(s.Times) != 0 {
		t.Errorf("Cleared debe dejar el estado vacío: %+v", s)
	}
}

func TestSubmissionValidate(t *testing.T) {
	base := Submission{
		State:         State{Date: "2025-06-10", CourtID: 1, Times: []string{"7:00pm", "8:00pm"}},
		UserName:      "Ana",
		PaymentMethod: models.PaymentMethodEfectivo,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("envío válido rechazado: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Submission)
		want   error
	}{
		{"sin fecha", func(s *Submission) { s.Date = "" }, ErrIncompleteSelection},
		{"sin cancha", func(s *Submission) { s.CourtID = 0 }, ErrIncompleteSelection},
		{"sin horarios", func(s *Submission) { s.Times = nil }, ErrIncompleteSelection},
		{"sin nombre", func(s *Submission) { s.UserName = "" }, ErrNameRequired},
		{"nombre de puros espacios", func(s *Submission) { s.UserName = "   " }, ErrNameRequired},
		{"sin método", func(s *Submission) { s.PaymentMethod = "" }, ErrPaymentRequired},
		{"método inválido", func(s *Submission) { s.PaymentMethod = "transferencia" }, ErrPaymentRequired},
		{"pago móvil sin comprobante", func(s *Submission) {
			s.PaymentMethod = models.PaymentMethodPagoMovil
			s.HasProof = false
		}, ErrProofRequired},
	}
	for _, tc := range cases {
		sub := base
		sub.Times = copyTimes(base.Times)
		tc.mutate(&sub)
		if err := sub.Validate(); err != tc.want {
			t.Errorf("%s: err = %v, se esperaba %v", tc.name, err, tc.want)
		}
	}

	// Con comprobante, pago móvil pasa la compuerta.
	sub := base
	sub.PaymentMethod = models.PaymentMethodPagoMovil
	sub.HasProof = true
	if err := sub.Validate(); err != nil {
		t.Errorf("pago móvil con comprobante rechazado: %v", err)
	}
}
