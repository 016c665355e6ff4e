package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"cancha.link/models"
	"cancha.link/pkg/selection"
	"cancha.link/repositories"
)

type recordingAppointmentRepo struct {
	repositories.IAppointmentRepository
	created *models.Appointment
	err     error
}

func (r *recordingAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if r.err != nil {
		return r.err
	}
	appointment.ID = 7
	r.created = appointment
	return nil
}

type memProofSaver struct {
	calls    int
	bucket   string
	filename string
	url      string
	err      error
}

func (m *memProofSaver) Save(bucket, filename string, _ io.Reader) (string, error) {
	m.calls++
	m.bucket = bucket
	m.filename = filename
	if m.err != nil {
		return "", m.err
	}
	return m.url, nil
}

type recordingPublisher struct {
	published *models.Appointment
	err       error
}

func (p *recordingPublisher) PublishNewAppointment(ctx context.Context, appt *models.Appointment) error {
	p.published = appt
	return p.err
}

func validSubmission() selection.Submission {
	return selection.Submission{
		State: selection.State{
			Date:    "2026-09-01",
			CourtID: 3,
			Times:   []string{"4:00pm", "7:00pm"},
		},
		UserName:      "María Pérez",
		PaymentMethod: models.PaymentMethodEfectivo,
	}
}

func TestCreateAppointmentEnvioInvalido(t *testing.T) {
	repo := &recordingAppointmentRepo{}
	svc := &BookingService{appointmentRepo: repo, now: time.Now}

	sub := validSubmission()
	sub.UserName = ""
	_, err := svc.CreateAppointment(context.Background(), sub, nil)
	if !errors.Is(err, selection.ErrNameRequired) {
		t.Fatalf("se esperaba ErrNameRequired, se obtuvo %v", err)
	}
	if repo.created != nil {
		t.Fatal("un envío inválido no debe llegar al repositorio")
	}
}

func TestCreateAppointmentEfectivoSinComprobante(t *testing.T) {
	repo := &recordingAppointmentRepo{}
	proofs := &memProofSaver{url: "/uploads/payment-proofs/x.png"}
	svc := &BookingService{appointmentRepo: repo, proofs: proofs, now: time.Now}

	appt, err := svc.CreateAppointment(context.Background(), validSubmission(), nil)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if proofs.calls != 0 {
		t.Fatal("sin comprobante adjunto no hay nada que subir")
	}
	if appt.PaymentProofURL != nil {
		t.Fatalf("se esperaba cita sin comprobante, tiene %q", *appt.PaymentProofURL)
	}
	if appt.CourtID == nil || *appt.CourtID != 3 {
		t.Fatal("la cita debe conservar la cancha seleccionada")
	}
}

func TestCreateAppointmentEfectivoConComprobanteTambienLoSube(t *testing.T) {
	repo := &recordingAppointmentRepo{}
	proofs := &memProofSaver{url: "/uploads/payment-proofs/payment-proof-2.jpg"}
	svc := &BookingService{appointmentRepo: repo, proofs: proofs, now: time.Now}

	// El comprobante es opcional con efectivo, pero si el cliente lo
	// adjunta se guarda igual que con pago móvil.
	proof := &ProofUpload{Filename: "recibo.jpg", Content: strings.NewReader("imagen")}
	appt, err := svc.CreateAppointment(context.Background(), validSubmission(), proof)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if proofs.calls != 1 {
		t.Fatalf("el comprobante adjunto debe subirse, Save se llamó %d veces", proofs.calls)
	}
	if appt.PaymentProofURL == nil || *appt.PaymentProofURL != proofs.url {
		t.Fatal("la cita en efectivo debe conservar la URL del comprobante subido")
	}
}

func TestCreateAppointmentPagoMovilSubeComprobante(t *testing.T) {
	repo := &recordingAppointmentRepo{}
	proofs := &memProofSaver{url: "/uploads/payment-proofs/payment-proof-1.png"}
	fixed := time.UnixMilli(1756300000000)
	svc := &BookingService{appointmentRepo: repo, proofs: proofs, now: func() time.Time { return fixed }}

	sub := validSubmission()
	sub.PaymentMethod = models.PaymentMethodPagoMovil
	sub.HasProof = true
	proof := &ProofUpload{Filename: "Captura.PNG", Content: strings.NewReader("imagen")}

	appt, err := svc.CreateAppointment(context.Background(), sub, proof)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	wantName := "payment-proof-1756300000000.png"
	if proofs.filename != wantName {
		t.Fatalf("nombre del comprobante = %q, se esperaba %q", proofs.filename, wantName)
	}
	if appt.PaymentProofURL == nil || *appt.PaymentProofURL != proofs.url {
		t.Fatal("la cita debe guardar la URL del comprobante subido")
	}
}

func TestCreateAppointmentComprobanteFallaPeroCitaSeGuarda(t *testing.T) {
	repo := &recordingAppointmentRepo{}
	proofs := &memProofSaver{err: errors.New("bucket inaccesible")}
	svc := &BookingService{appointmentRepo: repo, proofs: proofs, now: time.Now}

	sub := validSubmission()
	sub.PaymentMethod = models.PaymentMethodPagoMovil
	sub.HasProof = true
	proof := &ProofUpload{Filename: "captura.jpg", Content: strings.NewReader("imagen")}

	appt, err := svc.CreateAppointment(context.Background(), sub, proof)
	if err != nil {
		t.Fatalf("la subida fallida no debe impedir la cita: %v", err)
	}
	if appt.PaymentProofURL != nil {
		t.Fatal("con subida fallida la cita queda sin referencia de comprobante")
	}
	if repo.created == nil {
		t.Fatal("la cita debe insertarse igual")
	}
}

func TestCreateAppointmentInsercionFatal(t *testing.T) {
	repo := &recordingAppointmentRepo{err: errors.New("conexión perdida")}
	svc := &BookingService{appointmentRepo: repo, now: time.Now}

	_, err := svc.CreateAppointment(context.Background(), validSubmission(), nil)
	if !errors.Is(err, ErrBookingCreationFailed) {
		t.Fatalf("se esperaba ErrBookingCreationFailed, se obtuvo %v", err)
	}
}

func TestCreateAppointmentPublicacionNoFatal(t *testing.T) {
	repo := &recordingAppointmentRepo{}
	pub := &recordingPublisher{err: errors.New("redis caído")}
	svc := &BookingService{appointmentRepo: repo, publisher: pub, now: time.Now}

	appt, err := svc.CreateAppointment(context.Background(), validSubmission(), nil)
	if err != nil {
		t.Fatalf("el fallo del canal en vivo no debe afectar la reserva: %v", err)
	}
	if pub.published == nil || pub.published.ID != appt.ID {
		t.Fatal("el evento debe intentarse con la cita insertada")
	}
}
