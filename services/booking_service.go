package services

import (
	"context"
	"io"
	"strings"
	"time"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/proofstore"
	"cancha.link/pkg/realtime"
	"cancha.link/pkg/selection"
	"cancha.link/repositories"

	"go.uber.org/zap"
)

// BookingServiceError son los errores tipificados del escritor de citas.
type BookingServiceError string

func (e BookingServiceError) Error() string { return string(e) }

const (
	ErrBookingCreationFailed BookingServiceError = "error al crear la cita. Por favor intenta de nuevo"
)

// ProofUpload es el comprobante recibido en el formulario. El nombre
// original solo aporta la extensión.
type ProofUpload struct {
	Filename string
	Content  io.Reader
}

// proofSaver y eventPublisher aíslan el almacén y el canal en vivo.
type proofSaver interface {
	Save(bucket, filename string, r io.Reader) (string, error)
}

type eventPublisher interface {
	PublishNewAppointment(ctx context.Context, appt *models.Appointment) error
}

// IBookingService es el escritor de citas del flujo público.
type IBookingService interface {
	CreateAppointment(ctx context.Context, sub selection.Submission, proof *ProofUpload) (*models.Appointment, error)
}

// BookingService implementa IBookingService.
type BookingService struct {
	appointmentRepo repositories.IAppointmentRepository
	proofs          proofSaver
	publisher       eventPublisher
	now             func() time.Time
}

// NewBookingService crea el servicio. El publicador puede ser nil cuando
// Redis no está disponible; la reserva funciona igual sin el canal en vivo.
func NewBookingService(store *proofstore.Store, publisher *realtime.Publisher) IBookingService {
	svc := &BookingService{
		appointmentRepo: repositories.NewAppointmentRepository(),
		proofs:          store,
		now:             time.Now,
	}
	if publisher != nil {
		svc.publisher = publisher
	}
	return svc
}

// CreateAppointment valida el envío, sube el comprobante e inserta la
// cita. El comprobante se sube siempre que venga uno, aunque el pago sea
// en efectivo; solo pago_movil lo exige. La subida es de mejor esfuerzo:
// si falla, la cita se guarda sin referencia. La inserción sí es fatal.
func (s *BookingService) CreateAppointment(ctx context.Context, sub selection.Submission, proof *ProofUpload) (*models.Appointment, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	var proofURL *string
	if proof != nil {
		filename := proofstore.GenerateName(proof.Filename, s.now())
		url, err := s.proofs.Save(proofstore.BucketPaymentProofs, filename, proof.Content)
		if err != nil {
			configslog.Log.Warn("BookingService: fallo al subir el comprobante, la cita sigue sin referencia",
				zap.String("filename", filename), zap.Error(err))
		} else {
			proofURL = &url
		}
	}

	courtID := sub.CourtID
	appointment := &models.Appointment{
		CourtID:          &courtID,
		UserName:         strings.TrimSpace(sub.UserName),
		AppointmentDate:  sub.Date,
		AppointmentTimes: sub.Times,
		PaymentMethod:    sub.PaymentMethod,
		PaymentProofURL:  proofURL,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		configslog.Log.Error("BookingService: fallo al insertar la cita",
			zap.String("user_name", appointment.UserName),
			zap.String("date", appointment.AppointmentDate),
			zap.Error(err))
		return nil, ErrBookingCreationFailed
	}

	if s.publisher != nil {
		if err := s.publisher.PublishNewAppointment(ctx, appointment); err != nil {
			configslog.Log.Warn("BookingService: no se pudo publicar el evento de cita nueva",
				zap.Uint("id", appointment.ID), zap.Error(err))
		}
	}

	configslog.SLog.Infof("Cita creada: %s el %s (%d horarios)",
		appointment.UserName, appointment.AppointmentDate, len(appointment.AppointmentTimes))
	return appointment, nil
}

var _ IBookingService = (*BookingService)(nil)
