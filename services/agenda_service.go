package services

import (
	"context"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/proofstore"
	"cancha.link/pkg/queryparams"
	"cancha.link/repositories"

	"go.uber.org/zap"
)

// AgendaServiceError son los errores tipificados de la Agenda.
type AgendaServiceError string

func (e AgendaServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound     AgendaServiceError = "cita no encontrada"
	ErrInvalidStatus           AgendaServiceError = "estado de cita inválido"
	ErrAppointmentUpdateFailed AgendaServiceError = "no se pudo actualizar la cita"
	ErrAppointmentDeleteFailed AgendaServiceError = "no se pudo eliminar la cita"
)

// AppointmentDetail es la cita con su comprobante resuelto para la vista
// de detalle.
type AppointmentDetail struct {
	models.Appointment
	ProofURL string
	HasProof bool
}

// IAgendaService son las operaciones administrativas sobre la agenda.
type IAgendaService interface {
	GetAppointmentsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetAppointmentDetail(ctx context.Context, id uint) (*AppointmentDetail, error)
	GetStats(ctx context.Context) (repositories.AgendaStats, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	DeleteAppointment(ctx context.Context, id uint) error
}

// AgendaService implementa IAgendaService.
type AgendaService struct {
	repo   repositories.IAppointmentRepository
	proofs *proofstore.Store
}

func NewAgendaService(proofs *proofstore.Store) IAgendaService {
	return &AgendaService{
		repo:   repositories.NewAppointmentRepository(),
		proofs: proofs,
	}
}

// GetAppointmentsPaginated lista la agenda con búsqueda y paginación.
func (s *AgendaService) GetAppointmentsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	appointments, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	totalPages := queryparams.CalculateTotalPages(totalCount, params.PerPage)
	if params.Page > totalPages && totalPages > 0 {
		params.Page = totalPages
	}
	return &queryparams.PaginatedResult{
		Data: appointments,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  totalPages,
		},
	}, nil
}

// GetAppointmentDetail trae la cita y resuelve la URL del comprobante en
// el almacén. Un comprobante ausente no es un error.
func (s *AgendaService) GetAppointmentDetail(ctx context.Context, id uint) (*AppointmentDetail, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	detail := &AppointmentDetail{Appointment: *appointment}
	if s.proofs != nil && appointment.PaymentProofURL != nil {
		if url, ok := s.proofs.Lookup(proofstore.BucketPaymentProofs, *appointment.PaymentProofURL); ok {
			detail.ProofURL = url
			detail.HasProof = true
		}
	}
	return detail, nil
}

func (s *AgendaService) GetStats(ctx context.Context) (repositories.AgendaStats, error) {
	return s.repo.Stats(ctx)
}

// UpdateStatus cambia el estado administrativo de la cita. Solo acepta el
// vocabulario conocido.
func (s *AgendaService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if err == repositories.ErrNotFound {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("AgendaService.UpdateStatus: fallo al actualizar",
			zap.Uint("id", id), zap.String("status", status), zap.Error(err))
		return ErrAppointmentUpdateFailed
	}
	configslog.SLog.Infof("Cita %d marcada como %s", id, status)
	return nil
}

func (s *AgendaService) DeleteAppointment(ctx context.Context, id uint) error {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return ErrAppointmentNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, appointment); err != nil {
		configslog.Log.Error("AgendaService.DeleteAppointment: fallo al eliminar",
			zap.Uint("id", id), zap.Error(err))
		return ErrAppointmentDeleteFailed
	}
	return nil
}

var _ IAgendaService = (*AgendaService)(nil)
