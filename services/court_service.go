package services

import (
	"context"
	"strings"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/repositories"

	"go.uber.org/zap"
)

// CourtServiceError son los errores tipificados del servicio de canchas.
type CourtServiceError string

func (e CourtServiceError) Error() string { return string(e) }

const (
	ErrCourtNotFound       CourtServiceError = "cancha no encontrada"
	ErrCourtNameRequired   CourtServiceError = "el nombre de la cancha es obligatorio"
	ErrCourtCreationFailed CourtServiceError = "no se pudo crear la cancha"
	ErrCourtUpdateFailed   CourtServiceError = "no se pudo actualizar la cancha"
	ErrCourtDeletionFailed CourtServiceError = "no se pudo eliminar la cancha"
)

// ICourtService define las operaciones administrativas sobre canchas.
type ICourtService interface {
	GetActiveCourts(ctx context.Context) ([]models.Court, error)
	GetAllCourts(ctx context.Context) ([]models.Court, error)
	GetCourtByID(ctx context.Context, id uint) (*models.Court, error)
	GetActiveCourtByID(ctx context.Context, id uint) (*models.Court, error)
	CreateCourt(ctx context.Context, court *models.Court) error
	UpdateCourt(ctx context.Context, id uint, data models.Court) error
	DeleteCourt(ctx context.Context, id uint) error
}

// CourtService implementa ICourtService.
type CourtService struct {
	repo repositories.ICourtRepository
}

func NewCourtService() ICourtService {
	return &CourtService{repo: repositories.NewCourtRepository()}
}

func (s *CourtService) GetActiveCourts(ctx context.Context) ([]models.Court, error) {
	return s.repo.FindAllActive(ctx)
}

func (s *CourtService) GetAllCourts(ctx context.Context) ([]models.Court, error) {
	return s.repo.FindAll(ctx)
}

func (s *CourtService) GetCourtByID(ctx context.Context, id uint) (*models.Court, error) {
	court, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

// GetActiveCourtByID es la búsqueda del flujo público: una cancha
// desactivada no se ofrece, así que para el agendador no existe.
func (s *CourtService) GetActiveCourtByID(ctx context.Context, id uint) (*models.Court, error) {
	court, err := s.GetCourtByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !court.Active {
		return nil, ErrCourtNotFound
	}
	return court, nil
}

func (s *CourtService) CreateCourt(ctx context.Context, court *models.Court) error {
	if court == nil || strings.TrimSpace(court.Name) == "" {
		return ErrCourtNameRequired
	}
	court.Name = strings.TrimSpace(court.Name)
	if err := s.repo.Create(ctx, court); err != nil {
		configslog.Log.Error("CourtService.CreateCourt: fallo al crear", zap.Error(err))
		return ErrCourtCreationFailed
	}
	configslog.SLog.Infof("Cancha creada: %s (ID: %d)", court.Name, court.ID)
	return nil
}

func (s *CourtService) UpdateCourt(ctx context.Context, id uint, data models.Court) error {
	court, err := s.GetCourtByID(ctx, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(data.Name) == "" {
		return ErrCourtNameRequired
	}
	court.Name = strings.TrimSpace(data.Name)
	court.Location = data.Location
	court.Description = data.Description
	court.Active = data.Active
	if err := s.repo.Update(ctx, court); err != nil {
		configslog.Log.Error("CourtService.UpdateCourt: fallo al actualizar", zap.Uint("id", id), zap.Error(err))
		return ErrCourtUpdateFailed
	}
	return nil
}

func (s *CourtService) DeleteCourt(ctx context.Context, id uint) error {
	court, err := s.GetCourtByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, court); err != nil {
		configslog.Log.Error("CourtService.DeleteCourt: fallo al eliminar", zap.Uint("id", id), zap.Error(err))
		return ErrCourtDeletionFailed
	}
	configslog.SLog.Infof("Cancha eliminada: %s (ID: %d)", court.Name, court.ID)
	return nil
}

var _ ICourtService = (*CourtService)(nil)
