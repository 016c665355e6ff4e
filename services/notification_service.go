package services

import (
	"context"
	"time"

	"cancha.link/models"
	"cancha.link/repositories"
)

// FeedLatestSize es cuántas citas recientes muestra el panel desplegable.
const FeedLatestSize = 4

// NotificationFeed es lo que ve la campana del dashboard: el contador de
// citas nuevas desde la última apertura y las últimas citas creadas.
type NotificationFeed struct {
	NewCount int64
	Latest   []models.Appointment
}

// INotificationService arma el feed de notificaciones del dashboard.
type INotificationService interface {
	GetFeed(ctx context.Context, lastSeen time.Time) (NotificationFeed, error)
}

// NotificationService implementa INotificationService.
type NotificationService struct {
	repo repositories.IAppointmentRepository
}

func NewNotificationService() INotificationService {
	return &NotificationService{repo: repositories.NewAppointmentRepository()}
}

// GetFeed cuenta las citas creadas estrictamente después de lastSeen con
// una consulta dedicada sobre toda la colección; el panel desplegable solo
// necesita las últimas. Abrir el panel mueve lastSeen al presente, así que
// el contador vuelve a cero en la siguiente consulta.
func (s *NotificationService) GetFeed(ctx context.Context, lastSeen time.Time) (NotificationFeed, error) {
	newCount, err := s.repo.CountCreatedAfter(ctx, lastSeen)
	if err != nil {
		return NotificationFeed{}, err
	}
	latest, err := s.repo.FindRecent(ctx, FeedLatestSize)
	if err != nil {
		return NotificationFeed{}, err
	}
	return NotificationFeed{NewCount: newCount, Latest: latest}, nil
}

var _ INotificationService = (*NotificationService)(nil)
