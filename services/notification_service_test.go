package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cancha.link/models"
	"cancha.link/repositories"
)

// stubFeedRepo registra los argumentos de las consultas del feed.
type stubFeedRepo struct {
	repositories.IAppointmentRepository
	count       int64
	countErr    error
	recent      []models.Appointment
	gotLastSeen time.Time
	gotLimit    int
}

func (s *stubFeedRepo) CountCreatedAfter(ctx context.Context, lastSeen time.Time) (int64, error) {
	s.gotLastSeen = lastSeen
	return s.count, s.countErr
}

func (s *stubFeedRepo) FindRecent(ctx context.Context, limit int) ([]models.Appointment, error) {
	s.gotLimit = limit
	return s.recent, nil
}

func TestGetFeedCuentaSobreTodaLaColeccion(t *testing.T) {
	// El contador sale de una consulta dedicada: no se topa con el tamaño
	// del panel desplegable aunque haya muchas más citas nuevas.
	repo := &stubFeedRepo{
		count:  120,
		recent: make([]models.Appointment, FeedLatestSize),
	}
	svc := &NotificationService{repo: repo}

	feed, err := svc.GetFeed(context.Background(), time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if feed.NewCount != 120 {
		t.Fatalf("NewCount = %d, se esperaba 120", feed.NewCount)
	}
	if len(feed.Latest) != FeedLatestSize {
		t.Fatalf("Latest tiene %d citas, se esperaba %d", len(feed.Latest), FeedLatestSize)
	}
}

func TestGetFeedPasaLastSeenYElTamanoDelPanel(t *testing.T) {
	repo := &stubFeedRepo{}
	svc := &NotificationService{repo: repo}

	lastSeen := time.Date(2026, 8, 27, 18, 0, 0, 0, time.UTC)
	if _, err := svc.GetFeed(context.Background(), lastSeen); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !repo.gotLastSeen.Equal(lastSeen) {
		t.Fatalf("el conteo debe usar el lastSeen recibido, se usó %v", repo.gotLastSeen)
	}
	if repo.gotLimit != FeedLatestSize {
		t.Fatalf("el panel pide %d citas, se pidieron %d", FeedLatestSize, repo.gotLimit)
	}
}

func TestGetFeedAperturaReiniciaContador(t *testing.T) {
	repo := &stubFeedRepo{count: 3}
	svc := &NotificationService{repo: repo}

	before, _ := svc.GetFeed(context.Background(), time.Now().Add(-time.Hour))
	if before.NewCount != 3 {
		t.Fatalf("antes de abrir se esperaban 3 nuevas, se obtuvo %d", before.NewCount)
	}

	// Abrir el panel mueve lastSeen al presente y nada es posterior.
	repo.count = 0
	after, _ := svc.GetFeed(context.Background(), time.Now())
	if after.NewCount != 0 {
		t.Fatalf("después de abrir se esperaban 0 nuevas, se obtuvo %d", after.NewCount)
	}
}

func TestGetFeedPropagaErrorDeConteo(t *testing.T) {
	repo := &stubFeedRepo{countErr: errors.New("conexión perdida")}
	svc := &NotificationService{repo: repo}

	if _, err := svc.GetFeed(context.Background(), time.Now()); err == nil {
		t.Fatal("el error de conteo debe propagarse al handler")
	}
}
