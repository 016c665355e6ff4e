package services

import (
	"context"
	"errors"
	"testing"

	"cancha.link/models"
	"cancha.link/repositories"
)

// stubCourtRepo fija la cancha que devuelve el repositorio en pruebas.
type stubCourtRepo struct {
	repositories.ICourtRepository
	court *models.Court
	err   error
}

func (s *stubCourtRepo) FindByID(ctx context.Context, id uint) (*models.Court, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.court, nil
}

func TestGetActiveCourtByIDRechazaCanchaDesactivada(t *testing.T) {
	court := &models.Court{Name: "Cancha 2", Active: false}
	svc := &CourtService{repo: &stubCourtRepo{court: court}}

	// Una cancha desactivada sigue existiendo para el admin, pero el
	// flujo público no debe poder seleccionarla ni por POST directo.
	if _, err := svc.GetActiveCourtByID(context.Background(), 2); !errors.Is(err, ErrCourtNotFound) {
		t.Fatalf("se esperaba ErrCourtNotFound para una cancha desactivada, se obtuvo %v", err)
	}
}

func TestGetActiveCourtByIDDevuelveCanchaActiva(t *testing.T) {
	court := &models.Court{Name: "Cancha 1", Active: true}
	svc := &CourtService{repo: &stubCourtRepo{court: court}}

	got, err := svc.GetActiveCourtByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if got.Name != "Cancha 1" {
		t.Fatalf("cancha = %q, se esperaba Cancha 1", got.Name)
	}
}

func TestGetActiveCourtByIDPropagaNoEncontrada(t *testing.T) {
	svc := &CourtService{repo: &stubCourtRepo{err: repositories.ErrNotFound}}

	if _, err := svc.GetActiveCourtByID(context.Background(), 99); !errors.Is(err, ErrCourtNotFound) {
		t.Fatalf("se esperaba ErrCourtNotFound, se obtuvo %v", err)
	}
}
