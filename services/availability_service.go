package services

import (
	"context"
	"sort"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/timeslot"
	"cancha.link/repositories"

	"go.uber.org/zap"
)

// IAvailabilityService resuelve la disponibilidad de horarios por cancha y fecha.
type IAvailabilityService interface {
	SlotGrid(ctx context.Context, courtID uint, date string) ([]timeslot.Slot, error)
	OccupiedTimes(ctx context.Context, courtID uint, date string) ([]string, error)
}

// AvailabilityService implementa IAvailabilityService.
type AvailabilityService struct {
	appointmentRepo repositories.IAppointmentRepository
}

func NewAvailabilityService() IAvailabilityService {
	return &AvailabilityService{appointmentRepo: repositories.NewAppointmentRepository()}
}

// OccupiedSet une los horarios de todas las citas recibidas, sin duplicados
// y en orden lexicográfico. No distingue qué cita ocupa cada horario.
func OccupiedSet(appointments []models.Appointment) []string {
	seen := make(map[string]struct{})
	for _, appointment := range appointments {
		for _, t := range appointment.AppointmentTimes {
			seen[t] = struct{}{}
		}
	}
	occupied := make([]string, 0, len(seen))
	for t := range seen {
		occupied = append(occupied, t)
	}
	sort.Strings(occupied)
	return occupied
}

// OccupiedTimes consulta las citas no canceladas de la pareja (cancha, fecha)
// y devuelve la unión de sus horarios. Falla abierto: con error de consulta
// la unión queda vacía (todos los horarios aparecen libres) y el error se
// devuelve para que la vista muestre la advertencia.
func (s *AvailabilityService) OccupiedTimes(ctx context.Context, courtID uint, date string) ([]string, error) {
	if courtID == 0 || date == "" {
		return nil, nil
	}
	appointments, err := s.appointmentRepo.FindActiveByCourtAndDate(ctx, courtID, date)
	if err != nil {
		configslog.Log.Error("AvailabilityService.OccupiedTimes: consulta fallida, se asume todo libre",
			zap.Uint("court_id", courtID), zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return OccupiedSet(appointments), nil
}

// SlotGrid arma la grilla de horarios de la tarde con la disponibilidad
// resuelta para la pareja (cancha, fecha). Con error de consulta la grilla
// sale completa y libre, junto con el error.
func (s *AvailabilityService) SlotGrid(ctx context.Context, courtID uint, date string) ([]timeslot.Slot, error) {
	occupied, err := s.OccupiedTimes(ctx, courtID, date)
	return timeslot.Grid(occupied), err
}

var _ IAvailabilityService = (*AvailabilityService)(nil)
