package repositories

import (
	"context"
	"errors"
	"time"

	"cancha.link/configs"
	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/queryparams"
	"cancha.link/pkg/spanishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AgendaStats son los contadores de estado de la vista Agenda.
type AgendaStats struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Pending   int64 `json:"pending"`
	Cancelled int64 `json:"cancelled"`
}

// IAppointmentRepository define el acceso a datos de citas.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindActiveByCourtAndDate(ctx context.Context, courtID uint, date string) ([]models.Appointment, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error)
	FindRecent(ctx context.Context, limit int) ([]models.Appointment, error)
	CountCreatedAfter(ctx context.Context, lastSeen time.Time) (int64, error)
	Stats(ctx context.Context) (AgendaStats, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, appointment *models.Appointment) error
}

// AppointmentRepository implementa IAppointmentRepository sobre GORM.
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository crea el repositorio con la conexión global.
func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configs.GetDB()}
}

// NewAppointmentRepositoryTx crea el repositorio sobre una transacción.
func NewAppointmentRepositoryTx(tx *gorm.DB) IAppointmentRepository {
	return &AppointmentRepository{db: tx}
}

func (r *AppointmentRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create inserta una cita nueva. El que llama ya validó el envío.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || len(appointment.AppointmentTimes) == 0 {
		return errors.New("no se puede crear una cita sin horarios")
	}
	return r.getDB(ctx).Create(appointment).Error
}

// FindByID trae la cita con su cancha para la vista de detalle.
func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, errors.New("ID de cita inválido")
	}
	var appointment models.Appointment
	err := r.getDB(ctx).Preload("Court").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: error de BD", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindActiveByCourtAndDate trae las citas no canceladas de la pareja
// exacta (cancha, fecha). Es la consulta del resolutor de disponibilidad.
func (r *AppointmentRepository) FindActiveByCourtAndDate(ctx context.Context, courtID uint, date string) ([]models.Appointment, error) {
	if courtID == 0 || date == "" {
		return nil, errors.New("cancha y fecha son obligatorias")
	}
	var appointments []models.Appointment
	err := r.getDB(ctx).
		Where("court_id = ? AND appointment_date = ?", courtID, date).
		Where("status IS NULL OR status <> ?", models.StatusCancelled).
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindActiveByCourtAndDate: error de BD",
			zap.Uint("court_id", courtID), zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindAllPaginated lista las citas de la Agenda, más recientes primero,
// con búsqueda libre por cliente, método de pago o estado.
func (r *AppointmentRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Appointment{})
	if params.Search != "" {
		fragment, args := spanishsearch.SQLFilterAny(
			[]string{"user_name", "payment_method", "status"}, params.Search)
		query = query.Where(fragment, args...)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("AppointmentRepository.Count: error de BD", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return appointments, 0, nil
	}

	// Solo columnas de la tabla principal; el orden por defecto replica
	// la Agenda original: fecha de cita descendente.
	allowedSortColumns := map[string]string{
		"id":               "id",
		"created_at":       "created_at",
		"appointment_date": "appointment_date",
		"user_name":        "user_name",
		"status":           "status",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "appointment_date"
	}

	err := query.
		Order(orderColumn + " " + params.OrderBy).
		Preload("Court").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindAllPaginated: error de BD", zap.Error(err))
		return nil, totalCount, err
	}
	return appointments, totalCount, nil
}

// FindRecent trae las últimas citas creadas (feed de notificaciones).
func (r *AppointmentRepository) FindRecent(ctx context.Context, limit int) ([]models.Appointment, error) {
	if limit <= 0 {
		limit = 50
	}
	var appointments []models.Appointment
	err := r.getDB(ctx).Preload("Court").Order("created_at desc").Limit(limit).Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindRecent: error de BD", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// CountCreatedAfter cuenta las citas creadas estrictamente después de
// lastSeen, sobre toda la colección. Es el contador de la campana.
func (r *AppointmentRepository) CountCreatedAfter(ctx context.Context, lastSeen time.Time) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).
		Where("created_at > ?", lastSeen).
		Count(&count).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.CountCreatedAfter: error de BD",
			zap.Time("last_seen", lastSeen), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Stats cuenta las citas por estado para las tarjetas de la Agenda.
func (r *AppointmentRepository) Stats(ctx context.Context) (AgendaStats, error) {
	var stats AgendaStats
	db := r.getDB(ctx).Model(&models.Appointment{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	counts := []struct {
		status string
		dest   *int64
	}{
		{models.StatusConfirmed, &stats.Confirmed},
		{models.StatusPending, &stats.Pending},
		{models.StatusCancelled, &stats.Cancelled},
	}
	for _, c := range counts {
		if err := r.getDB(ctx).Model(&models.Appointment{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// UpdateStatus cambia solo el estado administrativo de la cita.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if id == 0 {
		return errors.New("ID de cita inválido")
	}
	result := r.getDB(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.UpdateStatus: error de BD", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete hace borrado suave de la cita (acción explícita del admin).
func (r *AppointmentRepository) Delete(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("cita inválida para eliminar")
	}
	return r.getDB(ctx).Delete(appointment).Error
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
