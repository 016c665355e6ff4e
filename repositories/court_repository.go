package repositories

import (
	"context"
	"errors"

	"cancha.link/configs"
	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICourtRepository define el acceso a datos de canchas.
type ICourtRepository interface {
	FindAllActive(ctx context.Context) ([]models.Court, error)
	FindAll(ctx context.Context) ([]models.Court, error)
	FindByID(ctx context.Context, id uint) (*models.Court, error)
	Create(ctx context.Context, court *models.Court) error
	Update(ctx context.Context, court *models.Court) error
	Delete(ctx context.Context, court *models.Court) error
}

// CourtRepository implementa ICourtRepository sobre GORM.
type CourtRepository struct {
	db *gorm.DB
}

// NewCourtRepository crea el repositorio con la conexión global.
func NewCourtRepository() ICourtRepository {
	return &CourtRepository{db: configs.GetDB()}
}

// NewCourtRepositoryTx crea el repositorio sobre una transacción.
func NewCourtRepositoryTx(tx *gorm.DB) ICourtRepository {
	return &CourtRepository{db: tx}
}

func (r *CourtRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAllActive devuelve solo las canchas ofrecibles, ordenadas por nombre.
func (r *CourtRepository) FindAllActive(ctx context.Context) ([]models.Court, error) {
	var courts []models.Court
	err := r.getDB(ctx).Where("active = ?", true).Order("name").Find(&courts).Error
	if err != nil {
		configslog.Log.Error("CourtRepository.FindAllActive: error de BD", zap.Error(err))
		return nil, err
	}
	return courts, nil
}

// FindAll devuelve todas las canchas (activas o no) para el dashboard.
func (r *CourtRepository) FindAll(ctx context.Context) ([]models.Court, error) {
	var courts []models.Court
	err := r.getDB(ctx).Order("name").Find(&courts).Error
	if err != nil {
		configslog.Log.Error("CourtRepository.FindAll: error de BD", zap.Error(err))
		return nil, err
	}
	return courts, nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uint) (*models.Court, error) {
	if id == 0 {
		return nil, errors.New("ID de cancha inválido")
	}
	var court models.Court
	err := r.getDB(ctx).First(&court, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CourtRepository.FindByID: error de BD", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &court, nil
}

func (r *CourtRepository) Create(ctx context.Context, court *models.Court) error {
	if court == nil {
		return errors.New("cancha inválida")
	}
	return r.getDB(ctx).Create(court).Error
}

func (r *CourtRepository) Update(ctx context.Context, court *models.Court) error {
	if court == nil || court.ID == 0 {
		return errors.New("cancha inválida para actualizar")
	}
	return r.getDB(ctx).Save(court).Error
}

// Delete hace borrado suave; las citas existentes conservan su referencia.
func (r *CourtRepository) Delete(ctx context.Context, court *models.Court) error {
	if court == nil || court.ID == 0 {
		return errors.New("cancha inválida para eliminar")
	}
	return r.getDB(ctx).Delete(court).Error
}

var _ ICourtRepository = (*CourtRepository)(nil)
