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

// ICategoryRepository define el acceso a datos de categorías.
type ICategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, category *models.Category) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository() ICategoryRepository {
	return &CategoryRepository{db: configs.GetDB()}
}

func (r *CategoryRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.getDB(ctx).Order("name").Find(&categories).Error
	if err != nil {
		configslog.Log.Error("CategoryRepository.FindAll: error de BD", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	if id == 0 {
		return nil, errors.New("ID de categoría inválido")
	}
	var category models.Category
	err := r.getDB(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CategoryRepository.FindByID: error de BD", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

// FindByName busca una categoría por su nombre exacto. Las vistas de
// bienes resuelven así sus categorías reservadas.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, errors.New("el nombre de la categoría es obligatorio")
	}
	var category models.Category
	err := r.getDB(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CategoryRepository.FindByName: error de BD", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category == nil {
		return errors.New("categoría inválida")
	}
	return r.getDB(ctx).Create(category).Error
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if category == nil || category.ID == 0 {
		return errors.New("categoría inválida para actualizar")
	}
	return r.getDB(ctx).Save(category).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, category *models.Category) error {
	if category == nil || category.ID == 0 {
		return errors.New("categoría inválida para eliminar")
	}
	return r.getDB(ctx).Delete(category).Error
}

var _ ICategoryRepository = (*CategoryRepository)(nil)
