package services

import (
	"context"
	"strings"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/repositories"

	"go.uber.org/zap"
)

// CategoryServiceError son los errores tipificados del servicio de categorías.
type CategoryServiceError string

func (e CategoryServiceError) Error() string { return string(e) }

const (
	ErrCategoryNotFound       CategoryServiceError = "categoría no encontrada"
	ErrCategoryNameRequired   CategoryServiceError = "el nombre de la categoría es obligatorio"
	ErrCategoryCreationFailed CategoryServiceError = "no se pudo crear la categoría"
	ErrCategoryUpdateFailed   CategoryServiceError = "no se pudo actualizar la categoría"
	ErrCategoryDeletionFailed CategoryServiceError = "no se pudo eliminar la categoría"
)

type ICategoryService interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id uint, data models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryService struct {
	repo repositories.ICategoryRepository
}

func NewCategoryService() ICategoryService {
	return &CategoryService{repo: repositories.NewCategoryRepository()}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	if category == nil || strings.TrimSpace(category.Name) == "" {
		return ErrCategoryNameRequired
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := s.repo.Create(ctx, category); err != nil {
		configslog.Log.Error("CategoryService.CreateCategory: fallo al crear", zap.Error(err))
		return ErrCategoryCreationFailed
	}
	return nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, data models.Category) error {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(data.Name) == "" {
		return ErrCategoryNameRequired
	}
	category.Name = strings.TrimSpace(data.Name)
	category.Description = data.Description
	if err := s.repo.Update(ctx, category); err != nil {
		configslog.Log.Error("CategoryService.UpdateCategory: fallo al actualizar", zap.Uint("id", id), zap.Error(err))
		return ErrCategoryUpdateFailed
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, category); err != nil {
		configslog.Log.Error("CategoryService.DeleteCategory: fallo al eliminar", zap.Uint("id", id), zap.Error(err))
		return ErrCategoryDeletionFailed
	}
	return nil
}

var _ ICategoryService = (*CategoryService)(nil)
