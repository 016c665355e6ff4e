package services

import (
	"context"
	"strings"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/repositories"

	"go.uber.org/zap"
)

// ProductServiceError son los errores tipificados del servicio de productos.
type ProductServiceError string

func (e ProductServiceError) Error() string { return string(e) }

const (
	ErrProductNotFound       ProductServiceError = "producto no encontrado"
	ErrProductNameRequired   ProductServiceError = "el nombre del producto es obligatorio"
	ErrProductInvalidPrice   ProductServiceError = "el precio del producto no puede ser negativo"
	ErrProductCreationFailed ProductServiceError = "no se pudo crear el producto"
	ErrProductUpdateFailed   ProductServiceError = "no se pudo actualizar el producto"
	ErrProductDeletionFailed ProductServiceError = "no se pudo eliminar el producto"
	ErrGoodsCategoryMissing  ProductServiceError = "la categoría de bienes no existe; corre los seeders iniciales"
)

type IProductService interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetGoods(ctx context.Context, categoryName string) ([]models.Product, error)
	GetProductByID(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	CreateGood(ctx context.Context, product *models.Product, categoryName string) error
	UpdateProduct(ctx context.Context, id uint, data models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	repo         repositories.IProductRepository
	categoryRepo repositories.ICategoryRepository
}

func NewProductService() IProductService {
	return &ProductService{
		repo:         repositories.NewProductRepository(),
		categoryRepo: repositories.NewCategoryRepository(),
	}
}

func validateProduct(product *models.Product) error {
	if product == nil || strings.TrimSpace(product.Name) == "" {
		return ErrProductNameRequired
	}
	if product.Price < 0 {
		return ErrProductInvalidPrice
	}
	return nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetGoods lista los productos de una categoría reservada de bienes.
func (s *ProductService) GetGoods(ctx context.Context, categoryName string) ([]models.Product, error) {
	return s.repo.FindByCategoryName(ctx, categoryName)
}

// CreateGood crea un producto fijado a su categoría reservada: el
// formulario de bienes no elige categoría, la vista la impone.
func (s *ProductService) CreateGood(ctx context.Context, product *models.Product, categoryName string) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	category, err := s.categoryRepo.FindByName(ctx, categoryName)
	if err != nil {
		if err == repositories.ErrNotFound {
			return ErrGoodsCategoryMissing
		}
		configslog.Log.Error("ProductService.CreateGood: fallo al buscar la categoría",
			zap.String("category", categoryName), zap.Error(err))
		return ErrProductCreationFailed
	}
	product.CategoryID = &category.ID
	return s.CreateProduct(ctx, product)
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	product.Name = strings.TrimSpace(product.Name)
	if err := s.repo.Create(ctx, product); err != nil {
		configslog.Log.Error("ProductService.CreateProduct: fallo al crear", zap.Error(err))
		return ErrProductCreationFailed
	}
	return nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, data models.Product) error {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return err
	}
	if err := validateProduct(&data); err != nil {
		return err
	}
	product.Name = strings.TrimSpace(data.Name)
	product.Description = data.Description
	product.Price = data.Price
	product.CategoryID = data.CategoryID
	if err := s.repo.Update(ctx, product); err != nil {
		configslog.Log.Error("ProductService.UpdateProduct: fallo al actualizar", zap.Uint("id", id), zap.Error(err))
		return ErrProductUpdateFailed
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.GetProductByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, product); err != nil {
		configslog.Log.Error("ProductService.DeleteProduct: fallo al eliminar", zap.Uint("id", id), zap.Error(err))
		return ErrProductDeletionFailed
	}
	return nil
}

var _ IProductService = (*ProductService)(nil)
