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

// IProductRepository define el acceso a datos de productos.
type IProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository() IProductRepository {
	return &ProductRepository{db: configs.GetDB()}
}

func (r *ProductRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.getDB(ctx).Preload("Category").Order("name").Find(&products).Error
	if err != nil {
		configslog.Log.Error("ProductRepository.FindAll: error de BD", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// FindByCategoryName trae los productos de una categoría buscada por su
// nombre exacto. Es la consulta de las vistas de bienes del inventario.
func (r *ProductRepository) FindByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error) {
	if categoryName == "" {
		return nil, errors.New("el nombre de la categoría es obligatorio")
	}
	var products []models.Product
	err := r.getDB(ctx).
		Joins("JOIN categories ON categories.id = products.category_id AND categories.deleted_at IS NULL").
		Where("categories.name = ?", categoryName).
		Preload("Category").
		Order("products.name").
		Find(&products).Error
	if err != nil {
		configslog.Log.Error("ProductRepository.FindByCategoryName: error de BD",
			zap.String("category", categoryName), zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 {
		return nil, errors.New("ID de producto inválido")
	}
	var product models.Product
	err := r.getDB(ctx).Preload("Category").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProductRepository.FindByID: error de BD", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product == nil {
		return errors.New("producto inválido")
	}
	return r.getDB(ctx).Create(product).Error
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return errors.New("producto inválido para actualizar")
	}
	return r.getDB(ctx).Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return errors.New("producto inválido para eliminar")
	}
	return r.getDB(ctx).Delete(product).Error
}

var _ IProductRepository = (*ProductRepository)(nil)
