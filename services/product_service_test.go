package services

import (
	"context"
	"errors"
	"testing"

	"cancha.link/models"
	"cancha.link/repositories"
)

type recordingProductRepo struct {
	repositories.IProductRepository
	created *models.Product
}

func (r *recordingProductRepo) Create(ctx context.Context, product *models.Product) error {
	r.created = product
	return nil
}

type stubCategoryRepo struct {
	repositories.ICategoryRepository
	category *models.Category
	err      error
}

func (s *stubCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func TestCreateGoodFijaLaCategoriaReservada(t *testing.T) {
	category := &models.Category{Name: models.CategoryOwnGoods}
	category.ID = 5
	repo := &recordingProductRepo{}
	svc := &ProductService{repo: repo, categoryRepo: &stubCategoryRepo{category: category}}

	good := &models.Product{Name: "Raqueta", Price: 40}
	if err := svc.CreateGood(context.Background(), good, models.CategoryOwnGoods); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// El formulario de bienes no elige categoría: la vista la impone.
	if good.CategoryID == nil || *good.CategoryID != 5 {
		t.Fatalf("el bien debe quedar fijado a la categoría reservada, CategoryID = %v", good.CategoryID)
	}
	if repo.created == nil {
		t.Fatal("el bien debe insertarse")
	}
}

func TestCreateGoodSinCategoriaReservada(t *testing.T) {
	repo := &recordingProductRepo{}
	svc := &ProductService{repo: repo, categoryRepo: &stubCategoryRepo{err: repositories.ErrNotFound}}

	good := &models.Product{Name: "Raqueta"}
	if err := svc.CreateGood(context.Background(), good, models.CategoryStateGoods); !errors.Is(err, ErrGoodsCategoryMissing) {
		t.Fatalf("se esperaba ErrGoodsCategoryMissing, se obtuvo %v", err)
	}
	if repo.created != nil {
		t.Fatal("sin categoría reservada no debe insertarse nada")
	}
}

func TestCreateGoodValidaElNombre(t *testing.T) {
	svc := &ProductService{repo: &recordingProductRepo{}, categoryRepo: &stubCategoryRepo{}}

	if err := svc.CreateGood(context.Background(), &models.Product{Name: "  "}, models.CategoryOwnGoods); !errors.Is(err, ErrProductNameRequired) {
		t.Fatalf("se esperaba ErrProductNameRequired, se obtuvo %v", err)
	}
}
