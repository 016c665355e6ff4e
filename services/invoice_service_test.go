package services

import (
	"context"
	"errors"
	"testing"

	"cancha.link/models"
	"cancha.link/pkg/queryparams"
	"cancha.link/repositories"
)

func catalogForTest() map[uint]models.Product {
	pelota := models.Product{Name: "Pelota de pádel", Description: "Tubo x3", Price: 6.50}
	pelota.ID = 1
	agua := models.Product{Name: "Agua mineral", Price: 1.25}
	agua.ID = 2
	return map[uint]models.Product{1: pelota, 2: agua}
}

func TestBuildInvoiceItemsTotalEsSumaDeSubtotales(t *testing.T) {
	items, total, err := BuildInvoiceItems([]InvoiceLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 4},
	}, catalogForTest())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("se esperaban 2 renglones, hay %d", len(items))
	}
	var sum float64
	for _, item := range items {
		if item.Subtotal != float64(item.Quantity)*item.UnitPrice {
			t.Errorf("subtotal de %s no corresponde: %v", item.ProductName, item.Subtotal)
		}
		sum += item.Subtotal
	}
	if total != sum {
		t.Fatalf("total %v distinto de la suma de subtotales %v", total, sum)
	}
	if total != 2*6.50+4*1.25 {
		t.Fatalf("total = %v, se esperaba %v", total, 2*6.50+4*1.25)
	}
}

func TestBuildInvoiceItemsCongelaElCatalogo(t *testing.T) {
	items, _, err := BuildInvoiceItems([]InvoiceLine{{ProductID: 1, Quantity: 1}}, catalogForTest())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	item := items[0]
	if item.ProductName != "Pelota de pádel" || item.ProductDescription != "Tubo x3" || item.UnitPrice != 6.50 {
		t.Fatalf("el renglón debe copiar nombre, descripción y precio del producto: %+v", item)
	}
	if item.ProductID == nil || *item.ProductID != 1 {
		t.Fatal("el renglón debe referenciar el producto original")
	}
}

// statsInvoiceRepo registra los parámetros con los que se piden las
// estadísticas de ventas.
type statsInvoiceRepo struct {
	repositories.IInvoiceRepository
	stats     repositories.SalesStats
	gotParams queryparams.ListParams
}

func (s *statsInvoiceRepo) SalesStats(ctx context.Context, params queryparams.ListParams) (repositories.SalesStats, error) {
	s.gotParams = params
	return s.stats, nil
}

func TestGetSalesStatsNormalizaLosFiltros(t *testing.T) {
	repo := &statsInvoiceRepo{stats: repositories.SalesStats{Count: 12, Total: 340.50}}
	svc := &InvoiceService{repo: repo}

	params := queryparams.ListParams{DateFrom: "2026-08-01", DateTo: "no-es-fecha"}
	stats, err := svc.GetSalesStats(context.Background(), params)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if stats.Count != 12 || stats.Total != 340.50 {
		t.Fatalf("stats = %+v, no corresponde con el repositorio", stats)
	}
	if repo.gotParams.DateFrom != "2026-08-01" {
		t.Fatalf("el límite inferior válido debe conservarse: %q", repo.gotParams.DateFrom)
	}
	if repo.gotParams.DateTo != "" {
		t.Fatalf("una fecha que no parsea no debe llegar a la consulta: %q", repo.gotParams.DateTo)
	}
}

func TestBuildInvoiceItemsValidaciones(t *testing.T) {
	catalog := catalogForTest()

	if _, _, err := BuildInvoiceItems(nil, catalog); !errors.Is(err, ErrInvoiceNoLines) {
		t.Fatalf("sin renglones se esperaba ErrInvoiceNoLines, se obtuvo %v", err)
	}
	if _, _, err := BuildInvoiceItems([]InvoiceLine{{ProductID: 1, Quantity: 0}}, catalog); !errors.Is(err, ErrInvoiceInvalidQuantity) {
		t.Fatalf("con cantidad cero se esperaba ErrInvoiceInvalidQuantity, se obtuvo %v", err)
	}
	if _, _, err := BuildInvoiceItems([]InvoiceLine{{ProductID: 99, Quantity: 1}}, catalog); !errors.Is(err, ErrInvoiceUnknownProduct) {
		t.Fatalf("con producto inexistente se esperaba ErrInvoiceUnknownProduct, se obtuvo %v", err)
	}
}
