package repositories

import (
	"context"
	"errors"

	"cancha.link/configs"
	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/queryparams"
	"cancha.link/pkg/spanishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SalesStats resume las ventas del período filtrado.
type SalesStats struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// IInvoiceRepository define el acceso a datos de facturas.
type IInvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	CreateItems(ctx context.Context, items []models.InvoiceItem) error
	FindByID(ctx context.Context, id uint) (*models.Invoice, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Invoice, int64, error)
	SalesStats(ctx context.Context, params queryparams.ListParams) (SalesStats, error)
	Delete(ctx context.Context, invoice *models.Invoice) error
}

// InvoiceRepository implementa IInvoiceRepository sobre GORM.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository() IInvoiceRepository {
	return &InvoiceRepository{db: configs.GetDB()}
}

// NewInvoiceRepositoryTx crea el repositorio sobre una transacción.
// La cabecera y los renglones se insertan en la misma transacción.
func NewInvoiceRepositoryTx(tx *gorm.DB) IInvoiceRepository {
	return &InvoiceRepository{db: tx}
}

func (r *InvoiceRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice == nil {
		return errors.New("factura inválida")
	}
	// Los renglones se insertan aparte, dentro de la transacción del servicio.
	return r.getDB(ctx).Omit("Items").Create(invoice).Error
}

func (r *InvoiceRepository) CreateItems(ctx context.Context, items []models.InvoiceItem) error {
	if len(items) == 0 {
		return errors.New("la factura necesita al menos un renglón")
	}
	return r.getDB(ctx).Create(&items).Error
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uint) (*models.Invoice, error) {
	if id == 0 {
		return nil, errors.New("ID de factura inválido")
	}
	var invoice models.Invoice
	err := r.getDB(ctx).Preload("Items").First(&invoice, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvoiceRepository.FindByID: error de BD", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

// filteredQuery aplica búsqueda libre y rango de fechas sobre facturas.
// El rango acota created_at: "desde" inclusivo, "hasta" cubre el día
// completo comparando contra la medianoche siguiente.
func (r *InvoiceRepository) filteredQuery(ctx context.Context, params queryparams.ListParams) *gorm.DB {
	query := r.getDB(ctx).Model(&models.Invoice{})
	if params.Search != "" {
		fragment, args := spanishsearch.SQLFilterAny(
			[]string{"customer_name", "customer_email", "payment_reference"}, params.Search)
		query = query.Where(fragment, args...)
	}
	if from, ok := params.DateFromTime(); ok {
		query = query.Where("created_at >= ?", from)
	}
	if to, ok := params.DateToTimeExclusive(); ok {
		query = query.Where("created_at < ?", to)
	}
	return query
}

// FindAllPaginated lista las facturas, más recientes primero, con búsqueda
// por cliente, correo o referencia de pago y filtro opcional de fechas.
func (r *InvoiceRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var totalCount int64

	query := r.filteredQuery(ctx, params)

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("InvoiceRepository.Count: error de BD", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return invoices, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":            "id",
		"created_at":    "created_at",
		"customer_name": "customer_name",
		"total":         "total",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "created_at"
	}

	err := query.
		Order(orderColumn + " " + params.OrderBy).
		Preload("Items").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&invoices).Error
	if err != nil {
		configslog.Log.Error("InvoiceRepository.FindAllPaginated: error de BD", zap.Error(err))
		return nil, totalCount, err
	}
	return invoices, totalCount, nil
}

// SalesStats suma las ventas del mismo recorte que ve el listado: cuántas
// facturas hay y cuánto facturan en total.
func (r *InvoiceRepository) SalesStats(ctx context.Context, params queryparams.ListParams) (SalesStats, error) {
	var stats SalesStats
	err := r.filteredQuery(ctx, params).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Scan(&stats).Error
	if err != nil {
		configslog.Log.Error("InvoiceRepository.SalesStats: error de BD", zap.Error(err))
		return SalesStats{}, err
	}
	return stats, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, invoice *models.Invoice) error {
	if invoice == nil || invoice.ID == 0 {
		return errors.New("factura inválida para eliminar")
	}
	return r.getDB(ctx).Delete(invoice).Error
}

var _ IInvoiceRepository = (*InvoiceRepository)(nil)
