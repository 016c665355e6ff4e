package services

import (
	"context"
	"strings"

	"cancha.link/configs"
	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/pkg/queryparams"
	"cancha.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvoiceServiceError son los errores tipificados del servicio de facturas.
type InvoiceServiceError string

func (e InvoiceServiceError) Error() string { return string(e) }

const (
	ErrInvoiceNotFound         InvoiceServiceError = "factura no encontrada"
	ErrInvoiceCustomerRequired InvoiceServiceError = "el nombre del cliente es obligatorio"
	ErrInvoiceNoLines          InvoiceServiceError = "la factura necesita al menos un renglón"
	ErrInvoiceInvalidQuantity  InvoiceServiceError = "la cantidad de cada renglón debe ser mayor a cero"
	ErrInvoiceUnknownProduct   InvoiceServiceError = "la factura referencia un producto inexistente"
	ErrInvoiceCreationFailed   InvoiceServiceError = "no se pudo crear la factura"
	ErrInvoiceDeletionFailed   InvoiceServiceError = "no se pudo eliminar la factura"
)

// InvoiceLine es un renglón del formulario de facturación.
type InvoiceLine struct {
	ProductID uint
	Quantity  int
}

// InvoiceData es la entrada del formulario de facturación.
type InvoiceData struct {
	CustomerName     string
	CustomerEmail    string
	PaymentReference string
	Lines            []InvoiceLine
}

// BuildInvoiceItems congela los renglones contra el catálogo: copia nombre,
// descripción y precio del producto al momento de facturar y calcula cada
// subtotal. El total de la factura es la suma exacta de los subtotales.
func BuildInvoiceItems(lines []InvoiceLine, products map[uint]models.Product) ([]models.InvoiceItem, float64, error) {
	if len(lines) == 0 {
		return nil, 0, ErrInvoiceNoLines
	}
	items := make([]models.InvoiceItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, 0, ErrInvoiceInvalidQuantity
		}
		product, ok := products[line.ProductID]
		if !ok {
			return nil, 0, ErrInvoiceUnknownProduct
		}
		productID := line.ProductID
		subtotal := float64(line.Quantity) * product.Price
		items = append(items, models.InvoiceItem{
			ProductID:          &productID,
			ProductName:        product.Name,
			ProductDescription: product.Description,
			Quantity:           line.Quantity,
			UnitPrice:          product.Price,
			Subtotal:           subtotal,
		})
		total += subtotal
	}
	return items, total, nil
}

// IInvoiceService son las operaciones de facturación de la tienda.
type IInvoiceService interface {
	CreateInvoice(ctx context.Context, data InvoiceData) (*models.Invoice, error)
	GetInvoiceByID(ctx context.Context, id uint) (*models.Invoice, error)
	GetInvoicesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetSalesStats(ctx context.Context, params queryparams.ListParams) (repositories.SalesStats, error)
	DeleteInvoice(ctx context.Context, id uint) error
}

// InvoiceService implementa IInvoiceService.
type InvoiceService struct {
	repo        repositories.IInvoiceRepository
	productRepo repositories.IProductRepository
	db          *gorm.DB
}

func NewInvoiceService() IInvoiceService {
	return &InvoiceService{
		repo:        repositories.NewInvoiceRepository(),
		productRepo: repositories.NewProductRepository(),
		db:          configs.GetDB(),
	}
}

// CreateInvoice valida el formulario y guarda cabecera y renglones en una
// sola transacción: una factura sin renglones no puede quedar en la base.
func (s *InvoiceService) CreateInvoice(ctx context.Context, data InvoiceData) (*models.Invoice, error) {
	if strings.TrimSpace(data.CustomerName) == "" {
		return nil, ErrInvoiceCustomerRequired
	}
	if len(data.Lines) == 0 {
		return nil, ErrInvoiceNoLines
	}

	catalog, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, ErrInvoiceCreationFailed
	}
	products := make(map[uint]models.Product, len(catalog))
	for _, product := range catalog {
		products[product.ID] = product
	}

	items, total, err := BuildInvoiceItems(data.Lines, products)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		CustomerName:     strings.TrimSpace(data.CustomerName),
		CustomerEmail:    strings.TrimSpace(data.CustomerEmail),
		PaymentReference: strings.TrimSpace(data.PaymentReference),
		Total:            total,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repositories.NewInvoiceRepositoryTx(tx)
		if err := txRepo.Create(ctx, invoice); err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		return txRepo.CreateItems(ctx, items)
	})
	if err != nil {
		configslog.Log.Error("InvoiceService.CreateInvoice: transacción fallida",
			zap.String("customer", invoice.CustomerName), zap.Error(err))
		return nil, ErrInvoiceCreationFailed
	}

	invoice.Items = items
	configslog.SLog.Infof("Factura %d creada para %s (total %.2f)", invoice.ID, invoice.CustomerName, invoice.Total)
	return invoice, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id uint) (*models.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) GetInvoicesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	invoices, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: invoices,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// GetSalesStats resume el historial de ventas con los mismos filtros del
// listado: al acotar por fechas, las tarjetas muestran el período elegido.
func (s *InvoiceService) GetSalesStats(ctx context.Context, params queryparams.ListParams) (repositories.SalesStats, error) {
	params.Validate()
	return s.repo.SalesStats(ctx, params)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	invoice, err := s.GetInvoiceByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, invoice); err != nil {
		configslog.Log.Error("InvoiceService.DeleteInvoice: fallo al eliminar", zap.Uint("id", id), zap.Error(err))
		return ErrInvoiceDeletionFailed
	}
	return nil
}

var _ IInvoiceService = (*InvoiceService)(nil)
