// Package queryparams normaliza los parámetros de listados paginados.
package queryparams

import "time"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"

	dateLayout = "2006-01-02"
)

// ListParams son los parámetros aceptados por los listados del dashboard.
type ListParams struct {
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
	SortBy   string `query:"sort_by"`
	OrderBy  string `query:"order_by"`
	Search   string `query:"q"`
	Status   string `query:"status"`
	DateFrom string `query:"desde"`
	DateTo   string `query:"hasta"`
}

// DefaultListParams devuelve parámetros por defecto con el orden indicado.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{Page: DefaultPage, PerPage: DefaultPerPage, SortBy: sortBy, OrderBy: DefaultOrderBy}
}

// Validate acota página y tamaño a rangos razonables y descarta fechas
// de filtro que no parsean.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
	if p.DateFrom != "" {
		if _, err := time.Parse(dateLayout, p.DateFrom); err != nil {
			p.DateFrom = ""
		}
	}
	if p.DateTo != "" {
		if _, err := time.Parse(dateLayout, p.DateTo); err != nil {
			p.DateTo = ""
		}
	}
}

// HasDateFilter indica si el listado está acotado por fechas.
func (p ListParams) HasDateFilter() bool {
	return p.DateFrom != "" || p.DateTo != ""
}

// DateFromTime devuelve el inicio del día "desde".
func (p ListParams) DateFromTime() (time.Time, bool) {
	if p.DateFrom == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, p.DateFrom)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateToTimeExclusive devuelve la medianoche siguiente al día "hasta":
// el filtro incluye el día completo comparando con menor estricto.
func (p ListParams) DateToTimeExclusive() (time.Time, bool) {
	if p.DateTo == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, p.DateTo)
	if err != nil {
		return time.Time{}, false
	}
	return t.AddDate(0, 0, 1), true
}

// CalculateOffset devuelve el offset SQL de la página actual.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta describe la página devuelta.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PaginatedResult envuelve los datos de una página con su meta.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// CalculateTotalPages calcula el total de páginas para count elementos.
func CalculateTotalPages(count int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(count) / perPage
	if int(count)%perPage != 0 {
		pages++
	}
	return pages
}
