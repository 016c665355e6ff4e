// Package spanishsearch arma filtros SQL insensibles a mayúsculas y
// acentos para búsquedas en español (requiere la extensión unaccent
// de Postgres).
package spanishsearch

import "strings"

// SQLFilter devuelve un fragmento WHERE y sus argumentos para buscar
// term dentro de la columna dada, ignorando acentos y mayúsculas.
func SQLFilter(column, term string) (string, []interface{}) {
	fragment := "unaccent(lower(" + column + ")) ILIKE unaccent(lower(?))"
	return fragment, []interface{}{"%" + strings.TrimSpace(term) + "%"}
}

// SQLFilterAny aplica el mismo término sobre varias columnas unidas
// con OR (búsqueda libre del dashboard: cliente, método de pago, estado).
func SQLFilterAny(columns []string, term string) (string, []interface{}) {
	if len(columns) == 0 {
		return "", nil
	}
	fragments := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		frag, colArgs := SQLFilter(col, term)
		fragments = append(fragments, frag)
		args = append(args, colArgs...)
	}
	return "(" + strings.Join(fragments, " OR ") + ")", args
}
