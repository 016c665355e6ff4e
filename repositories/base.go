package repositories

import "errors"

// ErrNotFound es el error común de los repositorios cuando la fila no
// existe; los servicios lo traducen a su propio error de dominio.
var ErrNotFound = errors.New("registro no encontrado")
