package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Todos son rechazos de una petición puntual, recuperables por el caller;
// ninguna operación del núcleo deja mutación parcial al fallar.
var (
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
)
