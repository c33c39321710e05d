package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidCost       = errors.New("cantidad o costo de entrada inválidos")
	ErrInvalidAccount    = errors.New("parámetros de cuenta por cobrar inválidos")
	ErrAlreadyPaid       = errors.New("la cuota ya fue pagada")
)
