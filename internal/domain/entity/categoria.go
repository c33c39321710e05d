package entity

import "time"

// Categoria representa una categoría de productos (referencia débil desde Producto).
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	Estado      string // ACTIVO, INACTIVO
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
