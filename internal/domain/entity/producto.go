package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de entidades con toggle activar/desactivar.
const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// Producto representa un producto del catálogo.
// Costo es promedio ponderado calculado por el motor de kardex; nunca se edita directo.
type Producto struct {
	ID               string
	Codigo           string // código único
	Nombre           string
	Descripcion      string
	UnidadesMin      int64 // umbral mínimo de unidades
	Estado           string
	CategoriaID      string
	Costo            decimal.Decimal // costo promedio ponderado (inicia en 0)
	Precio           decimal.Decimal // precio de venta
	PorcentajeGan    decimal.Decimal // margen de ganancia en %
	FechaVencimiento *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PrecioSugerido calcula costo * (1 + porcentajeGan/100). Es solo informativo:
// nunca se aplica al precio sin una actualización explícita.
func (p *Producto) PrecioSugerido() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(p.PorcentajeGan.Div(decimal.NewFromInt(100)))
	return p.Costo.Mul(factor)
}
