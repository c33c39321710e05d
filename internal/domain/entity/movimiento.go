package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoCompra = "COMPRA"
	MovimientoVenta  = "VENTA"
)

// Modos de pago de una venta.
const (
	PagoContado = "CONTADO"
	PagoCredito = "CREDITO"
)

// Movimiento representa un movimiento de inventario (compra o venta).
// Es inmutable una vez registrado; solo se compensa con un contramovimiento.
type Movimiento struct {
	ID               string
	Tipo             string
	Fecha            time.Time
	ProductoID       string
	Unidades         int64 // siempre positivo; el signo lo da el tipo
	Stock            int64 // saldo resultante tras aplicar el movimiento
	CostoUnitario    decimal.Decimal
	Precio           decimal.Decimal
	TipoPago         string // CONTADO o CREDITO (ventas)
	FechaVencimiento *time.Time
	ClienteID        string
	NumFactura       string // obligatorio en venta a crédito
	CreatedAt        time.Time
	CreatedBy        string
}
