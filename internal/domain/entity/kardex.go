package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// KardexEntry es una línea del kardex de un producto: saldo corrido con costo.
// Derivada del movimiento que la originó; nunca se edita después de creada.
// Invariante: InvFinal = InvInicial + Entrada - Salida.
type KardexEntry struct {
	ID            string
	ProductoID    string
	MovimientoID  string
	Secuencia     int64 // monotónica por producto
	Fecha         time.Time
	Tipo          string // COMPRA o VENTA
	InvInicial    int64
	Entrada       int64
	Salida        int64
	InvFinal      int64
	CostoUnitario decimal.Decimal // costo promedio vigente al sellar la línea
}
