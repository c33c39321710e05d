package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CuentaXCobrar es la cuenta por cobrar abierta por una venta a crédito.
// Se crea exactamente una vez por venta a crédito, junto con sus cuotas.
type CuentaXCobrar struct {
	ID          string
	NumFactura  string // único entre cuentas abiertas
	MontoDeuda  decimal.Decimal
	NumCuotas   int
	TiempoCobro int             // días entre cuotas
	Interes     decimal.Decimal // porcentaje
	CuotaBase   decimal.Decimal
	ClienteID   string
	CreatedAt   time.Time
}

// TotalPagable devuelve montoDeuda * (1 + interes/100) redondeado a 2 decimales.
func (c *CuentaXCobrar) TotalPagable() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(c.Interes.Div(decimal.NewFromInt(100)))
	return c.MontoDeuda.Mul(factor).Round(2)
}
