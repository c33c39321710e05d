package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuota.
const (
	CuotaPendiente = "PENDIENTE"
	CuotaPagada    = "PAGADA"
	CuotaVencida   = "VENCIDA"
)

// Cuota es una cuota de una cuenta por cobrar (pertenece a exactamente una cuenta).
type Cuota struct {
	ID        string
	CuentaID  string
	Numero    int // 1..NumCuotas
	Valor     decimal.Decimal
	FechaPago time.Time // fecha de vencimiento de la cuota
	Estado    string
	PagadaAt  *time.Time
}
