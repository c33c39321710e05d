package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// CreateCuentaRequest entrada para crear una cuenta por cobrar directa
// (fuera del flujo de venta; genera también sus cuotas).
type CreateCuentaRequest struct {
	NumFactura  string          `json:"numFactura" validate:"required"`
	MontoDeuda  decimal.Decimal `json:"montoDeuda" validate:"required"`
	NumCuotas   int             `json:"numCuotas" validate:"required,min=1"`
	TiempoCobro int             `json:"tiempoCobro" validate:"required,min=1"`
	Interes     decimal.Decimal `json:"interes"`
	ClienteID   string          `json:"clienteId,omitempty"`
}

// UpdateCuentaRequest campos editables de una cuenta (no recalcula cuotas ya emitidas).
type UpdateCuentaRequest struct {
	ClienteID *string `json:"clienteId"`
}

// CuentaResponse salida de una cuenta por cobrar.
type CuentaResponse struct {
	ID          string          `json:"codigoCobrar"`
	NumFactura  string          `json:"numFactura"`
	MontoDeuda  decimal.Decimal `json:"montoDeuda"`
	NumCuotas   int             `json:"numCuotas"`
	TiempoCobro int             `json:"tiempoCobro"`
	Interes     decimal.Decimal `json:"interes"`
	CuotaBase   decimal.Decimal `json:"cuotaBase"`
	ClienteID   string          `json:"clienteId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateCuotaRequest entrada para agregar una cuota manual a una cuenta.
type CreateCuotaRequest struct {
	CuentaID  string          `json:"codigoCobrar" validate:"required"`
	Numero    int             `json:"numero"`
	Valor     decimal.Decimal `json:"valorCuota" validate:"required"`
	FechaPago time.Time       `json:"fechaPago" validate:"required"`
}

// UpdateCuotaRequest campos editables de una cuota pendiente.
type UpdateCuotaRequest struct {
	Valor     *decimal.Decimal `json:"valorCuota"`
	FechaPago *time.Time       `json:"fechaPago"`
}

// CuotaResponse salida de una cuota.
type CuotaResponse struct {
	ID        string          `json:"idCuota"`
	CuentaID  string          `json:"codigoCobrar"`
	Numero    int             `json:"numero"`
	Valor     decimal.Decimal `json:"valorCuota"`
	FechaPago time.Time       `json:"fechaPago"`
	Estado    string          `json:"estadoCuota"`
	PagadaAt  *time.Time      `json:"pagadaAt,omitempty"`
}

// CuentaConCuotasResponse cuenta recién abierta junto con su plan de cuotas.
type CuentaConCuotasResponse struct {
	Cuenta CuentaResponse  `json:"cuentaXCobrar"`
	Cuotas []CuotaResponse `json:"cuotas"`
}

// ToCuentaResponse mapea la entidad a su DTO de salida.
func ToCuentaResponse(c *entity.CuentaXCobrar) *CuentaResponse {
	return &CuentaResponse{
		ID:          c.ID,
		NumFactura:  c.NumFactura,
		MontoDeuda:  c.MontoDeuda,
		NumCuotas:   c.NumCuotas,
		TiempoCobro: c.TiempoCobro,
		Interes:     c.Interes,
		CuotaBase:   c.CuotaBase,
		ClienteID:   c.ClienteID,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCuotaResponse mapea la entidad a su DTO de salida.
func ToCuotaResponse(c *entity.Cuota) CuotaResponse {
	return CuotaResponse{
		ID:        c.ID,
		CuentaID:  c.CuentaID,
		Numero:    c.Numero,
		Valor:     c.Valor,
		FechaPago: c.FechaPago,
		Estado:    c.Estado,
		PagadaAt:  c.PagadaAt,
	}
}
