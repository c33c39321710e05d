package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// CompraRequest body para POST /movimiento/compra.
type CompraRequest struct {
	ProductoID    string           `json:"productoId" validate:"required"`
	Unidades      int64            `json:"unidades" validate:"required,gt=0"`
	CostoUnitario *decimal.Decimal `json:"costo" validate:"required"`
	ProveedorID   string           `json:"proveedorId,omitempty"`
}

// VentaRequest es un elemento del arreglo que recibe POST /movimiento/venta.
// CuentaXCobrar solo viene cuando tipoPago es CREDITO.
type VentaRequest struct {
	Movimiento   VentaMovimiento      `json:"movimiento"`
	CuentaCobrar *CuentaCobrarRequest `json:"cuentaXCobrar,omitempty"`
}

// VentaMovimiento datos de la venta en sí.
type VentaMovimiento struct {
	ProductoID       string           `json:"productoId" validate:"required"`
	Unidades         int64            `json:"unidades" validate:"required,gt=0"`
	Precio           *decimal.Decimal `json:"precio,omitempty"` // si falta, se usa el precio del producto
	TipoPago         string           `json:"tipoPago" validate:"required"`
	FechaVencimiento *time.Time       `json:"fechaVencimiento,omitempty"`
	ClienteID        string           `json:"clienteId,omitempty"`
	NumFactura       string           `json:"numFactura,omitempty"` // obligatorio en CREDITO
}

// CuentaCobrarRequest parámetros de la cuenta por cobrar de una venta a crédito.
// MontoDeuda en 0 significa unidades * precio.
type CuentaCobrarRequest struct {
	MontoDeuda  decimal.Decimal `json:"montoDeuda"`
	NumCuotas   int             `json:"numCuotas" validate:"required,min=1"`
	TiempoCobro int             `json:"tiempoCobro" validate:"required,min=1"` // días entre cuotas
	Interes     decimal.Decimal `json:"interes"`                               // porcentaje
}

// MovimientoResponse salida de un movimiento registrado.
type MovimientoResponse struct {
	ID               string          `json:"idMovimiento"`
	Tipo             string          `json:"tipoMovimiento"`
	Fecha            time.Time       `json:"fechaMovimiento"`
	ProductoID       string          `json:"productoId"`
	Unidades         int64           `json:"unidades"`
	Stock            int64           `json:"stock"`
	CostoUnitario    decimal.Decimal `json:"costoUnitario"`
	Precio           decimal.Decimal `json:"precio"`
	TipoPago         string          `json:"tipoPago,omitempty"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento,omitempty"`
	ClienteID        string          `json:"clienteId,omitempty"`
	NumFactura       string          `json:"numFactura,omitempty"`
}

// CompraResponse resultado de una compra: movimiento sellado + línea de kardex.
type CompraResponse struct {
	Movimiento MovimientoResponse  `json:"movimiento"`
	Kardex     KardexEntryResponse `json:"kardex"`
}

// VentaResponse resultado de una venta: kardex + cuenta con cuotas si fue a crédito.
type VentaResponse struct {
	Movimiento   MovimientoResponse   `json:"movimiento"`
	Kardex       KardexEntryResponse  `json:"kardex"`
	CuentaCobrar *CuentaResponse      `json:"cuentaXCobrar,omitempty"`
	Cuotas       []CuotaResponse      `json:"cuotas,omitempty"`
}

// ToMovimientoResponse mapea la entidad a su DTO de salida.
func ToMovimientoResponse(m *entity.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		ID:               m.ID,
		Tipo:             m.Tipo,
		Fecha:            m.Fecha,
		ProductoID:       m.ProductoID,
		Unidades:         m.Unidades,
		Stock:            m.Stock,
		CostoUnitario:    m.CostoUnitario,
		Precio:           m.Precio,
		TipoPago:         m.TipoPago,
		FechaVencimiento: m.FechaVencimiento,
		ClienteID:        m.ClienteID,
		NumFactura:       m.NumFactura,
	}
}
