package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// KardexEntryResponse una línea del kardex de un producto.
type KardexEntryResponse struct {
	Secuencia     int64           `json:"numMovimiento"`
	Fecha         time.Time       `json:"fecha"`
	Tipo          string          `json:"tipo"`
	InvInicial    int64           `json:"invInicial"`
	Entrada       int64           `json:"entrada"`
	Salida        int64           `json:"salida"`
	InvFinal      int64           `json:"invFinal"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// ToKardexEntryResponse mapea la entidad a su DTO de salida.
func ToKardexEntryResponse(e *entity.KardexEntry) KardexEntryResponse {
	return KardexEntryResponse{
		Secuencia:     e.Secuencia,
		Fecha:         e.Fecha,
		Tipo:          e.Tipo,
		InvInicial:    e.InvInicial,
		Entrada:       e.Entrada,
		Salida:        e.Salida,
		InvFinal:      e.InvFinal,
		CostoUnitario: e.CostoUnitario,
	}
}
