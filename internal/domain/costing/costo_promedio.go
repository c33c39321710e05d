package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain"
)

// CostoPromedio implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si el stock actual es 0, el nuevo costo es el costo de entrada.
// Solo se recalcula en entradas (compras); las salidas copian el costo vigente.
func CostoPromedio(stockActual int64, costoActual decimal.Decimal, cantEntrada int64, costoEntrada decimal.Decimal) (decimal.Decimal, error) {
	if cantEntrada <= 0 || costoEntrada.IsNegative() {
		return decimal.Zero, domain.ErrInvalidCost
	}
	if stockActual <= 0 {
		return costoEntrada, nil
	}
	qa := decimal.NewFromInt(stockActual)
	qe := decimal.NewFromInt(cantEntrada)
	num := qa.Mul(costoActual).Add(qe.Mul(costoEntrada))
	return num.Div(qa.Add(qe)), nil
}
