package receivable

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain"
)

// CuotaPlan es una línea del plan de amortización antes de persistirse.
type CuotaPlan struct {
	Numero    int
	Valor     decimal.Decimal
	FechaPago time.Time
}

// GenerarPlan construye el plan de cuotas de una cuenta por cobrar.
// Total pagable = montoDeuda * (1 + interes/100), redondeado a 2 decimales.
// La cuota base es total/numCuotas truncado a 2 decimales; el residuo se absorbe
// en la última cuota para que la suma de cuotas sea exactamente el total.
// Truncar (en vez de redondear al más cercano) garantiza base*(n-1) <= total,
// así la última cuota nunca queda en negativo por sobrerredondeo.
// La cuota k vence en fechaVenta + k*tiempoCobro días.
func GenerarPlan(montoDeuda decimal.Decimal, numCuotas, tiempoCobro int, interes decimal.Decimal, fechaVenta time.Time) (decimal.Decimal, []CuotaPlan, error) {
	if !montoDeuda.IsPositive() || numCuotas < 1 || tiempoCobro < 1 || interes.IsNegative() {
		return decimal.Zero, nil, domain.ErrInvalidAccount
	}

	factor := decimal.NewFromInt(1).Add(interes.Div(decimal.NewFromInt(100)))
	total := montoDeuda.Mul(factor).Round(2)
	base := total.Div(decimal.NewFromInt(int64(numCuotas))).RoundDown(2)

	cuotas := make([]CuotaPlan, 0, numCuotas)
	for k := 1; k <= numCuotas; k++ {
		valor := base
		if k == numCuotas {
			// residuo del redondeo en la última cuota
			valor = total.Sub(base.Mul(decimal.NewFromInt(int64(numCuotas - 1))))
		}
		cuotas = append(cuotas, CuotaPlan{
			Numero:    k,
			Valor:     valor,
			FechaPago: fechaVenta.AddDate(0, 0, k*tiempoCobro),
		})
	}
	return base, cuotas, nil
}
