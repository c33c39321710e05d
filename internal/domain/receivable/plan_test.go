package receivable_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/receivable"
)

var fechaVenta = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Plan de amortización
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarPlan_SinInteresCuotasIguales(t *testing.T) {
	// 300 en 3 cuotas cada 30 días sin interés -> 100, 100, 100
	base, cuotas, err := receivable.GenerarPlan(decimal.NewFromInt(300), 3, 30, decimal.Zero, fechaVenta)
	require.NoError(t, err)
	require.Len(t, cuotas, 3)

	assert.True(t, base.Equal(decimal.NewFromInt(100)), "la cuota base debe ser 100")
	for i, c := range cuotas {
		assert.Equal(t, i+1, c.Numero, "las cuotas se numeran desde 1")
		assert.True(t, c.Valor.Equal(decimal.NewFromInt(100)), "cuota %d debe valer 100, fue %s", c.Numero, c.Valor)
		assert.Equal(t, fechaVenta.AddDate(0, 0, (i+1)*30), c.FechaPago,
			"la cuota %d vence en fechaVenta + %d días", c.Numero, (i+1)*30)
	}
}

func TestGenerarPlan_ConInteres(t *testing.T) {
	// 1000 al 10% -> total 1100 en 2 cuotas de 550
	_, cuotas, err := receivable.GenerarPlan(decimal.NewFromInt(1000), 2, 15, decimal.NewFromInt(10), fechaVenta)
	require.NoError(t, err)
	require.Len(t, cuotas, 2)
	assert.True(t, cuotas[0].Valor.Equal(decimal.NewFromInt(550)))
	assert.True(t, cuotas[1].Valor.Equal(decimal.NewFromInt(550)))
}

func TestGenerarPlan_ResiduoDeRedondeoEnUltimaCuota(t *testing.T) {
	// 100 en 3 cuotas: base 33.33; la última absorbe el residuo (33.34)
	base, cuotas, err := receivable.GenerarPlan(decimal.NewFromInt(100), 3, 30, decimal.Zero, fechaVenta)
	require.NoError(t, err)
	require.Len(t, cuotas, 3)

	assert.True(t, base.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, cuotas[0].Valor.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, cuotas[1].Valor.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, cuotas[2].Valor.Equal(decimal.RequireFromString("33.34")),
		"la última cuota absorbe el residuo, fue %s", cuotas[2].Valor)
}

func TestGenerarPlan_DeudaMinimaNoDejaCuotaNegativa(t *testing.T) {
	// 0.10 en 20 cuotas: total/n = 0.005. Redondear al más cercano daría base
	// 0.01 y una última cuota de -0.09; truncando, base 0.00 y la última lleva
	// el total completo.
	base, cuotas, err := receivable.GenerarPlan(decimal.RequireFromString("0.10"), 20, 30, decimal.Zero, fechaVenta)
	require.NoError(t, err)
	require.Len(t, cuotas, 20)

	assert.True(t, base.IsZero(), "la base truncada de 0.005 es 0.00, fue %s", base)
	suma := decimal.Zero
	for _, c := range cuotas {
		assert.False(t, c.Valor.IsNegative(), "la cuota %d no puede ser negativa, fue %s", c.Numero, c.Valor)
		suma = suma.Add(c.Valor)
	}
	assert.True(t, cuotas[19].Valor.Equal(decimal.RequireFromString("0.10")),
		"la última cuota absorbe todo el residuo, fue %s", cuotas[19].Valor)
	assert.True(t, suma.Equal(decimal.RequireFromString("0.10")))
}

func TestGenerarPlan_SumaDeCuotasIgualAlTotal(t *testing.T) {
	// Propiedad: para cualquier combinación, sum(cuotas) == total pagable exacto
	// y ninguna cuota es negativa.
	casos := []struct {
		deuda   string
		n       int
		interes string
	}{
		{"100", 3, "0"},
		{"999.99", 7, "5"},
		{"1234.56", 12, "2.5"},
		{"50", 1, "0"},
		{"0.10", 20, "0"},
		{"0.25", 9, "0"},
	}
	for _, tc := range casos {
		deuda := decimal.RequireFromString(tc.deuda)
		interes := decimal.RequireFromString(tc.interes)
		_, cuotas, err := receivable.GenerarPlan(deuda, tc.n, 30, interes, fechaVenta)
		require.NoError(t, err)

		total := deuda.Mul(decimal.NewFromInt(1).Add(interes.Div(decimal.NewFromInt(100)))).Round(2)
		suma := decimal.Zero
		for _, c := range cuotas {
			assert.False(t, c.Valor.IsNegative(),
				"deuda %s en %d cuotas: la cuota %d es negativa (%s)", tc.deuda, tc.n, c.Numero, c.Valor)
			suma = suma.Add(c.Valor)
		}
		assert.True(t, suma.Equal(total),
			"deuda %s en %d cuotas al %s%%: suma %s != total %s", tc.deuda, tc.n, tc.interes, suma, total)
	}
}

func TestGenerarPlan_UnaSolaCuota(t *testing.T) {
	base, cuotas, err := receivable.GenerarPlan(decimal.NewFromInt(250), 1, 45, decimal.Zero, fechaVenta)
	require.NoError(t, err)
	require.Len(t, cuotas, 1)
	assert.True(t, base.Equal(decimal.NewFromInt(250)))
	assert.True(t, cuotas[0].Valor.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, fechaVenta.AddDate(0, 0, 45), cuotas[0].FechaPago)
}

// ── Errores de validación ─────────────────────────────────────────────────────

func TestGenerarPlan_ParametrosInvalidos(t *testing.T) {
	casos := []struct {
		nombre  string
		deuda   decimal.Decimal
		n       int
		dias    int
		interes decimal.Decimal
	}{
		{"deuda cero", decimal.Zero, 3, 30, decimal.Zero},
		{"deuda negativa", decimal.NewFromInt(-100), 3, 30, decimal.Zero},
		{"cero cuotas", decimal.NewFromInt(100), 0, 30, decimal.Zero},
		{"tiempo de cobro cero", decimal.NewFromInt(100), 3, 0, decimal.Zero},
		{"interés negativo", decimal.NewFromInt(100), 3, 30, decimal.NewFromInt(-5)},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, _, err := receivable.GenerarPlan(tc.deuda, tc.n, tc.dias, tc.interes, fechaVenta)
			assert.ErrorIs(t, err, domain.ErrInvalidAccount)
		})
	}
}
