package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcastillo/inventario-api/internal/application/ledger"
	"github.com/jpcastillo/inventario-api/internal/application/receivable"
	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

const productoID = "00000000-0000-0000-0000-000000000001"

// fixture construye el caso de uso sobre los fakes en memoria con un producto
// sembrado (precio 20, costo 0, sin movimientos).
func fixture() (*memStore, *ledger.UseCase) {
	store := newMemStore()
	store.productos[productoID] = entity.Producto{
		ID:     productoID,
		Codigo: "P-001",
		Nombre: "Tornillo galvanizado",
		Estado: entity.EstadoActivo,
		Costo:  decimal.Zero,
		Precio: decimal.NewFromInt(20),
	}
	productoRepo := &memProductoRepo{s: store}
	kardexRepo := &memKardexRepo{s: store}
	movimientoRepo := &memMovimientoRepo{s: store}
	cuentasUC := receivable.NewUseCase(nil, &memCuentaRepo{s: store}, &memCuotaRepo{s: store})
	uc := ledger.NewUseCase(&memTxRunner{s: store}, cuentasUC, productoRepo, kardexRepo, movimientoRepo)
	return store, uc
}

func compra(t *testing.T, uc *ledger.UseCase, unidades int64, costo int64) *ledger.Resultado {
	t.Helper()
	res, err := uc.RegistrarCompra(context.Background(), ledger.CompraInput{
		ProductoID:    productoID,
		Unidades:      unidades,
		CostoUnitario: decimal.NewFromInt(costo),
	})
	require.NoError(t, err)
	return res
}

func ventaContado(t *testing.T, uc *ledger.UseCase, unidades int64) *ledger.Resultado {
	t.Helper()
	res, err := uc.RegistrarVenta(context.Background(), ledger.VentaInput{
		ProductoID: productoID,
		Unidades:   unidades,
		TipoPago:   entity.PagoContado,
	})
	require.NoError(t, err)
	return res
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarCompra_PrimeraEntrada(t *testing.T) {
	store, uc := fixture()

	res := compra(t, uc, 10, 5)

	assert.Equal(t, int64(1), res.Kardex.Secuencia, "la primera línea lleva secuencia 1")
	assert.Equal(t, int64(0), res.Kardex.InvInicial)
	assert.Equal(t, int64(10), res.Kardex.Entrada)
	assert.Equal(t, int64(0), res.Kardex.Salida)
	assert.Equal(t, int64(10), res.Kardex.InvFinal)
	assert.True(t, res.Kardex.CostoUnitario.Equal(decimal.NewFromInt(5)),
		"la línea de compra sella el costo promedio resultante")

	p := store.productos[productoID]
	assert.True(t, p.Costo.Equal(decimal.NewFromInt(5)), "el costo del producto se actualiza a 5")
}

func TestRegistrarCompra_RecalculaCostoPromedio(t *testing.T) {
	// 0 -> +10@5 -> -4 -> +5@8: el promedio tras la segunda compra es
	// (6*5 + 5*8) / 11 = 70/11.
	store, uc := fixture()

	compra(t, uc, 10, 5)
	ventaContado(t, uc, 4)
	res := compra(t, uc, 5, 8)

	esperado := decimal.NewFromInt(70).Div(decimal.NewFromInt(11))
	p := store.productos[productoID]
	assert.True(t, p.Costo.Equal(esperado), "el costo debe ser 70/11, fue %s", p.Costo)
	assert.True(t, res.Kardex.CostoUnitario.Equal(esperado),
		"la línea de compra lleva el costo promedio nuevo, no el de la factura")
	assert.Equal(t, int64(11), res.Kardex.InvFinal)
}

func TestRegistrarCompra_MovimientoConservaCostoDeFactura(t *testing.T) {
	_, uc := fixture()

	compra(t, uc, 10, 5)
	ventaContado(t, uc, 4)
	res := compra(t, uc, 5, 8)

	assert.True(t, res.Movimiento.CostoUnitario.Equal(decimal.NewFromInt(8)),
		"el movimiento registra el costo de la factura de compra")
}

func TestRegistrarCompra_CostoNegativoFalla(t *testing.T) {
	store, uc := fixture()

	_, err := uc.RegistrarCompra(context.Background(), ledger.CompraInput{
		ProductoID:    productoID,
		Unidades:      5,
		CostoUnitario: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCost)
	assert.Empty(t, store.kardex, "el kardex no debe cambiar ante una compra inválida")
}

func TestRegistrarCompra_UnidadesCeroFalla(t *testing.T) {
	_, uc := fixture()
	_, err := uc.RegistrarCompra(context.Background(), ledger.CompraInput{
		ProductoID:    productoID,
		Unidades:      0,
		CostoUnitario: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarCompra_ProductoInexistenteFalla(t *testing.T) {
	_, uc := fixture()
	_, err := uc.RegistrarCompra(context.Background(), ledger.CompraInput{
		ProductoID:    "no-existe",
		Unidades:      5,
		CostoUnitario: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenta_CopiaCostoVigenteSinRecalcular(t *testing.T) {
	store, uc := fixture()

	compra(t, uc, 10, 5)
	res := ventaContado(t, uc, 4)

	assert.Equal(t, int64(2), res.Kardex.Secuencia)
	assert.Equal(t, int64(10), res.Kardex.InvInicial)
	assert.Equal(t, int64(4), res.Kardex.Salida)
	assert.Equal(t, int64(6), res.Kardex.InvFinal)
	assert.True(t, res.Kardex.CostoUnitario.Equal(decimal.NewFromInt(5)),
		"la venta copia el costo promedio vigente")

	p := store.productos[productoID]
	assert.True(t, p.Costo.Equal(decimal.NewFromInt(5)), "la venta no recalcula el costo")
}

func TestRegistrarVenta_StockInsuficienteDejaLedgerIntacto(t *testing.T) {
	// Venta de 20 contra saldo de 10: falla y nada queda escrito.
	store, uc := fixture()
	compra(t, uc, 10, 5)

	_, err := uc.RegistrarVenta(context.Background(), ledger.VentaInput{
		ProductoID: productoID,
		Unidades:   20,
		TipoPago:   entity.PagoContado,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, store.kardex, 1, "el kardex conserva solo la compra")
	assert.Len(t, store.movimientos, 1, "no se persiste el movimiento de la venta fallida")
}

func TestRegistrarVenta_TipoPagoInvalidoFalla(t *testing.T) {
	_, uc := fixture()
	_, err := uc.RegistrarVenta(context.Background(), ledger.VentaInput{
		ProductoID: productoID,
		Unidades:   1,
		TipoPago:   "TARJETA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarVenta_CreditoSinFacturaFalla(t *testing.T) {
	_, uc := fixture()
	_, err := uc.RegistrarVenta(context.Background(), ledger.VentaInput{
		ProductoID: productoID,
		Unidades:   1,
		TipoPago:   entity.PagoCredito,
		Credito:    &ledger.CreditoInput{NumCuotas: 3, TiempoCobro: 30},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una venta a crédito exige número de factura")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas a crédito: atomicidad kardex + cuenta por cobrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVenta_CreditoAbreCuentaConPlan(t *testing.T) {
	store, uc := fixture()
	compra(t, uc, 10, 5)

	res, err := uc.RegistrarVenta(context.Background(), ledger.VentaInput{
		ProductoID: productoID,
		Unidades:   2,
		TipoPago:   entity.PagoCredito,
		NumFactura: "F-001",
		Credito:    &ledger.CreditoInput{NumCuotas: 3, TiempoCobro: 30},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Cuenta, "la venta a crédito devuelve la cuenta abierta")
	require.Len(t, res.Cuotas, 3)

	// MontoDeuda en 0 cae al precio del producto: 2 * 20 = 40.
	assert.True(t, res.Cuenta.MontoDeuda.Equal(decimal.NewFromInt(40)),
		"la deuda por defecto es unidades * precio, fue %s", res.Cuenta.MontoDeuda)
	assert.Equal(t, "F-001", res.Cuenta.NumFactura)

	suma := decimal.Zero
	for _, c := range res.Cuotas {
		assert.Equal(t, entity.CuotaPendiente, c.Estado, "toda cuota nace PENDIENTE")
		suma = suma.Add(c.Valor)
	}
	assert.True(t, suma.Equal(decimal.NewFromInt(40)), "la suma de cuotas es la deuda total")

	assert.Len(t, store.kardex, 2, "compra + venta en el kardex")
	assert.Len(t, store.cuotas, 3)
}

func TestRegistrarVenta_ContadoNoAbreCuenta(t *testing.T) {
	store, uc := fixture()
	compra(t, uc, 10, 5)

	res := ventaContado(t, uc, 3)

	assert.Nil(t, res.Cuenta)
	assert.Empty(t, store.cuentas, "una venta de contado no toca cuentas por cobrar")
}

func TestRegistrarVenta_FacturaDuplicadaRevierteKardex(t *testing.T) {
	// Si la apertura de la cuenta falla, la línea de kardex de la venta también
	// se revierte: nunca kardex sin cuenta.
	store, uc := fixture()
	compra(t, uc, 10, 5)

	venta := ledger.VentaInput{
		ProductoID: productoID,
		Unidades:   2,
		TipoPago:   entity.PagoCredito,
		NumFactura: "F-001",
		Credito:    &ledger.CreditoInput{NumCuotas: 3, TiempoCobro: 30},
	}
	_, err := uc.RegistrarVenta(context.Background(), venta)
	require.NoError(t, err)

	_, err = uc.RegistrarVenta(context.Background(), venta)
	assert.ErrorIs(t, err, domain.ErrInvalidAccount, "factura repetida entre cuentas abiertas")

	assert.Len(t, store.kardex, 2, "la venta fallida no deja línea de kardex")
	assert.Len(t, store.movimientos, 2)
	assert.Len(t, store.cuentas, 1)
	assert.Len(t, store.cuotas, 3)

	last, err := (&memKardexRepo{s: store}).GetLast(productoID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), last.InvFinal, "el saldo queda como tras la primera venta")
}

func TestRegistrarVenta_PlanInvalidoRevierteKardex(t *testing.T) {
	store, uc := fixture()
	compra(t, uc, 10, 5)

	_, err := uc.RegistrarVenta(context.Background(), ledger.VentaInput{
		ProductoID: productoID,
		Unidades:   2,
		TipoPago:   entity.PagoCredito,
		NumFactura: "F-002",
		Credito:    &ledger.CreditoInput{NumCuotas: 0, TiempoCobro: 30},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)
	assert.Len(t, store.kardex, 1, "sin cuenta válida no sobrevive la línea de kardex")
	assert.Empty(t, store.cuentas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Kardex: continuidad de saldos y secuencia
// ──────────────────────────────────────────────────────────────────────────────

func TestKardex_ContinuidadDeSaldos(t *testing.T) {
	_, uc := fixture()

	compra(t, uc, 10, 5)
	ventaContado(t, uc, 4)
	compra(t, uc, 5, 8)
	ventaContado(t, uc, 7)

	entries, err := uc.Kardex(context.Background(), productoID)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for i, e := range entries {
		assert.Equal(t, int64(i+1), e.Secuencia, "secuencia monótona sin huecos")
		assert.Equal(t, e.InvInicial+e.Entrada-e.Salida, e.InvFinal,
			"línea %d: invFinal = invInicial + entrada - salida", e.Secuencia)
		if i > 0 {
			assert.Equal(t, entries[i-1].InvFinal, e.InvInicial,
				"línea %d: el saldo inicial encadena con el final anterior", e.Secuencia)
		}
	}
	assert.Equal(t, int64(4), entries[3].InvFinal, "10 - 4 + 5 - 7 = 4")
}

func TestKardex_ProductoInexistenteFalla(t *testing.T) {
	_, uc := fixture()
	_, err := uc.Kardex(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientos_ListaCronologicaDelProducto(t *testing.T) {
	_, uc := fixture()

	compra(t, uc, 10, 5)
	res := ventaContado(t, uc, 4)

	movs, err := uc.Movimientos(context.Background(), productoID)
	require.NoError(t, err)
	require.Len(t, movs, 2)

	assert.Equal(t, entity.MovimientoCompra, movs[0].Tipo)
	assert.Equal(t, entity.MovimientoVenta, movs[1].Tipo)
	assert.Equal(t, res.Movimiento.ID, movs[1].ID)
	assert.Equal(t, int64(6), movs[1].Stock, "el movimiento guarda el saldo resultante")
}

func TestMovimientos_ProductoInexistenteFalla(t *testing.T) {
	_, uc := fixture()
	_, err := uc.Movimientos(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMovimiento_PorID(t *testing.T) {
	_, uc := fixture()
	res := compra(t, uc, 10, 5)

	mov, err := uc.GetMovimiento(context.Background(), res.Movimiento.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MovimientoCompra, mov.Tipo)
	assert.True(t, mov.CostoUnitario.Equal(decimal.NewFromInt(5)))

	_, err = uc.GetMovimiento(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
