package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/costing"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

// UseCase registra movimientos de inventario (compra/venta) de forma
// transaccional: bloqueo de fila del producto (SELECT FOR UPDATE), línea de
// kardex con saldo corrido y, en ventas a crédito, apertura de la cuenta por
// cobrar en la misma transacción.
type UseCase struct {
	txRunner       TxRunner
	cuentas        CuentaOpener
	productoRepo   repository.ProductoRepository
	kardexRepo     repository.KardexRepository
	movimientoRepo repository.MovimientoRepository
}

// NewUseCase construye el caso de uso del motor de kardex. productoRepo,
// kardexRepo y movimientoRepo van atados al pool (solo lecturas fuera de
// transacción).
func NewUseCase(txRunner TxRunner, cuentas CuentaOpener, productoRepo repository.ProductoRepository, kardexRepo repository.KardexRepository, movimientoRepo repository.MovimientoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, cuentas: cuentas, productoRepo: productoRepo, kardexRepo: kardexRepo, movimientoRepo: movimientoRepo}
}

// CompraInput entrada para registrar una compra.
type CompraInput struct {
	ProductoID    string
	Unidades      int64
	CostoUnitario decimal.Decimal
	ProveedorID   string
	UserID        string
}

// VentaInput entrada para registrar una venta. Credito solo en tipoPago CREDITO.
type VentaInput struct {
	ProductoID       string
	Unidades         int64
	Precio           *decimal.Decimal // nil = precio del producto
	TipoPago         string
	FechaVencimiento *time.Time
	ClienteID        string
	NumFactura       string
	Credito          *CreditoInput
	UserID           string
}

// CreditoInput parámetros de la cuenta por cobrar de una venta a crédito.
type CreditoInput struct {
	MontoDeuda  decimal.Decimal // 0 = unidades * precio
	NumCuotas   int
	TiempoCobro int
	Interes     decimal.Decimal
}

// Resultado de un movimiento registrado. Cuenta y Cuotas solo en ventas a crédito.
type Resultado struct {
	Movimiento *entity.Movimiento
	Kardex     *entity.KardexEntry
	Cuenta     *entity.CuentaXCobrar
	Cuotas     []*entity.Cuota
}

// RegistrarCompra aplica una entrada: recalcula el costo promedio ponderado,
// actualiza el costo del producto y sella la línea de kardex.
func (uc *UseCase) RegistrarCompra(ctx context.Context, in CompraInput) (*Resultado, error) {
	if in.ProductoID == "" || in.Unidades <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CostoUnitario.IsNegative() {
		return nil, domain.ErrInvalidCost
	}

	now := time.Now()
	var res *Resultado
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		producto, invInicial, secuencia, err := uc.abrirKardex(repos, in.ProductoID)
		if err != nil {
			return err
		}

		costoNuevo, err := costing.CostoPromedio(invInicial, producto.Costo, in.Unidades, in.CostoUnitario)
		if err != nil {
			return err
		}
		if err := repos.Productos.UpdateCosto(producto.ID, costoNuevo); err != nil {
			return err
		}

		invFinal := invInicial + in.Unidades
		mov := &entity.Movimiento{
			ID:            uuid.New().String(),
			Tipo:          entity.MovimientoCompra,
			Fecha:         now,
			ProductoID:    producto.ID,
			Unidades:      in.Unidades,
			Stock:         invFinal,
			CostoUnitario: in.CostoUnitario,
			ClienteID:     in.ProveedorID,
			CreatedAt:     now,
			CreatedBy:     in.UserID,
		}
		if err := repos.Movimientos.Create(mov); err != nil {
			return err
		}

		entry := &entity.KardexEntry{
			ID:            uuid.New().String(),
			ProductoID:    producto.ID,
			MovimientoID:  mov.ID,
			Secuencia:     secuencia,
			Fecha:         now,
			Tipo:          entity.MovimientoCompra,
			InvInicial:    invInicial,
			Entrada:       in.Unidades,
			InvFinal:      invFinal,
			CostoUnitario: costoNuevo,
		}
		if err := repos.Kardex.Append(entry); err != nil {
			return err
		}

		res = &Resultado{Movimiento: mov, Kardex: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RegistrarVenta aplica una salida al costo promedio vigente. Falla con
// ErrInsufficientStock si el saldo no alcanza, sin tocar el kardex. En ventas
// a crédito abre la cuenta por cobrar dentro de la misma transacción: una
// venta a crédito nunca deja kardex sin cuenta ni cuenta sin kardex.
func (uc *UseCase) RegistrarVenta(ctx context.Context, in VentaInput) (*Resultado, error) {
	if in.ProductoID == "" || in.Unidades <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.TipoPago {
	case entity.PagoContado:
	case entity.PagoCredito:
		if in.NumFactura == "" || in.Credito == nil {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var res *Resultado
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		producto, invInicial, secuencia, err := uc.abrirKardex(repos, in.ProductoID)
		if err != nil {
			return err
		}
		if invInicial < in.Unidades {
			return domain.ErrInsufficientStock
		}

		precio := producto.Precio
		if in.Precio != nil {
			precio = *in.Precio
		}

		invFinal := invInicial - in.Unidades
		mov := &entity.Movimiento{
			ID:               uuid.New().String(),
			Tipo:             entity.MovimientoVenta,
			Fecha:            now,
			ProductoID:       producto.ID,
			Unidades:         in.Unidades,
			Stock:            invFinal,
			CostoUnitario:    producto.Costo,
			Precio:           precio,
			TipoPago:         in.TipoPago,
			FechaVencimiento: in.FechaVencimiento,
			ClienteID:        in.ClienteID,
			NumFactura:       in.NumFactura,
			CreatedAt:        now,
			CreatedBy:        in.UserID,
		}
		if err := repos.Movimientos.Create(mov); err != nil {
			return err
		}

		entry := &entity.KardexEntry{
			ID:            uuid.New().String(),
			ProductoID:    producto.ID,
			MovimientoID:  mov.ID,
			Secuencia:     secuencia,
			Fecha:         now,
			Tipo:          entity.MovimientoVenta,
			InvInicial:    invInicial,
			Salida:        in.Unidades,
			InvFinal:      invFinal,
			CostoUnitario: producto.Costo,
		}
		if err := repos.Kardex.Append(entry); err != nil {
			return err
		}

		res = &Resultado{Movimiento: mov, Kardex: entry}

		if in.TipoPago != entity.PagoCredito {
			return nil
		}
		montoDeuda := in.Credito.MontoDeuda
		if !montoDeuda.IsPositive() {
			montoDeuda = precio.Mul(decimal.NewFromInt(in.Unidades))
		}
		cuenta, cuotas, err := uc.cuentas.AbrirCuentaEnTx(
			repos.Cuentas, repos.Cuotas,
			in.NumFactura, montoDeuda,
			in.Credito.NumCuotas, in.Credito.TiempoCobro, in.Credito.Interes,
			in.ClienteID, now,
		)
		if err != nil {
			return err
		}
		res.Cuenta = cuenta
		res.Cuotas = cuotas
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// abrirKardex bloquea la fila del producto y resuelve saldo inicial y secuencia
// siguiente. El FOR UPDATE serializa todos los movimientos del producto, así
// invInicial siempre coincide con el invFinal de la línea anterior.
func (uc *UseCase) abrirKardex(repos TxRepos, productoID string) (*entity.Producto, int64, int64, error) {
	producto, err := repos.Productos.GetForUpdate(productoID)
	if err != nil {
		return nil, 0, 0, err
	}
	if producto == nil {
		return nil, 0, 0, domain.ErrNotFound
	}
	last, err := repos.Kardex.GetLast(productoID)
	if err != nil {
		return nil, 0, 0, err
	}
	var invInicial, secuencia int64 = 0, 1
	if last != nil {
		invInicial = last.InvFinal
		secuencia = last.Secuencia + 1
	}
	return producto, invInicial, secuencia, nil
}

// Kardex devuelve las líneas del kardex de un producto en orden ascendente de
// secuencia. Solo lectura, sin efectos.
func (uc *UseCase) Kardex(ctx context.Context, productoID string) ([]*entity.KardexEntry, error) {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return uc.kardexRepo.ListByProducto(productoID)
}

// Movimientos lista los movimientos crudos de un producto en orden cronológico,
// con los datos de factura/pago que la línea de kardex no lleva.
func (uc *UseCase) Movimientos(ctx context.Context, productoID string) ([]*entity.Movimiento, error) {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movimientoRepo.ListByProducto(productoID)
}

// GetMovimiento obtiene un movimiento por ID.
func (uc *UseCase) GetMovimiento(ctx context.Context, id string) (*entity.Movimiento, error) {
	mov, err := uc.movimientoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}
