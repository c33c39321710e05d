package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Productos   repository.ProductoRepository
	Movimientos repository.MovimientoRepository
	Kardex      repository.KardexRepository
	Cuentas     repository.CuentaXCobrarRepository
	Cuotas      repository.CuotaRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad kardex + cuenta por
// cobrar: o ambos quedan escritos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// CuentaOpener abre una cuenta por cobrar con su plan de cuotas usando los
// repositorios de la transacción del caller (misma tx que el kardex).
type CuentaOpener interface {
	AbrirCuentaEnTx(
		cuentaRepo repository.CuentaXCobrarRepository,
		cuotaRepo repository.CuotaRepository,
		numFactura string,
		montoDeuda decimal.Decimal,
		numCuotas, tiempoCobro int,
		interes decimal.Decimal,
		clienteID string,
		fechaVenta time.Time,
	) (*entity.CuentaXCobrar, []*entity.Cuota, error)
}
