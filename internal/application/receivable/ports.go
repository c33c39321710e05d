package receivable

import (
	"context"

	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función con los repositorios de cuentas y cuotas atados
// a una transacción (creación/eliminación de cuenta con sus cuotas).
type TxRunner interface {
	RunCuentas(ctx context.Context, fn func(
		cuentaRepo repository.CuentaXCobrarRepository,
		cuotaRepo repository.CuotaRepository,
	) error) error
}
