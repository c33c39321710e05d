package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpcastillo/inventario-api/internal/application/ledger"
	"github.com/jpcastillo/inventario-api/internal/application/receivable"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)
var _ receivable.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El Rollback diferido garantiza que un fallo a mitad del callback no deje
// estado parcial (kardex sin cuenta o cuenta sin kardex).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := ledger.TxRepos{
		Productos:   NewProductoRepository(tx),
		Movimientos: NewMovimientoRepository(tx),
		Kardex:      NewKardexRepository(tx),
		Cuentas:     NewCuentaRepository(tx),
		Cuotas:      NewCuotaRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCuentas inicia una transacción solo con los repos de cuentas y cuotas
// (apertura/eliminación de cuenta directa).
func (r *TxRunner) RunCuentas(ctx context.Context, fn func(
	cuentaRepo repository.CuentaXCobrarRepository,
	cuotaRepo repository.CuotaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCuentaRepository(tx), NewCuotaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
