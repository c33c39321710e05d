package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

var _ repository.CuotaRepository = (*CuotaRepo)(nil)

const cuotaCols = `id, cuenta_id, numero, valor, fecha_pago, estado, pagada_at`

// CuotaRepo implementación de CuotaRepository sobre PostgreSQL.
type CuotaRepo struct {
	q Querier
}

// NewCuotaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCuotaRepository(q Querier) *CuotaRepo {
	return &CuotaRepo{q: q}
}

// Create persiste una cuota.
func (r *CuotaRepo) Create(c *entity.Cuota) error {
	query := `
		INSERT INTO cuotas (` + cuotaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CuentaID, c.Numero, c.Valor, c.FechaPago, c.Estado, c.PagadaAt,
	)
	if err != nil {
		return fmt.Errorf("insert cuota: %w", err)
	}
	return nil
}

// GetByID obtiene una cuota por ID.
func (r *CuotaRepo) GetByID(id string) (*entity.Cuota, error) {
	var c entity.Cuota
	err := r.q.QueryRow(context.Background(),
		`SELECT `+cuotaCols+` FROM cuotas WHERE id = $1`, id).Scan(
		&c.ID, &c.CuentaID, &c.Numero, &c.Valor, &c.FechaPago, &c.Estado, &c.PagadaAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuota: %w", err)
	}
	return &c, nil
}

// List lista todas las cuotas ordenadas por fecha de pago.
func (r *CuotaRepo) List() ([]*entity.Cuota, error) {
	return r.list(`SELECT ` + cuotaCols + ` FROM cuotas ORDER BY fecha_pago`)
}

// ListByCuenta lista las cuotas de una cuenta en orden de número.
func (r *CuotaRepo) ListByCuenta(cuentaID string) ([]*entity.Cuota, error) {
	return r.list(`SELECT `+cuotaCols+` FROM cuotas WHERE cuenta_id = $1 ORDER BY numero`, cuentaID)
}

func (r *CuotaRepo) list(query string, args ...any) ([]*entity.Cuota, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cuotas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cuota
	for rows.Next() {
		var c entity.Cuota
		if err := rows.Scan(&c.ID, &c.CuentaID, &c.Numero, &c.Valor, &c.FechaPago, &c.Estado, &c.PagadaAt); err != nil {
			return nil, fmt.Errorf("scan cuota: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza valor y fecha de pago de una cuota.
func (r *CuotaRepo) Update(c *entity.Cuota) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cuotas SET valor = $2, fecha_pago = $3 WHERE id = $1`,
		c.ID, c.Valor, c.FechaPago,
	)
	if err != nil {
		return fmt.Errorf("update cuota: %w", err)
	}
	return nil
}

// MarcarPagada sella el pago con la guarda en el propio UPDATE: de dos pagos
// concurrentes solo uno afecta la fila, el otro ve cero filas.
func (r *CuotaRepo) MarcarPagada(id string, pagadaAt time.Time) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE cuotas SET estado = $2, pagada_at = $3 WHERE id = $1 AND estado <> $2`,
		id, entity.CuotaPagada, pagadaAt,
	)
	if err != nil {
		return false, fmt.Errorf("marcar cuota pagada: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarcarVencida pasa PENDIENTE -> VENCIDA sin tocar cuotas ya pagadas o vencidas.
func (r *CuotaRepo) MarcarVencida(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE cuotas SET estado = $2 WHERE id = $1 AND estado = $3`,
		id, entity.CuotaVencida, entity.CuotaPendiente,
	)
	if err != nil {
		return false, fmt.Errorf("marcar cuota vencida: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina una cuota por ID.
func (r *CuotaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cuotas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cuota: %w", err)
	}
	return nil
}

// DeleteByCuenta elimina todas las cuotas de una cuenta (borrado de cuenta).
func (r *CuotaRepo) DeleteByCuenta(cuentaID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cuotas WHERE cuenta_id = $1`, cuentaID)
	if err != nil {
		return fmt.Errorf("delete cuotas de cuenta: %w", err)
	}
	return nil
}
