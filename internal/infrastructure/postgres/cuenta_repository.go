package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

var _ repository.CuentaXCobrarRepository = (*CuentaRepo)(nil)

const cuentaCols = `id, num_factura, monto_deuda, num_cuotas, tiempo_cobro, interes, cuota_base, cliente_id, created_at`

// CuentaRepo implementación de CuentaXCobrarRepository sobre PostgreSQL.
type CuentaRepo struct {
	q Querier
}

// NewCuentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCuentaRepository(q Querier) *CuentaRepo {
	return &CuentaRepo{q: q}
}

// Create persiste una cuenta por cobrar. El unique en num_factura respalda la
// unicidad de factura entre cuentas abiertas.
func (r *CuentaRepo) Create(c *entity.CuentaXCobrar) error {
	query := `
		INSERT INTO cuentas_x_cobrar (` + cuentaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NumFactura, c.MontoDeuda, c.NumCuotas, c.TiempoCobro, c.Interes,
		c.CuotaBase, nullIfEmpty(c.ClienteID), c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidAccount
		}
		return fmt.Errorf("insert cuenta: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *CuentaRepo) GetByID(id string) (*entity.CuentaXCobrar, error) {
	return r.get(`SELECT `+cuentaCols+` FROM cuentas_x_cobrar WHERE id = $1`, id)
}

// GetByNumFactura obtiene una cuenta por número de factura.
func (r *CuentaRepo) GetByNumFactura(numFactura string) (*entity.CuentaXCobrar, error) {
	return r.get(`SELECT `+cuentaCols+` FROM cuentas_x_cobrar WHERE num_factura = $1`, numFactura)
}

func (r *CuentaRepo) get(query string, arg any) (*entity.CuentaXCobrar, error) {
	var c entity.CuentaXCobrar
	var clienteID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.NumFactura, &c.MontoDeuda, &c.NumCuotas, &c.TiempoCobro, &c.Interes,
		&c.CuotaBase, &clienteID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuenta: %w", err)
	}
	if clienteID != nil {
		c.ClienteID = *clienteID
	}
	return &c, nil
}

// List lista todas las cuentas por cobrar.
func (r *CuentaRepo) List() ([]*entity.CuentaXCobrar, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+cuentaCols+` FROM cuentas_x_cobrar ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cuentas: %w", err)
	}
	defer rows.Close()
	var list []*entity.CuentaXCobrar
	for rows.Next() {
		var c entity.CuentaXCobrar
		var clienteID *string
		if err := rows.Scan(&c.ID, &c.NumFactura, &c.MontoDeuda, &c.NumCuotas, &c.TiempoCobro,
			&c.Interes, &c.CuotaBase, &clienteID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cuenta: %w", err)
		}
		if clienteID != nil {
			c.ClienteID = *clienteID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una cuenta.
func (r *CuentaRepo) Update(c *entity.CuentaXCobrar) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cuentas_x_cobrar SET cliente_id = $2 WHERE id = $1`,
		c.ID, nullIfEmpty(c.ClienteID),
	)
	if err != nil {
		return fmt.Errorf("update cuenta: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *CuentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cuentas_x_cobrar WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cuenta: %w", err)
	}
	return nil
}
