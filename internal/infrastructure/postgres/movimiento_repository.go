package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoCols = `id, tipo, fecha, producto_id, unidades, stock, costo_unitario, precio, tipo_pago, fecha_vencimiento, cliente_id, num_factura, created_at, created_by`

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (append-only).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento. Los movimientos nunca se actualizan ni borran:
// solo se compensan con contramovimientos.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (` + movimientoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Tipo, m.Fecha, m.ProductoID, m.Unidades, m.Stock, m.CostoUnitario, m.Precio,
		nullIfEmpty(m.TipoPago), m.FechaVencimiento, nullIfEmpty(m.ClienteID),
		nullIfEmpty(m.NumFactura), m.CreatedAt, nullIfEmpty(m.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+movimientoCols+` FROM movimientos WHERE id = $1`, id)
	m, err := scanMovimiento(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// ListByProducto lista los movimientos de un producto en orden cronológico.
func (r *MovimientoRepo) ListByProducto(productoID string) ([]*entity.Movimiento, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movimientoCols+` FROM movimientos WHERE producto_id = $1 ORDER BY fecha`, productoID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var tipoPago, clienteID, numFactura, createdBy *string
	err := row.Scan(
		&m.ID, &m.Tipo, &m.Fecha, &m.ProductoID, &m.Unidades, &m.Stock, &m.CostoUnitario, &m.Precio,
		&tipoPago, &m.FechaVencimiento, &clienteID, &numFactura, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	if tipoPago != nil {
		m.TipoPago = *tipoPago
	}
	if clienteID != nil {
		m.ClienteID = *clienteID
	}
	if numFactura != nil {
		m.NumFactura = *numFactura
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}
