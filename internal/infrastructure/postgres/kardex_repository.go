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

var _ repository.KardexRepository = (*KardexRepo)(nil)

const kardexCols = `id, producto_id, movimiento_id, secuencia, fecha, tipo, inv_inicial, entrada, salida, inv_final, costo_unitario`

// KardexRepo implementación de KardexRepository sobre PostgreSQL (append-only).
type KardexRepo struct {
	q Querier
}

// NewKardexRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKardexRepository(q Querier) *KardexRepo {
	return &KardexRepo{q: q}
}

// Append persiste una línea de kardex. El unique (producto_id, secuencia)
// respalda la serialización por producto del FOR UPDATE.
func (r *KardexRepo) Append(e *entity.KardexEntry) error {
	query := `
		INSERT INTO kardex (` + kardexCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ProductoID, e.MovimientoID, e.Secuencia, e.Fecha, e.Tipo,
		e.InvInicial, e.Entrada, e.Salida, e.InvFinal, e.CostoUnitario,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("append kardex: %w", err)
	}
	return nil
}

// GetLast devuelve la línea de mayor secuencia del producto, o nil si no hay.
func (r *KardexRepo) GetLast(productoID string) (*entity.KardexEntry, error) {
	var e entity.KardexEntry
	err := r.q.QueryRow(context.Background(),
		`SELECT `+kardexCols+` FROM kardex WHERE producto_id = $1 ORDER BY secuencia DESC LIMIT 1`,
		productoID).Scan(
		&e.ID, &e.ProductoID, &e.MovimientoID, &e.Secuencia, &e.Fecha, &e.Tipo,
		&e.InvInicial, &e.Entrada, &e.Salida, &e.InvFinal, &e.CostoUnitario,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last kardex: %w", err)
	}
	return &e, nil
}

// ListByProducto lista las líneas del producto en orden ascendente de secuencia.
func (r *KardexRepo) ListByProducto(productoID string) ([]*entity.KardexEntry, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+kardexCols+` FROM kardex WHERE producto_id = $1 ORDER BY secuencia`, productoID)
	if err != nil {
		return nil, fmt.Errorf("list kardex: %w", err)
	}
	defer rows.Close()
	var list []*entity.KardexEntry
	for rows.Next() {
		var e entity.KardexEntry
		if err := rows.Scan(&e.ID, &e.ProductoID, &e.MovimientoID, &e.Secuencia, &e.Fecha, &e.Tipo,
			&e.InvInicial, &e.Entrada, &e.Salida, &e.InvFinal, &e.CostoUnitario); err != nil {
			return nil, fmt.Errorf("scan kardex: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// CountByProducto cuenta las líneas de kardex del producto.
func (r *KardexRepo) CountByProducto(productoID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM kardex WHERE producto_id = $1`, productoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count kardex: %w", err)
	}
	return n, nil
}
