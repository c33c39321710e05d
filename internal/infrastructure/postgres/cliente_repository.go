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

var _ repository.ClienteProvRepository = (*ClienteProvRepo)(nil)

const clienteCols = `id, nombre, num_documento, direccion, telefono, email, tipo, estado, created_at, updated_at`

// ClienteProvRepo implementación de ClienteProvRepository sobre PostgreSQL.
type ClienteProvRepo struct {
	q Querier
}

// NewClienteProvRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteProvRepository(q Querier) *ClienteProvRepo {
	return &ClienteProvRepo{q: q}
}

// Create persiste un cliente/proveedor.
func (r *ClienteProvRepo) Create(c *entity.ClienteProv) error {
	query := `
		INSERT INTO clientes_prov (` + clienteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.NumDocumento, c.Direccion, c.Telefono, c.Email,
		c.Tipo, c.Estado, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente/proveedor por ID.
func (r *ClienteProvRepo) GetByID(id string) (*entity.ClienteProv, error) {
	var c entity.ClienteProv
	err := r.q.QueryRow(context.Background(),
		`SELECT `+clienteCols+` FROM clientes_prov WHERE id = $1`, id).Scan(
		&c.ID, &c.Nombre, &c.NumDocumento, &c.Direccion, &c.Telefono, &c.Email,
		&c.Tipo, &c.Estado, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista todos los clientes/proveedores.
func (r *ClienteProvRepo) List() ([]*entity.ClienteProv, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+clienteCols+` FROM clientes_prov ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClienteProv
	for rows.Next() {
		var c entity.ClienteProv
		if err := rows.Scan(&c.ID, &c.Nombre, &c.NumDocumento, &c.Direccion, &c.Telefono, &c.Email,
			&c.Tipo, &c.Estado, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de un cliente/proveedor.
func (r *ClienteProvRepo) Update(c *entity.ClienteProv) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE clientes_prov
		SET nombre = $2, num_documento = $3, direccion = $4, telefono = $5,
		    email = $6, tipo = $7, updated_at = $8
		WHERE id = $1`,
		c.ID, c.Nombre, c.NumDocumento, c.Direccion, c.Telefono, c.Email, c.Tipo, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// ToggleEstado invierte ACTIVO<->INACTIVO atómicamente y devuelve el estado resultante.
func (r *ClienteProvRepo) ToggleEstado(id string) (string, error) {
	var estado string
	err := r.q.QueryRow(context.Background(), `
		UPDATE clientes_prov
		SET estado = CASE WHEN estado = 'ACTIVO' THEN 'INACTIVO' ELSE 'ACTIVO' END,
		    updated_at = now()
		WHERE id = $1
		RETURNING estado`, id).Scan(&estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("toggle estado cliente: %w", err)
	}
	return estado, nil
}

// Delete elimina un cliente/proveedor. FK desde movimientos/cuentas -> ErrConflict.
func (r *ClienteProvRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes_prov WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
