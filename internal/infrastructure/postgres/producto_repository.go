package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoCols = `id, codigo, nombre, descripcion, unidades_min, estado, categoria_id, costo, precio, porcentaje_gan, fecha_vencimiento, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto. Costo inicia en 0.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.UnidadesMin, p.Estado, nullIfEmpty(p.CategoriaID),
		p.Costo, p.Precio, p.PorcentajeGan, p.FechaVencimiento, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoCols+` FROM productos WHERE id = $1`, id)
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoCols+` FROM productos WHERE codigo = $1`, codigo)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Serializa los movimientos de un mismo producto; productos distintos no compiten.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoCols+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductoRepo) get(query string, arg any) (*entity.Producto, error) {
	var p entity.Producto
	var categoriaID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.UnidadesMin, &p.Estado, &categoriaID,
		&p.Costo, &p.Precio, &p.PorcentajeGan, &p.FechaVencimiento, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	if categoriaID != nil {
		p.CategoriaID = *categoriaID
	}
	return &p, nil
}

// Update actualiza un producto. No modifica Costo (se maneja vía movimientos).
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, unidades_min = $4, categoria_id = $5,
		    precio = $6, porcentaje_gan = $7, fecha_vencimiento = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.UnidadesMin, nullIfEmpty(p.CategoriaID),
		p.Precio, p.PorcentajeGan, p.FechaVencimiento, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateCosto actualiza solo el costo promedio (usado por el motor de kardex).
func (r *ProductoRepo) UpdateCosto(id string, costo decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET costo = $2, updated_at = now() WHERE id = $1`,
		id, costo,
	)
	if err != nil {
		return fmt.Errorf("update costo producto: %w", err)
	}
	return nil
}

// List lista todos los productos.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productoCols+` FROM productos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListPage lista productos con paginación y devuelve el total.
func (r *ProductoRepo) ListPage(limit, offset int) ([]*entity.Producto, int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM productos`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productoCols+` FROM productos ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos page: %w", err)
	}
	defer rows.Close()
	list, err := r.scanAll(rows)
	return list, total, err
}

func (r *ProductoRepo) scanAll(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		var categoriaID *string
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.UnidadesMin, &p.Estado, &categoriaID,
			&p.Costo, &p.Precio, &p.PorcentajeGan, &p.FechaVencimiento, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		if categoriaID != nil {
			p.CategoriaID = *categoriaID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ToggleEstado invierte ACTIVO<->INACTIVO en una sola sentencia y devuelve el
// estado resultante. Leer-y-voltear en el mismo UPDATE lo hace seguro ante reintentos.
func (r *ProductoRepo) ToggleEstado(id string) (string, error) {
	var estado string
	err := r.q.QueryRow(context.Background(), `
		UPDATE productos
		SET estado = CASE WHEN estado = 'ACTIVO' THEN 'INACTIVO' ELSE 'ACTIVO' END,
		    updated_at = now()
		WHERE id = $1
		RETURNING estado`, id).Scan(&estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("toggle estado producto: %w", err)
	}
	return estado, nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// nullIfEmpty mapea "" a NULL para referencias opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
