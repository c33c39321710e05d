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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO categorias (id, nombre, descripcion, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Nombre, c.Descripcion, c.Estado, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), `
		SELECT id, nombre, descripcion, estado, created_at, updated_at
		FROM categorias WHERE id = $1`, id).Scan(
		&c.ID, &c.Nombre, &c.Descripcion, &c.Estado, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update actualiza nombre y descripción.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE categorias SET nombre = $2, descripcion = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Nombre, c.Descripcion, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// List lista todas las categorías.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, nombre, descripcion, estado, created_at, updated_at
		FROM categorias ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.Estado, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ToggleEstado invierte ACTIVO<->INACTIVO atómicamente y devuelve el estado resultante.
func (r *CategoriaRepo) ToggleEstado(id string) (string, error) {
	var estado string
	err := r.q.QueryRow(context.Background(), `
		UPDATE categorias
		SET estado = CASE WHEN estado = 'ACTIVO' THEN 'INACTIVO' ELSE 'ACTIVO' END,
		    updated_at = now()
		WHERE id = $1
		RETURNING estado`, id).Scan(&estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("toggle estado categoria: %w", err)
	}
	return estado, nil
}

// Delete elimina una categoría por ID.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
