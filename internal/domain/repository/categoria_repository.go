package repository

import "github.com/jpcastillo/inventario-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(c *entity.Categoria) error
	List() ([]*entity.Categoria, error)
	ToggleEstado(id string) (string, error)
	Delete(id string) error
}
