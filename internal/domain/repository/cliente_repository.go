package repository

import "github.com/jpcastillo/inventario-api/internal/domain/entity"

// ClienteProvRepository define el puerto de persistencia para clientes/proveedores.
type ClienteProvRepository interface {
	Create(c *entity.ClienteProv) error
	GetByID(id string) (*entity.ClienteProv, error)
	List() ([]*entity.ClienteProv, error)
	Update(c *entity.ClienteProv) error
	ToggleEstado(id string) (string, error)
	Delete(id string) error
}
