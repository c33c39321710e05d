package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Costo y stock se manejan vía movimientos, nunca por Update.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar los movimientos de un mismo producto.
	GetForUpdate(id string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	UpdateCosto(id string, costo decimal.Decimal) error
	List() ([]*entity.Producto, error)
	ListPage(limit, offset int) ([]*entity.Producto, int64, error)
	// ToggleEstado invierte ACTIVO<->INACTIVO en un solo UPDATE atómico y
	// devuelve el estado resultante.
	ToggleEstado(id string) (string, error)
	Delete(id string) error
}
