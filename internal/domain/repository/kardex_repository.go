package repository

import "github.com/jpcastillo/inventario-api/internal/domain/entity"

// MovimientoRepository persiste movimientos de inventario (append-only).
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	ListByProducto(productoID string) ([]*entity.Movimiento, error)
}

// KardexRepository persiste las líneas de kardex (append-only, secuencia por producto).
type KardexRepository interface {
	Append(e *entity.KardexEntry) error
	// GetLast devuelve la última línea del producto (mayor secuencia) o nil si no hay.
	GetLast(productoID string) (*entity.KardexEntry, error)
	ListByProducto(productoID string) ([]*entity.KardexEntry, error)
	CountByProducto(productoID string) (int64, error)
}
