package repository

import (
	"time"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// CuentaXCobrarRepository define el puerto de persistencia para cuentas por cobrar.
type CuentaXCobrarRepository interface {
	Create(c *entity.CuentaXCobrar) error
	GetByID(id string) (*entity.CuentaXCobrar, error)
	GetByNumFactura(numFactura string) (*entity.CuentaXCobrar, error)
	List() ([]*entity.CuentaXCobrar, error)
	Update(c *entity.CuentaXCobrar) error
	Delete(id string) error
}

// CuotaRepository define el puerto de persistencia para cuotas.
type CuotaRepository interface {
	Create(c *entity.Cuota) error
	GetByID(id string) (*entity.Cuota, error)
	List() ([]*entity.Cuota, error)
	ListByCuenta(cuentaID string) ([]*entity.Cuota, error)
	Update(c *entity.Cuota) error
	// MarcarPagada sella el pago solo si la cuota no estaba PAGADA. La guarda
	// vive en el UPDATE: dos pagos concurrentes no pueden ganar ambos. Devuelve
	// false si no había cuota por pagar.
	MarcarPagada(id string, pagadaAt time.Time) (bool, error)
	// MarcarVencida pasa PENDIENTE -> VENCIDA. Devuelve false si la cuota ya no
	// estaba PENDIENTE (pagada o vencida por otro lector).
	MarcarVencida(id string) (bool, error)
	Delete(id string) error
	DeleteByCuenta(cuentaID string) error
}
