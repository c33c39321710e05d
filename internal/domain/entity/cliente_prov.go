package entity

import "time"

// Roles del directorio de terceros.
const (
	TipoCliente   = "CLIENTE"
	TipoProveedor = "PROVEEDOR"
)

// ClienteProv representa un cliente o proveedor referenciado por movimientos y cuentas.
type ClienteProv struct {
	ID           string
	Nombre       string
	NumDocumento string // NIT o cédula
	Direccion    string
	Telefono     string
	Email        string
	Tipo         string // CLIENTE o PROVEEDOR
	Estado       string // ACTIVO, INACTIVO
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
