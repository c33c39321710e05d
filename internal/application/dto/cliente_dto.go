package dto

import (
	"time"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// CreateClienteProvRequest entrada para crear un cliente o proveedor.
type CreateClienteProvRequest struct {
	Nombre       string `json:"nombreCliente" validate:"required,min=1,max=200"`
	NumDocumento string `json:"numDocumento" validate:"required"`
	Direccion    string `json:"direccion"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email"`
	Tipo         string `json:"tipoCliente" validate:"required"` // CLIENTE o PROVEEDOR
}

// UpdateClienteProvRequest entrada para actualizar un cliente o proveedor.
type UpdateClienteProvRequest struct {
	Nombre       *string `json:"nombreCliente"`
	NumDocumento *string `json:"numDocumento"`
	Direccion    *string `json:"direccion"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email"`
	Tipo         *string `json:"tipoCliente"`
}

// ClienteProvResponse salida de un cliente o proveedor.
type ClienteProvResponse struct {
	ID           string    `json:"codigoCliente"`
	Nombre       string    `json:"nombreCliente"`
	NumDocumento string    `json:"numDocumento"`
	Direccion    string    `json:"direccion"`
	Telefono     string    `json:"telefono"`
	Email        string    `json:"email"`
	Tipo         string    `json:"tipoCliente"`
	Estado       string    `json:"estadoCliente"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToClienteProvResponse mapea la entidad a su DTO de salida.
func ToClienteProvResponse(c *entity.ClienteProv) *ClienteProvResponse {
	return &ClienteProvResponse{
		ID:           c.ID,
		Nombre:       c.Nombre,
		NumDocumento: c.NumDocumento,
		Direccion:    c.Direccion,
		Telefono:     c.Telefono,
		Email:        c.Email,
		Tipo:         c.Tipo,
		Estado:       c.Estado,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
