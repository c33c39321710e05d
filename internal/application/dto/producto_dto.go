package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// CreateProductoRequest entrada para crear un producto. Costo inicia en 0.
type CreateProductoRequest struct {
	Codigo           string          `json:"codigoProd" validate:"required,min=1,max=100"`
	Nombre           string          `json:"nombreProd" validate:"required,min=1,max=200"`
	Descripcion      string          `json:"descripcionProd"`
	UnidadesMin      int64           `json:"unidadesMin"`
	CategoriaID      string          `json:"codigoCat"`
	Precio           decimal.Decimal `json:"precio"`
	PorcentajeGan    decimal.Decimal `json:"porcentajeGan"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento,omitempty"`
}

// UpdateProductoRequest entrada para actualizar un producto (sin Costo: se maneja vía movimientos).
type UpdateProductoRequest struct {
	Nombre           *string          `json:"nombreProd"`
	Descripcion      *string          `json:"descripcionProd"`
	UnidadesMin      *int64           `json:"unidadesMin"`
	CategoriaID      *string          `json:"codigoCat"`
	Precio           *decimal.Decimal `json:"precio"`
	PorcentajeGan    *decimal.Decimal `json:"porcentajeGan"`
	FechaVencimiento *time.Time       `json:"fechaVencimiento"`
}

// ProductoResponse salida de un producto. PrecioSugerido es informativo
// (costo * (1 + porcentajeGan/100)) y nunca se aplica automáticamente.
type ProductoResponse struct {
	ID               string          `json:"idProducto"`
	Codigo           string          `json:"codigoProd"`
	Nombre           string          `json:"nombreProd"`
	Descripcion      string          `json:"descripcionProd"`
	UnidadesMin      int64           `json:"unidadesMin"`
	Estado           string          `json:"estadoProd"`
	CategoriaID      string          `json:"codigoCat"`
	Costo            decimal.Decimal `json:"costo"`
	Precio           decimal.Decimal `json:"precio"`
	PorcentajeGan    decimal.Decimal `json:"porcentajeGan"`
	PrecioSugerido   decimal.Decimal `json:"precioSugerido"`
	FechaVencimiento *time.Time      `json:"fechaVencimiento,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ProductoPageResponse página de productos con el sobre de paginación que consume el cliente.
type ProductoPageResponse struct {
	Content       []ProductoResponse `json:"content"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
	Number        int                `json:"number"`
	Size          int                `json:"size"`
	First         bool               `json:"first"`
	Last          bool               `json:"last"`
}

// ToProductoResponse mapea la entidad a su DTO de salida.
func ToProductoResponse(p *entity.Producto) *ProductoResponse {
	return &ProductoResponse{
		ID:               p.ID,
		Codigo:           p.Codigo,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		UnidadesMin:      p.UnidadesMin,
		Estado:           p.Estado,
		CategoriaID:      p.CategoriaID,
		Costo:            p.Costo,
		Precio:           p.Precio,
		PorcentajeGan:    p.PorcentajeGan,
		PrecioSugerido:   p.PrecioSugerido(),
		FechaVencimiento: p.FechaVencimiento,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
