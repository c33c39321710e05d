package dto

import (
	"time"

	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombreCat" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcionCat"`
}

// UpdateCategoriaRequest entrada para actualizar una categoría.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombreCat"`
	Descripcion *string `json:"descripcionCat"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          string    `json:"codigoCat"`
	Nombre      string    `json:"nombreCat"`
	Descripcion string    `json:"descripcionCat"`
	Estado      string    `json:"estadoCat"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToCategoriaResponse mapea la entidad a su DTO de salida.
func ToCategoriaResponse(c *entity.Categoria) *CategoriaResponse {
	return &CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Estado:      c.Estado,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
