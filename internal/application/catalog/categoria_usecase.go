package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpcastillo/inventario-api/internal/application/dto"
	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Crear crea una categoría con estado ACTIVO.
func (uc *CategoriaUseCase) Crear(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Estado:      entity.EstadoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return dto.ToCategoriaResponse(categoria), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCategoriaResponse(categoria), nil
}

// Listar lista todas las categorías.
func (uc *CategoriaUseCase) Listar() ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, *dto.ToCategoriaResponse(c))
	}
	return out, nil
}

// Actualizar actualiza nombre y descripción.
func (uc *CategoriaUseCase) Actualizar(id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		categoria.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		categoria.Descripcion = *in.Descripcion
	}
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return dto.ToCategoriaResponse(categoria), nil
}

// ToggleEstado invierte ACTIVO<->INACTIVO atómicamente.
func (uc *CategoriaUseCase) ToggleEstado(id string) (string, error) {
	return uc.repo.ToggleEstado(id)
}

// Eliminar borra una categoría. Los productos la referencian de forma débil,
// así que el borrado no los afecta.
func (uc *CategoriaUseCase) Eliminar(id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
