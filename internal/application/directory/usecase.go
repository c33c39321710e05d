package directory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpcastillo/inventario-api/internal/application/dto"
	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

// UseCase casos de uso CRUD para el directorio de clientes y proveedores.
type UseCase struct {
	repo repository.ClienteProvRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClienteProvRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Crear registra un cliente o proveedor.
func (uc *UseCase) Crear(in dto.CreateClienteProvRequest) (*dto.ClienteProvResponse, error) {
	if in.Nombre == "" || in.NumDocumento == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.TipoCliente && in.Tipo != entity.TipoProveedor {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cliente := &entity.ClienteProv{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		NumDocumento: in.NumDocumento,
		Direccion:    in.Direccion,
		Telefono:     in.Telefono,
		Email:        in.Email,
		Tipo:         in.Tipo,
		Estado:       entity.EstadoActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return dto.ToClienteProvResponse(cliente), nil
}

// GetByID obtiene un cliente/proveedor por ID.
func (uc *UseCase) GetByID(id string) (*dto.ClienteProvResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToClienteProvResponse(cliente), nil
}

// Listar lista clientes y proveedores.
func (uc *UseCase) Listar() ([]dto.ClienteProvResponse, error) {
	clientes, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteProvResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, *dto.ToClienteProvResponse(c))
	}
	return out, nil
}

// Actualizar actualiza los datos de un cliente/proveedor.
func (uc *UseCase) Actualizar(id string, in dto.UpdateClienteProvRequest) (*dto.ClienteProvResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.NumDocumento != nil {
		cliente.NumDocumento = *in.NumDocumento
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Tipo != nil {
		if *in.Tipo != entity.TipoCliente && *in.Tipo != entity.TipoProveedor {
			return nil, domain.ErrInvalidInput
		}
		cliente.Tipo = *in.Tipo
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return dto.ToClienteProvResponse(cliente), nil
}

// ToggleEstado invierte ACTIVO<->INACTIVO atómicamente. Los movimientos
// históricos toleran el cambio: referencian por ID.
func (uc *UseCase) ToggleEstado(id string) (string, error) {
	return uc.repo.ToggleEstado(id)
}

// Eliminar borra un cliente/proveedor. Con movimientos o cuentas que lo
// referencien, la FK degrada el borrado a desactivación.
func (uc *UseCase) Eliminar(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		if err == domain.ErrConflict && cliente.Estado == entity.EstadoActivo {
			_, terr := uc.repo.ToggleEstado(id)
			return terr
		}
		return err
	}
	return nil
}
