package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/application/dto"
	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. Costo y stock se manejan
// vía movimientos, nunca por aquí.
type ProductoUseCase struct {
	repo       repository.ProductoRepository
	kardexRepo repository.KardexRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, kardexRepo repository.KardexRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, kardexRepo: kardexRepo}
}

// Crear crea un nuevo producto con costo 0 y estado ACTIVO.
func (uc *ProductoUseCase) Crear(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:               uuid.New().String(),
		Codigo:           in.Codigo,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		UnidadesMin:      in.UnidadesMin,
		Estado:           entity.EstadoActivo,
		CategoriaID:      in.CategoriaID,
		Costo:            decimal.Zero,
		Precio:           in.Precio,
		PorcentajeGan:    in.PorcentajeGan,
		FechaVencimiento: in.FechaVencimiento,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return dto.ToProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductoResponse(producto), nil
}

// Listar lista todos los productos.
func (uc *ProductoUseCase) Listar() ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *dto.ToProductoResponse(p))
	}
	return out, nil
}

// ListarPagina devuelve una página con el sobre que consume el cliente
// (content, totalElements, totalPages, number, size, first, last).
func (uc *ProductoUseCase) ListarPagina(page, size int) (*dto.ProductoPageResponse, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	productos, total, err := uc.repo.ListPage(size, page*size)
	if err != nil {
		return nil, err
	}
	content := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		content = append(content, *dto.ToProductoResponse(p))
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &dto.ProductoPageResponse{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}, nil
}

// Actualizar actualiza un producto. No permite modificar el costo.
func (uc *ProductoUseCase) Actualizar(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.UnidadesMin != nil {
		producto.UnidadesMin = *in.UnidadesMin
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = *in.CategoriaID
	}
	if in.Precio != nil {
		producto.Precio = *in.Precio
	}
	if in.PorcentajeGan != nil {
		producto.PorcentajeGan = *in.PorcentajeGan
	}
	if in.FechaVencimiento != nil {
		producto.FechaVencimiento = in.FechaVencimiento
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return dto.ToProductoResponse(producto), nil
}

// ToggleEstado invierte ACTIVO<->INACTIVO en un solo UPDATE atómico
// (lee-y-voltea en la misma sentencia: reintentable sin efectos dobles).
func (uc *ProductoUseCase) ToggleEstado(id string) (string, error) {
	return uc.repo.ToggleEstado(id)
}

// Eliminar borra un producto sin historial; con movimientos en kardex el
// borrado degrada a desactivación para no romper consultas históricas.
func (uc *ProductoUseCase) Eliminar(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	n, err := uc.kardexRepo.CountByProducto(id)
	if err != nil {
		return err
	}
	if n > 0 {
		if producto.Estado == entity.EstadoActivo {
			_, err = uc.repo.ToggleEstado(id)
		}
		return err
	}
	return uc.repo.Delete(id)
}
