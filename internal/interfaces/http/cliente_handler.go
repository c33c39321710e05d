package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcastillo/inventario-api/internal/application/directory"
	"github.com/jpcastillo/inventario-api/internal/application/dto"
)

// ClienteHandler maneja el directorio de clientes y proveedores (protegido).
type ClienteHandler struct {
	uc *directory.UseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *directory.UseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente o proveedor
// @Tags         clientesprov
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteProvRequest  true  "Datos del cliente/proveedor"
// @Success      201   {object}  dto.ClienteProvResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/clientesprov [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteProvRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente/proveedor por ID
// @Tags         clientesprov
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente/proveedor"
// @Success      200  {object}  dto.ClienteProvResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/clientesprov/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes y proveedores
// @Tags         clientesprov
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClienteProvResponse
// @Router       /api/inventario/clientesprov [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente/proveedor
// @Tags         clientesprov
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente/proveedor"
// @Param        body  body  dto.UpdateClienteProvRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ClienteProvResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/clientesprov/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteProvRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Activar/desactivar cliente/proveedor
// @Tags         clientesprov
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente/proveedor"
// @Success      200  {object}  dto.EstadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/clientesprov/activar/{id} [put]
func (h *ClienteHandler) Toggle(c *fiber.Ctx) error {
	id := c.Params("id")
	estado, err := h.uc.ToggleEstado(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.EstadoResponse{ID: id, Estado: estado})
}

// Delete godoc
// @Summary      Eliminar cliente/proveedor (referenciado degrada a desactivación)
// @Tags         clientesprov
// @Security     Bearer
// @Param        id  path  string  true  "ID del cliente/proveedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/clientesprov/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
