package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcastillo/inventario-api/internal/application/dto"
	"github.com/jpcastillo/inventario-api/internal/application/receivable"
)

// CuentaHandler maneja las cuentas por cobrar y sus cuotas (protegido).
type CuentaHandler struct {
	uc *receivable.UseCase
}

// NewCuentaHandler construye el handler.
func NewCuentaHandler(uc *receivable.UseCase) *CuentaHandler {
	return &CuentaHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir cuenta por cobrar con su plan de cuotas
// @Tags         pagarxcobrar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCuentaRequest  true  "Parámetros de la cuenta"
// @Success      201   {object}  dto.CuentaConCuotasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario/pagarxcobrar [post]
func (h *CuentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCuentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cuenta, cuotas, err := h.uc.CrearCuenta(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CuentaConCuotasResponse{Cuenta: *cuenta, Cuotas: cuotas})
}

// GetByID godoc
// @Summary      Obtener cuenta por cobrar por ID
// @Tags         pagarxcobrar
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.CuentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/pagarxcobrar/{id} [get]
func (h *CuentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetCuenta(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cuentas por cobrar
// @Tags         pagarxcobrar
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CuentaResponse
// @Router       /api/inventario/pagarxcobrar [get]
func (h *CuentaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListarCuentas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cuenta por cobrar
// @Description  El plan de cuotas ya emitido no se recalcula.
// @Tags         pagarxcobrar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateCuentaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CuentaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/pagarxcobrar/{id} [put]
func (h *CuentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCuentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarCuenta(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuenta por cobrar y sus cuotas
// @Tags         pagarxcobrar
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/pagarxcobrar/{id} [delete]
func (h *CuentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.EliminarCuenta(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
