package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcastillo/inventario-api/internal/application/dto"
	"github.com/jpcastillo/inventario-api/internal/application/receivable"
)

// CuotaHandler maneja las cuotas de las cuentas por cobrar (protegido).
type CuotaHandler struct {
	uc *receivable.UseCase
}

// NewCuotaHandler construye el handler.
func NewCuotaHandler(uc *receivable.UseCase) *CuotaHandler {
	return &CuotaHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar cuota manual a una cuenta
// @Tags         cuotas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCuotaRequest  true  "Datos de la cuota"
// @Success      201   {object}  dto.CuotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/cuotas [post]
func (h *CuotaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCuotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCuota(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cuota por ID
// @Description  Reconcilia PENDIENTE a VENCIDA si ya pasó la fecha de pago.
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuota"
// @Success      200  {object}  dto.CuotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/cuotas/{id} [get]
func (h *CuotaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetCuota(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cuotas
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CuotaResponse
// @Router       /api/inventario/cuotas [get]
func (h *CuotaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListarCuotas()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCuenta godoc
// @Summary      Listar cuotas de una cuenta por cobrar
// @Description  Cuotas en orden de número. Reconcilia vencidas en lectura.
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Param        cuentaId  path  string  true  "ID de la cuenta por cobrar"
// @Success      200  {array}  dto.CuotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/cuotas/cuenta/{cuentaId} [get]
func (h *CuotaHandler) ListByCuenta(c *fiber.Ctx) error {
	out, err := h.uc.ListarCuotasDeCuenta(c.Params("cuentaId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cuota no pagada
// @Tags         cuotas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuota"
// @Param        body  body  dto.UpdateCuotaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CuotaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/cuotas/{id} [put]
func (h *CuotaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCuotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ActualizarCuota(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pagar godoc
// @Summary      Marcar cuota como pagada
// @Description  PENDIENTE o VENCIDA pasa a PAGADA. El doble pago falla con 409.
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuota"
// @Success      200  {object}  dto.CuotaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventario/cuotas/pagar/{id} [put]
func (h *CuotaHandler) Pagar(c *fiber.Ctx) error {
	out, err := h.uc.MarcarPagada(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuota
// @Tags         cuotas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cuota"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/cuotas/{id} [delete]
func (h *CuotaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.EliminarCuota(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
