package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcastillo/inventario-api/internal/application/dto"
	"github.com/jpcastillo/inventario-api/internal/application/ledger"
)

// MovimientoHandler maneja compras, ventas y la consulta del kardex (protegido).
type MovimientoHandler struct {
	uc *ledger.UseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *ledger.UseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Compra godoc
// @Summary      Registrar compra (entrada de inventario)
// @Description  Recalcula el costo promedio ponderado y sella la línea de kardex.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompraRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.CompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimiento/compra [post]
func (h *MovimientoHandler) Compra(c *fiber.Ctx) error {
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CostoUnitario == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "costo es requerido"})
	}
	res, err := h.uc.RegistrarCompra(c.Context(), ledger.CompraInput{
		ProductoID:    in.ProductoID,
		Unidades:      in.Unidades,
		CostoUnitario: *in.CostoUnitario,
		ProveedorID:   in.ProveedorID,
		UserID:        GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompraResponse{
		Movimiento: dto.ToMovimientoResponse(res.Movimiento),
		Kardex:     dto.ToKardexEntryResponse(res.Kardex),
	})
}

// Venta godoc
// @Summary      Registrar ventas (salidas de inventario)
// @Description  Recibe un arreglo de ventas. Cada venta es una transacción:
// @Description  kardex y cuenta por cobrar (CREDITO) se confirman o revierten juntos.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.VentaRequest  true  "Ventas a registrar"
// @Success      201   {array}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimiento/venta [post]
func (h *MovimientoHandler) Venta(c *fiber.Ctx) error {
	var ventas []dto.VentaRequest
	if err := c.BodyParser(&ventas); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: se espera un arreglo de ventas"})
	}
	if len(ventas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el arreglo de ventas está vacío"})
	}

	userID := GetUserID(c)
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		in := ledger.VentaInput{
			ProductoID:       v.Movimiento.ProductoID,
			Unidades:         v.Movimiento.Unidades,
			Precio:           v.Movimiento.Precio,
			TipoPago:         v.Movimiento.TipoPago,
			FechaVencimiento: v.Movimiento.FechaVencimiento,
			ClienteID:        v.Movimiento.ClienteID,
			NumFactura:       v.Movimiento.NumFactura,
			UserID:           userID,
		}
		if v.CuentaCobrar != nil {
			in.Credito = &ledger.CreditoInput{
				MontoDeuda:  v.CuentaCobrar.MontoDeuda,
				NumCuotas:   v.CuentaCobrar.NumCuotas,
				TiempoCobro: v.CuentaCobrar.TiempoCobro,
				Interes:     v.CuentaCobrar.Interes,
			}
		}
		res, err := h.uc.RegistrarVenta(c.Context(), in)
		if err != nil {
			return respondError(c, err)
		}
		vr := dto.VentaResponse{
			Movimiento: dto.ToMovimientoResponse(res.Movimiento),
			Kardex:     dto.ToKardexEntryResponse(res.Kardex),
		}
		if res.Cuenta != nil {
			vr.CuentaCobrar = dto.ToCuentaResponse(res.Cuenta)
			vr.Cuotas = make([]dto.CuotaResponse, 0, len(res.Cuotas))
			for _, cu := range res.Cuotas {
				vr.Cuotas = append(vr.Cuotas, dto.ToCuotaResponse(cu))
			}
		}
		out = append(out, vr)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProducto godoc
// @Summary      Listar movimientos de un producto
// @Description  Movimientos crudos en orden cronológico, con factura y tipo de pago.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimiento/producto/{productoId} [get]
func (h *MovimientoHandler) ListByProducto(c *fiber.Ctx) error {
	movs, err := h.uc.Movimientos(c.Context(), c.Params("productoId"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.ToMovimientoResponse(m))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/movimiento/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.uc.GetMovimiento(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToMovimientoResponse(mov))
}

// Kardex godoc
// @Summary      Consultar kardex de un producto
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.KardexEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/kardex/{productoId} [get]
func (h *MovimientoHandler) Kardex(c *fiber.Ctx) error {
	entries, err := h.uc.Kardex(c.Context(), c.Params("productoId"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.KardexEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToKardexEntryResponse(e))
	}
	return c.JSON(out)
}
