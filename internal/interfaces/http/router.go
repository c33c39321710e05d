package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpcastillo/inventario-api/internal/application/catalog"
	"github.com/jpcastillo/inventario-api/internal/application/directory"
	"github.com/jpcastillo/inventario-api/internal/application/ledger"
	"github.com/jpcastillo/inventario-api/internal/application/receivable"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *catalog.ProductoUseCase
	CategoriaUC *catalog.CategoriaUseCase
	LedgerUC    *ledger.UseCase
	CuentasUC   *receivable.UseCase
	ClientesUC  *directory.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas literales (page, activar,
// pagar) van antes que las de :id para que Fiber no las capture como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/inventario", AuthMiddleware(deps.JWTSecret))

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/page", productoHandler.ListPage)
	productos.Put("/activar/:id", productoHandler.Toggle)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Categorías
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Put("/activar/:id", categoriaHandler.Toggle)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Movimientos y kardex
	movimientoHandler := NewMovimientoHandler(deps.LedgerUC)
	api.Post("/movimiento/compra", movimientoHandler.Compra)
	api.Post("/movimiento/venta", movimientoHandler.Venta)
	api.Get("/movimiento/producto/:productoId", movimientoHandler.ListByProducto)
	api.Get("/movimiento/:id", movimientoHandler.GetByID)
	api.Get("/kardex/:productoId", movimientoHandler.Kardex)

	// Cuentas por cobrar
	cuentas := api.Group("/pagarxcobrar")
	cuentaHandler := NewCuentaHandler(deps.CuentasUC)
	cuentas.Post("/", cuentaHandler.Create)
	cuentas.Get("/", cuentaHandler.List)
	cuentas.Get("/:id", cuentaHandler.GetByID)
	cuentas.Put("/:id", cuentaHandler.Update)
	cuentas.Delete("/:id", cuentaHandler.Delete)

	// Cuotas
	cuotas := api.Group("/cuotas")
	cuotaHandler := NewCuotaHandler(deps.CuentasUC)
	cuotas.Put("/pagar/:id", cuotaHandler.Pagar)
	cuotas.Get("/cuenta/:cuentaId", cuotaHandler.ListByCuenta)
	cuotas.Post("/", cuotaHandler.Create)
	cuotas.Get("/", cuotaHandler.List)
	cuotas.Get("/:id", cuotaHandler.GetByID)
	cuotas.Put("/:id", cuotaHandler.Update)
	cuotas.Delete("/:id", cuotaHandler.Delete)

	// Clientes y proveedores
	clientes := api.Group("/clientesprov")
	clienteHandler := NewClienteHandler(deps.ClientesUC)
	clientes.Put("/activar/:id", clienteHandler.Toggle)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)
}
