package receivable

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/application/dto"
	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
	receivabledom "github.com/jpcastillo/inventario-api/internal/domain/receivable"
	"github.com/jpcastillo/inventario-api/internal/domain/repository"
)

// UseCase gestiona cuentas por cobrar y cuotas: apertura con plan de
// amortización, pago de cuotas y reconciliación de vencidas en lectura.
type UseCase struct {
	txRunner   TxRunner
	cuentaRepo repository.CuentaXCobrarRepository
	cuotaRepo  repository.CuotaRepository
}

// NewUseCase construye el caso de uso de cuentas por cobrar.
func NewUseCase(txRunner TxRunner, cuentaRepo repository.CuentaXCobrarRepository, cuotaRepo repository.CuotaRepository) *UseCase {
	return &UseCase{txRunner: txRunner, cuentaRepo: cuentaRepo, cuotaRepo: cuotaRepo}
}

// AbrirCuentaEnTx abre una cuenta por cobrar con su plan de cuotas usando los
// repositorios de la transacción del caller (la misma tx del kardex en ventas
// a crédito). Implementa ledger.CuentaOpener.
func (uc *UseCase) AbrirCuentaEnTx(
	cuentaRepo repository.CuentaXCobrarRepository,
	cuotaRepo repository.CuotaRepository,
	numFactura string,
	montoDeuda decimal.Decimal,
	numCuotas, tiempoCobro int,
	interes decimal.Decimal,
	clienteID string,
	fechaVenta time.Time,
) (*entity.CuentaXCobrar, []*entity.Cuota, error) {
	if numFactura == "" {
		return nil, nil, domain.ErrInvalidAccount
	}
	existente, err := cuentaRepo.GetByNumFactura(numFactura)
	if err != nil {
		return nil, nil, err
	}
	if existente != nil {
		return nil, nil, domain.ErrInvalidAccount
	}

	cuotaBase, plan, err := receivabledom.GenerarPlan(montoDeuda, numCuotas, tiempoCobro, interes, fechaVenta)
	if err != nil {
		return nil, nil, err
	}

	cuenta := &entity.CuentaXCobrar{
		ID:          uuid.New().String(),
		NumFactura:  numFactura,
		MontoDeuda:  montoDeuda,
		NumCuotas:   numCuotas,
		TiempoCobro: tiempoCobro,
		Interes:     interes,
		CuotaBase:   cuotaBase,
		ClienteID:   clienteID,
		CreatedAt:   fechaVenta,
	}
	if err := cuentaRepo.Create(cuenta); err != nil {
		return nil, nil, err
	}

	cuotas := make([]*entity.Cuota, 0, len(plan))
	for _, p := range plan {
		cuota := &entity.Cuota{
			ID:        uuid.New().String(),
			CuentaID:  cuenta.ID,
			Numero:    p.Numero,
			Valor:     p.Valor,
			FechaPago: p.FechaPago,
			Estado:    entity.CuotaPendiente,
		}
		if err := cuotaRepo.Create(cuota); err != nil {
			return nil, nil, err
		}
		cuotas = append(cuotas, cuota)
	}
	return cuenta, cuotas, nil
}

// CrearCuenta abre una cuenta por cobrar directa (POST /pagarxcobrar) con sus
// cuotas en una transacción propia.
func (uc *UseCase) CrearCuenta(ctx context.Context, in dto.CreateCuentaRequest) (*dto.CuentaResponse, []dto.CuotaResponse, error) {
	var cuenta *entity.CuentaXCobrar
	var cuotas []*entity.Cuota
	err := uc.txRunner.RunCuentas(ctx, func(cuentaRepo repository.CuentaXCobrarRepository, cuotaRepo repository.CuotaRepository) error {
		var err error
		cuenta, cuotas, err = uc.AbrirCuentaEnTx(cuentaRepo, cuotaRepo,
			in.NumFactura, in.MontoDeuda, in.NumCuotas, in.TiempoCobro, in.Interes,
			in.ClienteID, time.Now())
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.CuotaResponse, 0, len(cuotas))
	for _, c := range cuotas {
		out = append(out, dto.ToCuotaResponse(c))
	}
	return dto.ToCuentaResponse(cuenta), out, nil
}

// GetCuenta obtiene una cuenta por ID.
func (uc *UseCase) GetCuenta(id string) (*dto.CuentaResponse, error) {
	cuenta, err := uc.cuentaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCuentaResponse(cuenta), nil
}

// ListarCuentas lista todas las cuentas por cobrar.
func (uc *UseCase) ListarCuentas() ([]dto.CuentaResponse, error) {
	cuentas, err := uc.cuentaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CuentaResponse, 0, len(cuentas))
	for _, c := range cuentas {
		out = append(out, *dto.ToCuentaResponse(c))
	}
	return out, nil
}

// ActualizarCuenta modifica los campos editables de una cuenta. El plan de
// cuotas ya emitido no se recalcula.
func (uc *UseCase) ActualizarCuenta(id string, in dto.UpdateCuentaRequest) (*dto.CuentaResponse, error) {
	cuenta, err := uc.cuentaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClienteID != nil {
		cuenta.ClienteID = *in.ClienteID
	}
	if err := uc.cuentaRepo.Update(cuenta); err != nil {
		return nil, err
	}
	return dto.ToCuentaResponse(cuenta), nil
}

// EliminarCuenta borra la cuenta y sus cuotas en una transacción.
func (uc *UseCase) EliminarCuenta(ctx context.Context, id string) error {
	cuenta, err := uc.cuentaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cuenta == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCuentas(ctx, func(cuentaRepo repository.CuentaXCobrarRepository, cuotaRepo repository.CuotaRepository) error {
		if err := cuotaRepo.DeleteByCuenta(id); err != nil {
			return err
		}
		return cuentaRepo.Delete(id)
	})
}

// CrearCuota agrega una cuota manual a una cuenta existente.
func (uc *UseCase) CrearCuota(in dto.CreateCuotaRequest) (*dto.CuotaResponse, error) {
	if in.CuentaID == "" || !in.Valor.IsPositive() || in.FechaPago.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	cuenta, err := uc.cuentaRepo.GetByID(in.CuentaID)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, domain.ErrNotFound
	}
	cuota := &entity.Cuota{
		ID:        uuid.New().String(),
		CuentaID:  in.CuentaID,
		Numero:    in.Numero,
		Valor:     in.Valor,
		FechaPago: in.FechaPago,
		Estado:    entity.CuotaPendiente,
	}
	if err := uc.cuotaRepo.Create(cuota); err != nil {
		return nil, err
	}
	out := dto.ToCuotaResponse(cuota)
	return &out, nil
}

// GetCuota obtiene una cuota, reconciliando PENDIENTE -> VENCIDA si ya venció.
func (uc *UseCase) GetCuota(id string) (*dto.CuotaResponse, error) {
	cuota, err := uc.cuotaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuota == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.reconciliar(cuota); err != nil {
		return nil, err
	}
	out := dto.ToCuotaResponse(cuota)
	return &out, nil
}

// ListarCuotas lista todas las cuotas, reconciliando vencidas en lectura.
func (uc *UseCase) ListarCuotas() ([]dto.CuotaResponse, error) {
	cuotas, err := uc.cuotaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CuotaResponse, 0, len(cuotas))
	for _, c := range cuotas {
		if err := uc.reconciliar(c); err != nil {
			return nil, err
		}
		out = append(out, dto.ToCuotaResponse(c))
	}
	return out, nil
}

// ListarCuotasDeCuenta lista las cuotas de una cuenta en orden de número,
// reconciliando vencidas en lectura.
func (uc *UseCase) ListarCuotasDeCuenta(cuentaID string) ([]dto.CuotaResponse, error) {
	cuenta, err := uc.cuentaRepo.GetByID(cuentaID)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, domain.ErrNotFound
	}
	cuotas, err := uc.cuotaRepo.ListByCuenta(cuentaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CuotaResponse, 0, len(cuotas))
	for _, c := range cuotas {
		if err := uc.reconciliar(c); err != nil {
			return nil, err
		}
		out = append(out, dto.ToCuotaResponse(c))
	}
	return out, nil
}

// ActualizarCuota modifica valor o fecha de una cuota no pagada.
func (uc *UseCase) ActualizarCuota(id string, in dto.UpdateCuotaRequest) (*dto.CuotaResponse, error) {
	cuota, err := uc.cuotaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuota == nil {
		return nil, domain.ErrNotFound
	}
	if cuota.Estado == entity.CuotaPagada {
		return nil, domain.ErrConflict
	}
	if in.Valor != nil {
		if !in.Valor.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		cuota.Valor = *in.Valor
	}
	if in.FechaPago != nil {
		cuota.FechaPago = *in.FechaPago
	}
	if err := uc.cuotaRepo.Update(cuota); err != nil {
		return nil, err
	}
	out := dto.ToCuotaResponse(cuota)
	return &out, nil
}

// MarcarPagada transiciona PENDIENTE|VENCIDA -> PAGADA. Doble pago falla con
// ErrAlreadyPaid: la guarda está en el UPDATE del repositorio, así dos pagos
// concurrentes de la misma cuota no pueden ganar ambos.
func (uc *UseCase) MarcarPagada(id string) (*dto.CuotaResponse, error) {
	cuota, err := uc.cuotaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuota == nil {
		return nil, domain.ErrNotFound
	}
	if cuota.Estado == entity.CuotaPagada {
		return nil, domain.ErrAlreadyPaid
	}
	now := time.Now()
	pagada, err := uc.cuotaRepo.MarcarPagada(id, now)
	if err != nil {
		return nil, err
	}
	if !pagada {
		// otro pago ganó la carrera entre la lectura y el UPDATE
		return nil, domain.ErrAlreadyPaid
	}
	cuota.Estado = entity.CuotaPagada
	cuota.PagadaAt = &now
	out := dto.ToCuotaResponse(cuota)
	return &out, nil
}

// EliminarCuota borra una cuota.
func (uc *UseCase) EliminarCuota(id string) error {
	cuota, err := uc.cuotaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cuota == nil {
		return domain.ErrNotFound
	}
	return uc.cuotaRepo.Delete(id)
}

// reconciliar pasa PENDIENTE -> VENCIDA cuando ya pasó la fecha de pago.
// Sin más efecto que el campo de estado. El UPDATE guardado solo toca cuotas
// aún PENDIENTE: si un pago se cruzó entre la lectura y la reconciliación, la
// cuota queda PAGADA y la copia leída no se marca.
func (uc *UseCase) reconciliar(cuota *entity.Cuota) error {
	if cuota.Estado != entity.CuotaPendiente || !time.Now().After(cuota.FechaPago) {
		return nil
	}
	vencida, err := uc.cuotaRepo.MarcarVencida(cuota.ID)
	if err != nil {
		return err
	}
	if vencida {
		cuota.Estado = entity.CuotaVencida
	}
	return nil
}
