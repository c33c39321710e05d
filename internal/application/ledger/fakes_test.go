package ledger_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcastillo/inventario-api/internal/application/ledger"
	"github.com/jpcastillo/inventario-api/internal/domain"
	"github.com/jpcastillo/inventario-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: mismo contrato que los adaptadores de PostgreSQL, estado
// compartido en memStore. El runner de tx restaura un snapshot ante error para
// reproducir el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	productos   map[string]entity.Producto
	movimientos []entity.Movimiento
	kardex      []entity.KardexEntry
	cuentas     map[string]entity.CuentaXCobrar
	cuotas      []entity.Cuota
}

func newMemStore() *memStore {
	return &memStore{
		productos: make(map[string]entity.Producto),
		cuentas:   make(map[string]entity.CuentaXCobrar),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.productos {
		cp.productos[k] = v
	}
	for k, v := range s.cuentas {
		cp.cuentas[k] = v
	}
	cp.movimientos = append([]entity.Movimiento(nil), s.movimientos...)
	cp.kardex = append([]entity.KardexEntry(nil), s.kardex...)
	cp.cuotas = append([]entity.Cuota(nil), s.cuotas...)
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.productos = snap.productos
	s.movimientos = snap.movimientos
	s.kardex = snap.kardex
	s.cuentas = snap.cuentas
	s.cuotas = snap.cuotas
}

// ── ProductoRepository ────────────────────────────────────────────────────────

type memProductoRepo struct{ s *memStore }

func (r *memProductoRepo) Create(p *entity.Producto) error {
	r.s.productos[p.ID] = *p
	return nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	if p, ok := r.s.productos[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.s.productos {
		if p.Codigo == codigo {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *memProductoRepo) Update(p *entity.Producto) error {
	r.s.productos[p.ID] = *p
	return nil
}

func (r *memProductoRepo) UpdateCosto(id string, costo decimal.Decimal) error {
	p, ok := r.s.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Costo = costo
	r.s.productos[id] = p
	return nil
}

func (r *memProductoRepo) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.s.productos))
	for _, p := range r.s.productos {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

func (r *memProductoRepo) ListPage(limit, offset int) ([]*entity.Producto, int64, error) {
	all, _ := r.List()
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memProductoRepo) ToggleEstado(id string) (string, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	if p.Estado == entity.EstadoActivo {
		p.Estado = entity.EstadoInactivo
	} else {
		p.Estado = entity.EstadoActivo
	}
	r.s.productos[id] = p
	return p.Estado, nil
}

func (r *memProductoRepo) Delete(id string) error {
	delete(r.s.productos, id)
	return nil
}

// ── MovimientoRepository ──────────────────────────────────────────────────────

type memMovimientoRepo struct{ s *memStore }

func (r *memMovimientoRepo) Create(m *entity.Movimiento) error {
	r.s.movimientos = append(r.s.movimientos, *m)
	return nil
}

func (r *memMovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	for _, m := range r.s.movimientos {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovimientoRepo) ListByProducto(productoID string) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.s.movimientos {
		if m.ProductoID == productoID {
			cp := m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── KardexRepository ──────────────────────────────────────────────────────────

type memKardexRepo struct{ s *memStore }

func (r *memKardexRepo) Append(e *entity.KardexEntry) error {
	for _, k := range r.s.kardex {
		if k.ProductoID == e.ProductoID && k.Secuencia == e.Secuencia {
			return domain.ErrConflict
		}
	}
	r.s.kardex = append(r.s.kardex, *e)
	return nil
}

func (r *memKardexRepo) GetLast(productoID string) (*entity.KardexEntry, error) {
	var last *entity.KardexEntry
	for i := range r.s.kardex {
		k := r.s.kardex[i]
		if k.ProductoID == productoID && (last == nil || k.Secuencia > last.Secuencia) {
			cp := k
			last = &cp
		}
	}
	return last, nil
}

func (r *memKardexRepo) ListByProducto(productoID string) ([]*entity.KardexEntry, error) {
	var out []*entity.KardexEntry
	for i := range r.s.kardex {
		if r.s.kardex[i].ProductoID == productoID {
			cp := r.s.kardex[i]
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Secuencia < out[j].Secuencia })
	return out, nil
}

func (r *memKardexRepo) CountByProducto(productoID string) (int64, error) {
	var n int64
	for i := range r.s.kardex {
		if r.s.kardex[i].ProductoID == productoID {
			n++
		}
	}
	return n, nil
}

// ── CuentaXCobrarRepository ───────────────────────────────────────────────────

type memCuentaRepo struct{ s *memStore }

func (r *memCuentaRepo) Create(c *entity.CuentaXCobrar) error {
	for _, e := range r.s.cuentas {
		if e.NumFactura == c.NumFactura {
			return domain.ErrInvalidAccount
		}
	}
	r.s.cuentas[c.ID] = *c
	return nil
}

func (r *memCuentaRepo) GetByID(id string) (*entity.CuentaXCobrar, error) {
	if c, ok := r.s.cuentas[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCuentaRepo) GetByNumFactura(numFactura string) (*entity.CuentaXCobrar, error) {
	for _, c := range r.s.cuentas {
		if c.NumFactura == numFactura {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCuentaRepo) List() ([]*entity.CuentaXCobrar, error) {
	out := make([]*entity.CuentaXCobrar, 0, len(r.s.cuentas))
	for _, c := range r.s.cuentas {
		cp := c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCuentaRepo) Update(c *entity.CuentaXCobrar) error {
	r.s.cuentas[c.ID] = *c
	return nil
}

func (r *memCuentaRepo) Delete(id string) error {
	delete(r.s.cuentas, id)
	return nil
}

// ── CuotaRepository ───────────────────────────────────────────────────────────

type memCuotaRepo struct{ s *memStore }

func (r *memCuotaRepo) Create(c *entity.Cuota) error {
	r.s.cuotas = append(r.s.cuotas, *c)
	return nil
}

func (r *memCuotaRepo) GetByID(id string) (*entity.Cuota, error) {
	for _, c := range r.s.cuotas {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCuotaRepo) List() ([]*entity.Cuota, error) {
	out := make([]*entity.Cuota, 0, len(r.s.cuotas))
	for i := range r.s.cuotas {
		cp := r.s.cuotas[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCuotaRepo) ListByCuenta(cuentaID string) ([]*entity.Cuota, error) {
	var out []*entity.Cuota
	for i := range r.s.cuotas {
		if r.s.cuotas[i].CuentaID == cuentaID {
			cp := r.s.cuotas[i]
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out, nil
}

func (r *memCuotaRepo) Update(c *entity.Cuota) error {
	for i := range r.s.cuotas {
		if r.s.cuotas[i].ID == c.ID {
			r.s.cuotas[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memCuotaRepo) MarcarPagada(id string, pagadaAt time.Time) (bool, error) {
	for i := range r.s.cuotas {
		if r.s.cuotas[i].ID == id {
			if r.s.cuotas[i].Estado == entity.CuotaPagada {
				return false, nil
			}
			r.s.cuotas[i].Estado = entity.CuotaPagada
			p := pagadaAt
			r.s.cuotas[i].PagadaAt = &p
			return true, nil
		}
	}
	return false, nil
}

func (r *memCuotaRepo) MarcarVencida(id string) (bool, error) {
	for i := range r.s.cuotas {
		if r.s.cuotas[i].ID == id {
			if r.s.cuotas[i].Estado != entity.CuotaPendiente {
				return false, nil
			}
			r.s.cuotas[i].Estado = entity.CuotaVencida
			return true, nil
		}
	}
	return false, nil
}

func (r *memCuotaRepo) Delete(id string) error {
	for i := range r.s.cuotas {
		if r.s.cuotas[i].ID == id {
			r.s.cuotas = append(r.s.cuotas[:i], r.s.cuotas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memCuotaRepo) DeleteByCuenta(cuentaID string) error {
	var rest []entity.Cuota
	for _, c := range r.s.cuotas {
		if c.CuentaID != cuentaID {
			rest = append(rest, c)
		}
	}
	r.s.cuotas = rest
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// memTxRunner toma un snapshot antes del callback y lo restaura si falla,
// emulando el rollback transaccional.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(repos ledger.TxRepos) error) error {
	snap := r.s.snapshot()
	err := fn(ledger.TxRepos{
		Productos:   &memProductoRepo{s: r.s},
		Movimientos: &memMovimientoRepo{s: r.s},
		Kardex:      &memKardexRepo{s: r.s},
		Cuentas:     &memCuentaRepo{s: r.s},
		Cuotas:      &memCuotaRepo{s: r.s},
	})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}
