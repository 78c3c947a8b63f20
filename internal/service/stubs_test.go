package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/model"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubCatalogoRepo struct {
	mu    sync.Mutex
	items []model.CatalogoProducto
}

func (r *stubCatalogoRepo) Create(_ context.Context, c *model.CatalogoProducto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.items = append(r.items, *c)
	return nil
}

func (r *stubCatalogoRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.CatalogoProducto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UsuarioID == usuarioID {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogoRepo) Snapshot(_ context.Context, usuarioID uuid.UUID) ([]model.CatalogoProducto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.CatalogoProducto
	for _, c := range r.items {
		if c.UsuarioID == usuarioID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCatalogoRepo) Count(_ context.Context, usuarioID uuid.UUID) (int64, error) {
	out, _ := r.Snapshot(context.Background(), usuarioID)
	return int64(len(out)), nil
}

func (r *stubCatalogoRepo) FindByClave(_ context.Context, usuarioID uuid.UUID, tipo, marca string) (*model.CatalogoProducto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		c := r.items[i]
		if c.UsuarioID == usuarioID && c.TipoProducto == tipo && c.MarcaFabricante == marca {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubProductoRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]model.Producto
	failCrear bool
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{items: make(map[uuid.UUID]model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCrear {
		return gorm.ErrInvalidData
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.items[p.ID] = *p
	return nil
}

func (r *stubProductoRepo) Snapshot(_ context.Context, usuarioID uuid.UUID) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Producto
	for _, p := range r.items {
		if p.UsuarioID == usuarioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) CountByClave(_ context.Context, usuarioID uuid.UUID, tipo, marca string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.items {
		if p.UsuarioID == usuarioID && p.TipoProducto == tipo && p.MarcaFabricante == marca {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) FindGrupo(_ context.Context, usuarioID uuid.UUID, tipo, marca string, precio decimal.Decimal, caducidad time.Time) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fecha := caducidad.Format("2006-01-02")
	var out []model.Producto
	for _, p := range r.items {
		if p.UsuarioID == usuarioID && p.TipoProducto == tipo && p.MarcaFabricante == marca &&
			p.Precio.Equal(precio) && p.FechaCaducidad.Format("2006-01-02") == fecha {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Delete(_ context.Context, usuarioID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok || p.UsuarioID != usuarioID {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type stubVentaRepo struct {
	mu        sync.Mutex
	items     []model.Venta
	failCrear bool
}

func (r *stubVentaRepo) Create(_ context.Context, v *model.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCrear {
		return gorm.ErrInvalidData
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.items = append(r.items, *v)
	return nil
}

func (r *stubVentaRepo) Snapshot(_ context.Context, usuarioID uuid.UUID) ([]model.Venta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Venta
	for _, v := range r.items {
		if v.UsuarioID == usuarioID {
			out = append(out, v)
		}
	}
	return out, nil
}

type stubPlanRepo struct {
	mu    sync.Mutex
	plans map[uuid.UUID]model.Plan
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[uuid.UUID]model.Plan)}
}

func (r *stubPlanRepo) Find(_ context.Context, usuarioID uuid.UUID) (*model.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[usuarioID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *stubPlanRepo) Upsert(_ context.Context, p *model.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[p.UsuarioID] = *p
	return nil
}

type stubDistribuidorRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]model.Distribuidor
}

func newStubDistribuidorRepo() *stubDistribuidorRepo {
	return &stubDistribuidorRepo{items: make(map[uuid.UUID]model.Distribuidor)}
}

func (r *stubDistribuidorRepo) Create(_ context.Context, d *model.Distribuidor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.items[d.ID] = *d
	return nil
}

func (r *stubDistribuidorRepo) FindByID(_ context.Context, usuarioID, id uuid.UUID) (*model.Distribuidor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok || d.UsuarioID != usuarioID {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *stubDistribuidorRepo) List(_ context.Context, usuarioID uuid.UUID) ([]model.Distribuidor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Distribuidor
	for _, d := range r.items {
		if d.UsuarioID == usuarioID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDistribuidorRepo) Delete(_ context.Context, usuarioID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok || d.UsuarioID != usuarioID {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

type stubUsuarioRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{items: make(map[uuid.UUID]model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.items[u.ID] = *u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email && u.Activo {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}
