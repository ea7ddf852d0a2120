package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/fixtures"
)

// collection arena por entidad: mapa por id más el orden de inserción.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) all(clone func(T) T) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.items[id]))
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id string) (T, bool) {
	v, ok := c.items[id]
	if !ok {
		return v, false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return v, true
}

func (c *collection[T]) snapshot() collection[T] {
	cp := collection[T]{items: make(map[string]T, len(c.items)), order: make([]string, len(c.order))}
	for k, v := range c.items {
		cp.items[k] = v
	}
	copy(cp.order, c.order)
	return cp
}

type state struct {
	products  collection[entity.Product]
	suppliers collection[entity.Supplier]
	movements collection[entity.StockMovement]
	alerts    collection[entity.Alert]
}

func newState() state {
	return state{
		products:  newCollection[entity.Product](),
		suppliers: newCollection[entity.Supplier](),
		movements: newCollection[entity.StockMovement](),
		alerts:    newCollection[entity.Alert](),
	}
}

func (s *state) snapshot() state {
	return state{
		products:  s.products.snapshot(),
		suppliers: s.suppliers.snapshot(),
		movements: s.movements.snapshot(),
		alerts:    s.alerts.snapshot(),
	}
}

// Store backend en memoria: un único mutex serializa todas las operaciones.
type Store struct {
	mu      sync.Mutex
	st      state
	latency time.Duration
	newID   func() string
	now     func() time.Time
}

var (
	_ repository.Store    = (*Store)(nil)
	_ repository.TxRunner = (*Store)(nil)
)

// Option configura el Store.
type Option func(*Store)

// WithLatency simula la latencia de red en cada operación.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithFixtures carga los datos iniciales (conserva sus ids).
func WithFixtures(f *fixtures.Data) Option {
	return func(s *Store) {
		if f != nil {
			s.load(f)
		}
	}
}

// WithClock reemplaza el reloj usado para los sellos de tiempo.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New crea un Store vacío salvo que se pase WithFixtures.
func New(opts ...Option) *Store {
	s := &Store{
		st:  newState(),
		now: time.Now,
		newID: func() string {
			if id, err := uuid.NewV7(); err == nil {
				return id.String()
			}
			return uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) load(f *fixtures.Data) {
	for _, p := range f.Products {
		s.st.products.put(p.ID, p.Clone())
	}
	for _, sp := range f.Suppliers {
		s.st.suppliers.put(sp.ID, sp)
	}
	for _, m := range f.Movements {
		s.st.movements.put(m.ID, m)
	}
	for _, a := range f.Alerts {
		s.st.alerts.put(a.ID, a.Clone())
	}
}

func (s *Store) Products() repository.ProductRepository        { return &productRepo{v: view{s: s}} }
func (s *Store) Suppliers() repository.SupplierRepository      { return &supplierRepo{v: view{s: s}} }
func (s *Store) Movements() repository.StockMovementRepository { return &movementRepo{v: view{s: s}} }
func (s *Store) Alerts() repository.AlertRepository            { return &alertRepo{v: view{s: s}} }

// Run ejecuta fn con el lock tomado; si fn falla se restaura la instantánea previa.
func (s *Store) Run(ctx context.Context, fn func(tx repository.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.st.snapshot()
	if err := fn(txStore{v: view{s: s, inTx: true}}); err != nil {
		s.st = saved
		return err
	}
	return nil
}

// txStore repositorios atados a la transacción en curso (el lock ya está tomado).
type txStore struct{ v view }

func (t txStore) Products() repository.ProductRepository        { return &productRepo{v: t.v} }
func (t txStore) Suppliers() repository.SupplierRepository      { return &supplierRepo{v: t.v} }
func (t txStore) Movements() repository.StockMovementRepository { return &movementRepo{v: t.v} }
func (t txStore) Alerts() repository.AlertRepository            { return &alertRepo{v: t.v} }

// view punto de acceso al estado; dentro de una transacción no vuelve a tomar el lock.
type view struct {
	s    *Store
	inTx bool
}

func (v view) do(ctx context.Context, fn func(st *state) error) error {
	if err := v.s.wait(ctx); err != nil {
		return err
	}
	if !v.inTx {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	return fn(&v.s.st)
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NewSeeded Store con los datos embebidos.
func NewSeeded(opts ...Option) (*Store, error) {
	f, err := fixtures.Default()
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithFixtures(f)}, opts...)...), nil
}
