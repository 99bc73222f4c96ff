package memory

import (
	"sync"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
)

// table holds rows keyed by ID. An overlay table reads through to base and
// records its own writes and deletions separately, so base is never touched
// until merge.
type table[V any] struct {
	base map[kernel.UUID]V
	rows map[kernel.UUID]V
	gone map[kernel.UUID]struct{}
}

func newTable[V any]() *table[V] {
	return &table[V]{rows: make(map[kernel.UUID]V), gone: make(map[kernel.UUID]struct{})}
}

func (t *table[V]) overlay() *table[V] {
	o := newTable[V]()
	o.base = t.rows
	return o
}

func (t *table[V]) get(id kernel.UUID) (V, bool) {
	if _, deleted := t.gone[id]; deleted {
		var zero V
		return zero, false
	}
	if v, ok := t.rows[id]; ok {
		return v, true
	}
	v, ok := t.base[id]
	return v, ok
}

func (t *table[V]) put(id kernel.UUID, v V) {
	delete(t.gone, id)
	t.rows[id] = v
}

func (t *table[V]) remove(id kernel.UUID) {
	delete(t.rows, id)
	if t.base != nil {
		t.gone[id] = struct{}{}
	}
}

func (t *table[V]) each(fn func(v V)) {
	for _, v := range t.rows {
		fn(v)
	}
	for id, v := range t.base {
		if _, shadowed := t.rows[id]; shadowed {
			continue
		}
		if _, deleted := t.gone[id]; deleted {
			continue
		}
		fn(v)
	}
}

// merge applies the overlay's writes and deletions to dst.
func (t *table[V]) merge(dst *table[V]) {
	for id := range t.gone {
		delete(dst.rows, id)
	}
	for id, v := range t.rows {
		dst.rows[id] = v
	}
}

type tables struct {
	users       *table[*user.User]
	restaurants *table[*restaurant.Restaurant]
	dishes      *table[*restaurant.Dish]
	orders      *table[*order.Order]
}

func newTables() *tables {
	return &tables{
		users:       newTable[*user.User](),
		restaurants: newTable[*restaurant.Restaurant](),
		dishes:      newTable[*restaurant.Dish](),
		orders:      newTable[*order.Order](),
	}
}

func (t *tables) overlay() *tables {
	return &tables{
		users:       t.users.overlay(),
		restaurants: t.restaurants.overlay(),
		dishes:      t.dishes.overlay(),
		orders:      t.orders.overlay(),
	}
}

func (t *tables) merge(dst *tables) {
	t.users.merge(dst.users)
	t.restaurants.merge(dst.restaurants)
	t.dishes.merge(dst.dishes)
	t.orders.merge(dst.orders)
}

// statement reads and changes tables. Statements must only depend on what
// they read from t, because a unit of work runs each one twice: once against
// its own overlay and again against the live tables at commit.
type statement func(t *tables) error

type access interface {
	read(fn statement) error
	write(fn statement) error
}

// Store is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data *tables
}

func NewStore() *Store {
	return &Store{data: newTables()}
}

func (s *Store) read(fn statement) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

func (s *Store) write(fn statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// apply runs stmts against a staging overlay under the write lock and merges
// the result only if every statement succeeds.
func (s *Store) apply(stmts []statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staging := s.data.overlay()
	for _, stmt := range stmts {
		if err := stmt(staging); err != nil {
			return err
		}
	}
	staging.merge(s.data)
	return nil
}

func (s *Store) OrderRepository() *OrderRepository {
	return &OrderRepository{tx: s}
}

func (s *Store) RestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{tx: s}
}

func (s *Store) DishRepository() *DishRepository {
	return &DishRepository{tx: s}
}

func (s *Store) UserRepository() *UserRepository {
	return &UserRepository{tx: s}
}
