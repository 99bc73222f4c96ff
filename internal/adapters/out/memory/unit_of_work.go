package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/beliemun/uber-backend/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers writes in an overlay over the store and holds no store
// lock while open. Commit replays the buffered statements against the live
// tables under a short write lock, so a statement whose precondition no
// longer holds, such as a driver assigned in the meantime, fails the commit
// and nothing is applied.
//
// UnitOfWork must not be shared between goroutines.
type UnitOfWork struct {
	store *Store

	// mu guards the fields below against repositories handed out before Begin.
	mu      sync.Mutex
	working *tables
	journal []statement
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.working != nil {
		return nil
	}

	u.working = u.store.data.overlay()
	u.journal = nil
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.working == nil {
		return ErrNoActiveTransaction
	}

	journal := u.journal
	u.working, u.journal = nil, nil

	if err := ctx.Err(); err != nil {
		return err
	}
	return u.store.apply(journal)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.working, u.journal = nil, nil
	return nil
}

func (u *UnitOfWork) read(fn statement) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.working == nil {
		return u.store.read(fn)
	}

	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	return fn(u.working)
}

func (u *UnitOfWork) write(fn statement) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.working == nil {
		return u.store.write(fn)
	}

	u.store.mu.RLock()
	err := fn(u.working)
	u.store.mu.RUnlock()
	if err != nil {
		return err
	}
	u.journal = append(u.journal, fn)
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{tx: u}
}

func (u *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{tx: u}
}

func (u *UnitOfWork) DishRepository() ports.DishRepository {
	return &DishRepository{tx: u}
}
