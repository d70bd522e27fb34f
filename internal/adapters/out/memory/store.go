// Package memory is an in-process storage backend with the same transactional
// semantics as the postgres adapter: serialized transactions over a private working
// copy, versioned updates and the one-active-order-per-wand rule. It backs local runs
// without a database and the scenario tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/model/wizard"
)

type wandRecord struct {
	details    wand.Details
	status     wand.Status
	reservedBy *kernel.UUID
	version    int
}

type state struct {
	orders  map[kernel.UUID]order.Snapshot
	wands   map[kernel.UUID]wandRecord
	answers map[kernel.UUID]*answer.Answer
	wizards map[kernel.UUID]*wizard.Wizard
}

func newState() *state {
	return &state{
		orders:  make(map[kernel.UUID]order.Snapshot),
		wands:   make(map[kernel.UUID]wandRecord),
		answers: make(map[kernel.UUID]*answer.Answer),
		wizards: make(map[kernel.UUID]*wizard.Wizard),
	}
}

func (s *state) clone() *state {
	return &state{
		orders:  maps.Clone(s.orders),
		wands:   maps.Clone(s.wands),
		answers: maps.Clone(s.answers),
		wizards: maps.Clone(s.wizards),
	}
}

// Store holds the committed state. Writers take the single transaction slot, so
// transactions are serializable; readers outside a transaction see the last commit.
type Store struct {
	slot chan struct{}
	mu   sync.RWMutex
	data *state
}

func NewStore() *Store {
	return &Store{
		slot: make(chan struct{}, 1),
		data: newState(),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.slot
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.clone()
}

func (s *Store) publish(next *state) {
	s.mu.Lock()
	s.data = next
	s.mu.Unlock()
}

func (s *Store) read(fn func(*state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// autoCommit applies a single write outside an explicit transaction.
func (s *Store) autoCommit(ctx context.Context, fn func(*state) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}
