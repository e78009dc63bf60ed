// Package memory provides in-memory repository implementations. They back
// tests and local development without a database and are safe for concurrent
// use.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/shared"
)

// store is a mutex-guarded map keyed by entity ID. Insertion order is kept
// so list operations return entities in creation order, matching the SQL
// repositories. Entities are cloned on every read and write so callers never
// share memory with the store.
type store[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*T
	order []uuid.UUID
	id    func(*T) uuid.UUID
	clone func(*T) *T
}

func newStore[T any](id func(*T) uuid.UUID, clone func(*T) *T) *store[T] {
	return &store[T]{
		items: make(map[uuid.UUID]*T),
		id:    id,
		clone: clone,
	}
}

func (s *store[T]) create(entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(entity)
	if _, ok := s.items[id]; ok {
		return shared.ErrAlreadyExists
	}
	s.items[id] = s.clone(entity)
	s.order = append(s.order, id)
	return nil
}

func (s *store[T]) update(entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(entity)
	if _, ok := s.items[id]; !ok {
		return shared.ErrNotFound
	}
	s.items[id] = s.clone(entity)
	return nil
}

func (s *store[T]) delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *store[T]) findByID(id uuid.UUID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return s.clone(entity), nil
}

func (s *store[T]) findAll() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.clone(s.items[id]))
	}
	return result
}

// findWhere returns clones of all entities matching the predicate, in
// insertion order.
func (s *store[T]) findWhere(match func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*T
	for _, id := range s.order {
		if match(s.items[id]) {
			result = append(result, s.clone(s.items[id]))
		}
	}
	return result
}

// findFirst returns a clone of the first entity matching the predicate, or
// shared.ErrNotFound.
func (s *store[T]) findFirst(match func(*T) bool) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if match(s.items[id]) {
			return s.clone(s.items[id]), nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *store[T]) deleteWhere(match func(*T) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	for _, id := range s.order {
		if match(s.items[id]) {
			delete(s.items, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}

// mutateAll applies fn to every stored entity under the write lock. Stored
// entities are private clones, so mutating them here is safe.
func (s *store[T]) mutateAll(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		fn(s.items[id])
	}
}

func (s *store[T]) count() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items))
}
