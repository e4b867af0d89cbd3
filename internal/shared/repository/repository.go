// Package repository holds the identity-keyed storage contract shared by every
// aggregate and its in-memory implementation.
package repository

import (
	"cmp"
	"slices"
	"sync"
)

// Entity is a value that can be stored under a natural key.
// Clone must return a copy sharing no mutable state with the receiver.
type Entity[T any, ID cmp.Ordered] interface {
	Key() ID
	Clone() T
}

// Repository defines data access for one entity type.
type Repository[T Entity[T, ID], ID cmp.Ordered] interface {
	// Save appends the entity and re-sorts by key.
	Save(entity T) T

	// Update replaces the first entity with the same key.
	// Returns false when no entity matched; nothing is changed in that case.
	Update(entity T) (T, bool)

	// FindByID returns the first exact-key match.
	FindByID(id ID) (T, bool)

	// FindAll returns a fresh copy of every entity in ascending key order.
	FindAll() []T
}

// Memory is an in-memory Repository backed by an ordered slice.
// Entities are cloned on the way in and on the way out.
type Memory[T Entity[T, ID], ID cmp.Ordered] struct {
	mu   sync.RWMutex
	data []T
}

// NewMemory creates an empty in-memory repository.
func NewMemory[T Entity[T, ID], ID cmp.Ordered]() *Memory[T, ID] {
	return &Memory[T, ID]{}
}

func (m *Memory[T, ID]) Save(entity T) T {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = append(m.data, entity.Clone())
	m.sortData()
	return entity.Clone()
}

func (m *Memory[T, ID]) Update(entity T) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := entity.Key()
	for i := range m.data {
		if m.data[i].Key() == key {
			m.data[i] = entity.Clone()
			m.sortData()
			return entity.Clone(), true
		}
	}

	var zero T
	return zero, false
}

func (m *Memory[T, ID]) FindByID(id ID) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.data {
		if m.data[i].Key() == id {
			return m.data[i].Clone(), true
		}
	}

	var zero T
	return zero, false
}

func (m *Memory[T, ID]) FindAll() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, len(m.data))
	for i := range m.data {
		out[i] = m.data[i].Clone()
	}
	return out
}

// Len returns the number of stored entities.
func (m *Memory[T, ID]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// sortData keeps the slice in ascending key order. Stable so duplicate keys
// saved directly through the repository keep insertion order.
func (m *Memory[T, ID]) sortData() {
	slices.SortStableFunc(m.data, func(a, b T) int {
		return cmp.Compare(a.Key(), b.Key())
	})
}
