package store

import (
	"context"
	"sync"
)

// MemoryReservations is an ordered, process-lifetime reservation store.
// Identifiers come from a counter that never goes back, so a create after a
// delete cannot reuse an id.
type MemoryReservations struct {
	mu     sync.RWMutex
	items  []Reservation
	lastID int64
}

func NewMemoryReservations() *MemoryReservations {
	return &MemoryReservations{}
}

func (s *MemoryReservations) List(_ context.Context) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Reservation, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryReservations) Get(_ context.Context, id int64) (*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	r := s.items[i]
	return &r, nil
}

func (s *MemoryReservations) Create(_ context.Context, r Reservation) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	r.ID = s.lastID
	s.items = append(s.items, r)
	return &r, nil
}

// Update replaces every field of the reservation except its id.
func (s *MemoryReservations) Update(_ context.Context, id int64, r Reservation) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	r.ID = id
	s.items[i] = r
	return &r, nil
}

func (s *MemoryReservations) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// indexOf expects the caller to hold the lock.
func (s *MemoryReservations) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
