package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryRooms is a RoomStore used for local runs (ROOMS_BACKEND=memory) and tests.
type MemoryRooms struct {
	mu     sync.RWMutex
	rooms  map[int64]Room
	lastID int64
}

func NewMemoryRooms() *MemoryRooms {
	return &MemoryRooms{rooms: map[int64]Room{}}
}

func (s *MemoryRooms) List(_ context.Context) ([]Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryRooms) Get(_ context.Context, id int64) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (s *MemoryRooms) Create(_ context.Context, r Room) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.numberTaken(r.NumHabi, 0) {
		return nil, ErrDuplicateNumber
	}
	s.lastID++
	r.ID = s.lastID
	s.rooms[r.ID] = r
	return &r, nil
}

func (s *MemoryRooms) Update(_ context.Context, id int64, p RoomPatch) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.NumHabi != nil && s.numberTaken(*p.NumHabi, id) {
		return nil, ErrDuplicateNumber
	}
	p.Apply(&r)
	s.rooms[id] = r
	return &r, nil
}

func (s *MemoryRooms) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(s.rooms, id)
	return nil
}

// numberTaken reports whether another room (id != except) already uses num.
func (s *MemoryRooms) numberTaken(num int, except int64) bool {
	for id, r := range s.rooms {
		if id != except && r.NumHabi == num {
			return true
		}
	}
	return false
}
