package store

import (
	"context"

	"github.com/pkg/errors"
)

// Package store holds the domain records and the storage contracts the
// HTTP handlers depend on. Backends live in their own packages (db, supabase);
// the in-memory implementations live here.

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateNumber is returned when a room number is already taken.
	ErrDuplicateNumber = errors.New("room number already exists")
)

// Room is a physical hotel room. Column and JSON names follow the
// habitaciones table of the hosted data service.
type Room struct {
	ID        int64  `db:"habitacion_id" json:"habitacion_id"`
	NumHabi   int    `db:"num_habi" json:"num_habi"`
	Tipo      string `db:"tipo" json:"tipo"`
	Capacidad int    `db:"capacidad" json:"capacidad"`
	Precio    int    `db:"precio" json:"precio"`
	Estado    bool   `db:"estado" json:"estado"`
}

// RoomPatch carries the fields of a partial update; nil means "leave as is".
type RoomPatch struct {
	NumHabi   *int    `json:"num_habi,omitempty"`
	Tipo      *string `json:"tipo,omitempty"`
	Capacidad *int    `json:"capacidad,omitempty"`
	Precio    *int    `json:"precio,omitempty"`
	Estado    *bool   `json:"estado,omitempty"`
}

// Empty reports whether no field is set.
func (p RoomPatch) Empty() bool {
	return p.NumHabi == nil && p.Tipo == nil && p.Capacidad == nil && p.Precio == nil && p.Estado == nil
}

// Apply merges the set fields into r.
func (p RoomPatch) Apply(r *Room) {
	if p.NumHabi != nil {
		r.NumHabi = *p.NumHabi
	}
	if p.Tipo != nil {
		r.Tipo = *p.Tipo
	}
	if p.Capacidad != nil {
		r.Capacidad = *p.Capacidad
	}
	if p.Precio != nil {
		r.Precio = *p.Precio
	}
	if p.Estado != nil {
		r.Estado = *p.Estado
	}
}

// RoomStore is the durable backing store for rooms.
// Uniqueness of NumHabi is enforced by the store itself.
type RoomStore interface {
	List(ctx context.Context) ([]Room, error)
	Get(ctx context.Context, id int64) (*Room, error)
	Create(ctx context.Context, r Room) (*Room, error)
	Update(ctx context.Context, id int64, p RoomPatch) (*Room, error)
	Delete(ctx context.Context, id int64) error
}

// Reservation is a guest booking held for the process lifetime.
type Reservation struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Fecha    string `json:"fecha"`
	Personas int    `json:"personas"`
}

// ReservationStore keeps reservations in insertion order.
type ReservationStore interface {
	List(ctx context.Context) ([]Reservation, error)
	Get(ctx context.Context, id int64) (*Reservation, error)
	Create(ctx context.Context, r Reservation) (*Reservation, error)
	Update(ctx context.Context, id int64, r Reservation) (*Reservation, error)
	Delete(ctx context.Context, id int64) error
}
