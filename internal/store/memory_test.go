package store

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReservations_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryReservations()

	a, err := s.Create(ctx, Reservation{Nombre: "Ana", Fecha: "2024-01-01", Personas: 2})
	require.NoError(t, err)
	b, err := s.Create(ctx, Reservation{Nombre: "Luis", Fecha: "2024-01-02", Personas: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	require.NoError(t, s.Delete(ctx, a.ID))
	c, err := s.Create(ctx, Reservation{Nombre: "Eva", Fecha: "2024-01-03", Personas: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Luis", all[0].Nombre)
	assert.Equal(t, "Eva", all[1].Nombre)
}

func TestMemoryReservations_UpdateReplacesFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryReservations()
	r, _ := s.Create(ctx, Reservation{Nombre: "Ana", Fecha: "2024-01-01", Personas: 2})

	got, err := s.Update(ctx, r.ID, Reservation{ID: 99, Nombre: "Ana M.", Fecha: "2024-01-02", Personas: 3})
	require.NoError(t, err)
	assert.Equal(t, Reservation{ID: r.ID, Nombre: "Ana M.", Fecha: "2024-01-02", Personas: 3}, *got)

	_, err = s.Update(ctx, 42, Reservation{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryReservations_DeleteMissing(t *testing.T) {
	s := NewMemoryReservations()
	assert.True(t, errors.Is(s.Delete(context.Background(), 1), ErrNotFound))
}

func TestMemoryRooms_UniqueNumber(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryRooms()

	r, err := s.Create(ctx, Room{NumHabi: 101, Tipo: "doble", Capacidad: 2, Precio: 80, Estado: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.ID)

	_, err = s.Create(ctx, Room{NumHabi: 101, Tipo: "suite", Capacidad: 4, Precio: 200})
	assert.True(t, errors.Is(err, ErrDuplicateNumber))

	all, _ := s.List(ctx)
	assert.Len(t, all, 1)
}

func TestMemoryRooms_UpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryRooms()
	r, _ := s.Create(ctx, Room{NumHabi: 101, Tipo: "doble", Capacidad: 2, Precio: 80, Estado: true})
	other, _ := s.Create(ctx, Room{NumHabi: 102, Tipo: "simple", Capacidad: 1, Precio: 50})

	precio := 95
	got, err := s.Update(ctx, r.ID, RoomPatch{Precio: &precio})
	require.NoError(t, err)
	assert.Equal(t, Room{ID: r.ID, NumHabi: 101, Tipo: "doble", Capacidad: 2, Precio: 95, Estado: true}, *got)

	// keeping its own number is not a conflict
	same := 101
	_, err = s.Update(ctx, r.ID, RoomPatch{NumHabi: &same})
	require.NoError(t, err)

	taken := 101
	_, err = s.Update(ctx, other.ID, RoomPatch{NumHabi: &taken})
	assert.True(t, errors.Is(err, ErrDuplicateNumber))

	_, err = s.Update(ctx, 77, RoomPatch{Precio: &precio})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryRooms_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryRooms()
	r, _ := s.Create(ctx, Room{NumHabi: 7, Tipo: "simple", Capacidad: 1, Precio: 40})

	require.NoError(t, s.Delete(ctx, r.ID))
	assert.True(t, errors.Is(s.Delete(ctx, r.ID), ErrNotFound))
	_, err := s.Get(ctx, r.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRoomPatch_Empty(t *testing.T) {
	assert.True(t, RoomPatch{}.Empty())
	estado := false
	assert.False(t, RoomPatch{Estado: &estado}.Empty())
}
