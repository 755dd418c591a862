package reservas

import (
	"strconv"
	"strings"

	"github.com/20Magus03/back-express/internal/store"
)

// Package reservas provides the reservations HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are implemented in dedicated files:
// - list.go:   Handler.List, Handler.Get
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete

const msgNotFound = "Reserva no encontrada"

// Handler wires reservation endpoints to the reservation store.
type Handler struct{ reservas store.ReservationStore }

// New returns a new reservations handler.
func New(s store.ReservationStore) *Handler { return &Handler{reservas: s} }

// request is the body accepted by Create and Update.
type request struct {
	Nombre   *string `json:"nombre" binding:"required,notblank"`
	Fecha    *string `json:"fecha" binding:"required,notblank"`
	Personas *int    `json:"personas" binding:"required,gt=0"`
}

func (r request) reservation() store.Reservation {
	return store.Reservation{Nombre: *r.Nombre, Fecha: *r.Fecha, Personas: *r.Personas}
}

// parseID reports ok=false for ids no reservation can have; callers answer 404.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return id, err == nil
}
