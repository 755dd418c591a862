package habitaciones

import (
	"github.com/20Magus03/back-express/internal/store"
	"go.uber.org/zap"
)

// Package habitaciones provides the rooms HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - get.go:    Handler.Get
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete

const (
	msgInvalidID = "ID inválido. Debe ser un número entero positivo."
	msgNotFound  = "Habitación no encontrada"
)

// Handler wires room endpoints to the room store.
type Handler struct {
	rooms store.RoomStore
	log   *zap.Logger
}

// New returns a new rooms handler.
func New(rooms store.RoomStore, log *zap.Logger) *Handler {
	return &Handler{rooms: rooms, log: log}
}
