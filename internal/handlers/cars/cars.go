package cars

import "github.com/carhive/rental-api/internal/db"

// Package cars provides the shared car listing HTTP handlers.
//
// - list.go:          Handler.List
// - with_bookings.go: Handler.ListWithBookings

// Handler wires car endpoints to the data store.
type Handler struct{ db *db.DB }

// New returns a new cars handler.
func New(d *db.DB) *Handler { return &Handler{db: d} }
