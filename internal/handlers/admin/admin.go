package admin

import "github.com/carhive/rental-api/internal/db"

// Package admin provides administrator HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - login.go:    Handler.Login
// - create.go:   Handler.Create
// - add_car.go:  Handler.AddCar
// - bookings.go: Handler.Bookings
// - cancel.go:   Handler.CancelBooking
// - complete.go: Handler.CompleteBooking

// Handler wires admin endpoints to the data store.
type Handler struct{ db *db.DB }

// New returns a new admin handler.
func New(d *db.DB) *Handler { return &Handler{db: d} }
