package customer

import "github.com/carhive/rental-api/internal/db"

// Package customer provides customer-facing HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - register.go: Handler.Register
// - login.go:    Handler.Login
// - rent.go:     Handler.Rent
// - bookings.go: Handler.Bookings
// - cancel.go:   Handler.CancelBooking

// Handler wires customer endpoints to the data store.
type Handler struct{ db *db.DB }

// New returns a new customer handler.
func New(d *db.DB) *Handler { return &Handler{db: d} }
