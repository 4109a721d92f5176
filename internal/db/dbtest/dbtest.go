// Package dbtest provides an in-memory SQLite database with the same
// table shapes as the production MySQL schema, so handler tests can run
// without a database server.
package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/carhive/rental-api/internal/db"
)

var stmts = []string{
	`CREATE TABLE admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`,
	`CREATE TABLE customers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		mobile TEXT NOT NULL
	);`,
	`CREATE TABLE cars (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		model TEXT NOT NULL,
		brand TEXT NOT NULL,
		price_per_day REAL NOT NULL,
		available INTEGER NOT NULL DEFAULT 1
	);`,
	`CREATE TABLE bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL REFERENCES customers(id),
		car_id INTEGER NOT NULL REFERENCES cars(id),
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Booked'
	);`,
}

// New opens a fresh in-memory database and creates the schema.
// The pool is capped at one connection: each :memory: connection would
// otherwise get its own empty database.
func New(t *testing.T) *db.DB {
	t.Helper()

	// Foreign keys via DSN pragma so every connection enforces them.
	xdb, err := sqlx.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	xdb.SetMaxOpenConns(1)

	for _, s := range stmts {
		if _, err := xdb.Exec(s); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}

	d := &db.DB{DB: xdb}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
