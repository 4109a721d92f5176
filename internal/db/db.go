package db

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DB struct {
	*sqlx.DB
}

func Open(dsn string) (*DB, error) {
	xdb, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := xdb.Ping(); err != nil {
		return nil, err
	}
	return &DB{DB: xdb}, nil
}

func (d *DB) Close() error { return d.DB.Close() }

// EnsureSchema creates the four tables if they do not exist yet.
// Safe to run on every startup; never drops or alters existing data.
func EnsureSchema(d *DB) error {
	return d.ensureSchema(context.Background())
}

// EnsureDefaultAdmin creates or refreshes a seed admin account so the
// system is reachable on a fresh database.
func EnsureDefaultAdmin(d *DB, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	var count int
	if err := d.Get(&count, "SELECT COUNT(*) FROM admins WHERE email=?", email); err != nil {
		return err
	}
	if count == 0 {
		_, err := d.Exec("INSERT INTO admins (name, email, password) VALUES (?,?,?)", name, email, password)
		return err
	}
	_, err := d.Exec("UPDATE admins SET name=?, password=? WHERE email=?", name, password, email)
	return err
}

// Domain models (must match handlers)

type Admin struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

type Customer struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Mobile   string `db:"mobile"`
}

type Car struct {
	ID          int64   `db:"id"`
	Model       string  `db:"model"`
	Brand       string  `db:"brand"`
	PricePerDay float64 `db:"price_per_day"`
	Available   bool    `db:"available"`
}

// Booking status values. Admin and customer cancellation write distinct
// literals and downstream consumers treat them as independent states.
const (
	StatusBooked             = "Booked"
	StatusCancelled          = "Cancelled"
	StatusCompleted          = "Completed"
	StatusCanceledByCustomer = "Canceled by Customer"
)

type Booking struct {
	ID         int64  `db:"id"`
	CustomerID int64  `db:"customer_id"`
	CarID      int64  `db:"car_id"`
	StartDate  string `db:"start_date"`
	EndDate    string `db:"end_date"`
	Status     string `db:"status"`
}

// Convenience wrappers (used by handlers)

func (d *DB) Select(dest interface{}, query string, args ...any) error {
	return d.DB.Select(dest, query, args...)
}
func (d *DB) Get(dest interface{}, query string, args ...any) error { return d.DB.Get(dest, query, args...) }
func (d *DB) MustBegin() *sqlx.Tx                                   { return d.DB.MustBegin() }

// Dev-time schema (inline DDL)

func (d *DB) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS customers (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			mobile VARCHAR(32) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS cars (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			model VARCHAR(255) NOT NULL,
			brand VARCHAR(255) NOT NULL,
			price_per_day DECIMAL(10,2) NOT NULL,
			available TINYINT(1) NOT NULL DEFAULT 1
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		// Dates are stored as the client-supplied strings; the API echoes
		// them back verbatim and never orders or compares them.
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			car_id BIGINT NOT NULL,
			start_date VARCHAR(32) NOT NULL,
			end_date VARCHAR(32) NOT NULL,
			status VARCHAR(32) NOT NULL DEFAULT 'Booked',

			INDEX (customer_id),
			INDEX (car_id),
			FOREIGN KEY (customer_id) REFERENCES customers(id),
			FOREIGN KEY (car_id) REFERENCES cars(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, s := range stmts {
		if _, err := d.DB.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
