// Package store provides read-only access to the Olist source tables.
//
// The store is an external boundary, not part of the scoring core: it loads
// the three record sets as spec-level DTOs and hands them to the pipeline.
// Query failures surface to the caller unchanged; nothing here retries.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	specs "customer-rfm/specs"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const pingTimeout = 3 * time.Second

// Config selects the database driver and connection string.
type Config struct {
	// Driver is "sqlite" or "postgres".
	Driver string

	// DSN is the driver-specific connection string: a file path for sqlite,
	// a postgres URL otherwise.
	DSN string
}

type Store struct {
	db *sql.DB
}

// Open connects to the source database and verifies the connection with a
// bounded ping.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	var driverName string
	switch cfg.Driver {
	case "sqlite":
		driverName = "sqlite"
	case "postgres":
		driverName = "postgres"
	default:
		return nil, fmt.Errorf("unsupported driver %q (want sqlite or postgres)", cfg.Driver)
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStore wraps an existing database handle. Used by tests to inject a
// mocked driver.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for schema creation and seeding.
func (s *Store) DB() *sql.DB {
	return s.db
}

const customersQuery = `SELECT customer_id, customer_unique_id FROM olist_customers`

func (s *Store) LoadCustomers(ctx context.Context) ([]specs.CustomerRecordSpec, error) {
	rows, err := s.db.QueryContext(ctx, customersQuery)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []specs.CustomerRecordSpec
	for rows.Next() {
		var c specs.CustomerRecordSpec
		if err := rows.Scan(&c.CustomerID, &c.CustomerUniqueID); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

const ordersQuery = `SELECT order_id, customer_id, order_status, order_purchase_timestamp FROM olist_orders`

func (s *Store) LoadOrders(ctx context.Context) ([]specs.OrderRecordSpec, error) {
	rows, err := s.db.QueryContext(ctx, ordersQuery)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []specs.OrderRecordSpec
	for rows.Next() {
		var o specs.OrderRecordSpec
		if err := rows.Scan(&o.OrderID, &o.CustomerID, &o.Status, &o.PurchaseTimestamp); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// payment_value is cast to text so both drivers hand the amount over as an
// exact decimal string instead of a float.
const paymentsQuery = `SELECT order_id, CAST(payment_value AS TEXT) FROM olist_order_payments`

func (s *Store) LoadPayments(ctx context.Context) ([]specs.PaymentRecordSpec, error) {
	rows, err := s.db.QueryContext(ctx, paymentsQuery)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []specs.PaymentRecordSpec
	for rows.Next() {
		var p specs.PaymentRecordSpec
		if err := rows.Scan(&p.OrderID, &p.Value); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}
