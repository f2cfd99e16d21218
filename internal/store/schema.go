package store

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the three source tables the pipeline reads.
// Safe to call multiple times - uses IF NOT EXISTS. Intended for seeding a
// local sqlite file during development; production runs point at an already
// loaded dataset.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Customers: one row per order-scoped account id
CREATE TABLE IF NOT EXISTS olist_customers (
    customer_id TEXT PRIMARY KEY,
    customer_unique_id TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_customers_unique_id ON olist_customers(customer_unique_id);

-- Orders
CREATE TABLE IF NOT EXISTS olist_orders (
    order_id TEXT PRIMARY KEY,
    customer_id TEXT NOT NULL REFERENCES olist_customers(customer_id),
    order_status TEXT NOT NULL,
    order_purchase_timestamp TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON olist_orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_status ON olist_orders(order_status);

-- Payments: one or more lines per order
CREATE TABLE IF NOT EXISTS olist_order_payments (
    order_id TEXT NOT NULL REFERENCES olist_orders(order_id),
    payment_sequential INTEGER NOT NULL DEFAULT 1,
    payment_value NUMERIC NOT NULL CHECK (payment_value >= 0),
    PRIMARY KEY (order_id, payment_sequential)
);

CREATE INDEX IF NOT EXISTS idx_payments_order_id ON olist_order_payments(order_id);
`
