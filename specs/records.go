package specs

import "time"

// CustomerRecordSpec represents one customer account row from the source store.
//
// The Olist dataset assigns a fresh customer_id per order, so the same
// real-world buyer can appear under many account ids. customer_unique_id is
// the stable identity that ties those accounts together; all aggregation and
// scoring happens at that level.
type CustomerRecordSpec struct {
	// Per-order account identifier.
	//
	// Joins to OrderRecordSpec.CustomerID. Unique per row in the source
	// customers table but not unique per real-world buyer.
	CustomerID string `json:"customer_id"`

	// Stable identifier for the real-world buyer.
	//
	// Several CustomerID values can map to the same CustomerUniqueID. This is
	// the grouping key for customer metrics: one metrics row is produced per
	// distinct CustomerUniqueID.
	CustomerUniqueID string `json:"customer_unique_id"`
}

// OrderRecordSpec represents one order row from the source store.
//
// Only orders with Status == "delivered" participate in scoring; every other
// status (shipped, canceled, unavailable, ...) is filtered out before
// aggregation. The filter is part of the pipeline, not the loader, so the
// record carries the raw status through.
type OrderRecordSpec struct {
	// Unique identifier for this order.
	OrderID string `json:"order_id"`

	// Account identifier of the buyer.
	//
	// Joins to CustomerRecordSpec.CustomerID. An order whose customer id has
	// no matching customer row is silently dropped by inner-join semantics.
	CustomerID string `json:"customer_id"`

	// Raw order status from the source store.
	//
	// The delivered filter compares against the literal "delivered".
	Status string `json:"order_status"`

	// Timestamp of the purchase.
	//
	// The maximum purchase timestamp among a buyer's delivered orders becomes
	// that buyer's last purchase date, which drives the recency score.
	PurchaseTimestamp time.Time `json:"order_purchase_timestamp"`
}

// PaymentRecordSpec represents one payment line from the source store.
//
// An order can have multiple payment lines (installments, split payment
// methods). Every matched line contributes to the buyer's monetary total:
// the metric is total amount paid, not amount owed, so an order with N lines
// contributes all N values.
type PaymentRecordSpec struct {
	// Order this payment line belongs to.
	//
	// Joins to OrderRecordSpec.OrderID. A payment line whose order id has no
	// matching delivered order is silently dropped, never reported as an
	// error.
	OrderID string `json:"order_id"`

	// Payment amount as a decimal string.
	//
	// Stored as string to preserve precision across language boundaries and
	// avoid floating-point drift in monetary sums. Must parse as a
	// non-negative decimal. Examples: "18.12", "141.46", "0".
	Value string `json:"payment_value"`
}
