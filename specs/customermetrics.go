package specs

import "time"

// CustomerMetricsSpec represents the aggregated purchase profile of one
// real-world buyer.
//
// Produced by inner-joining customers, delivered orders, and payments, then
// grouping by customer_unique_id. A buyer with zero delivered-and-paid orders
// never appears: absence is a consequence of join semantics, not an error.
//
// Metrics are ephemeral. They are recomputed from the source records on every
// run and carry no identity between runs.
type CustomerMetricsSpec struct {
	// Stable identifier for the real-world buyer.
	CustomerUniqueID string `json:"customer_unique_id"`

	// Most recent purchase timestamp among the buyer's delivered orders.
	//
	// Drives the recency axis: buyers are ranked by this value and the most
	// recent fifth of the population lands in recency bucket 5.
	LastPurchaseDate time.Time `json:"last_purchase_date"`

	// Count of distinct delivered orders.
	//
	// Always >= 1: the grouping guarantees at least one contributing order.
	// Drives the frequency score through fixed thresholds rather than
	// population rank, because most buyers purchase exactly once and
	// percentile bucketing would promote one-time buyers just to fill quota.
	Frequency int `json:"frequency"`

	// Sum of all matched payment values as a decimal string.
	//
	// Total amount paid across every payment line of the buyer's delivered
	// orders. Always >= 0; a buyer whose orders carried only zero-value
	// payment lines still appears with monetary "0".
	Monetary string `json:"monetary"`
}
