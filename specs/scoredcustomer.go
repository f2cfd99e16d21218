package specs

import "time"

// ScoredCustomerSpec represents one buyer with RFM scores assigned.
//
// Extends the aggregated metrics with three independent 1-5 sub-scores and
// the concatenated segment code. Recency and monetary scores are
// population-relative (quintile rank against the current run's population, so
// they can change when the population changes); the frequency score is a pure
// function of the frequency value and is stable across runs and datasets.
type ScoredCustomerSpec struct {
	// Stable identifier for the real-world buyer.
	CustomerUniqueID string `json:"customer_unique_id"`

	// Most recent purchase timestamp among the buyer's delivered orders.
	LastPurchaseDate time.Time `json:"last_purchase_date"`

	// Count of distinct delivered orders.
	Frequency int `json:"frequency"`

	// Total amount paid as a decimal string.
	Monetary string `json:"monetary"`

	// Recency score in [1,5].
	//
	// Quintile rank by last purchase date: 5 means the buyer is in the most
	// recent fifth of the population, 1 the least recent. Buckets are always
	// filled to equal size (±1) regardless of the shape of the distribution.
	RScore int `json:"r_score"`

	// Frequency score in [1,5].
	//
	// Fixed thresholds: frequency >= 5 scores 5, then 4, 3, 2 map to
	// themselves, and everything else (a single order) scores 1.
	FScore int `json:"f_score"`

	// Monetary score in [1,5].
	//
	// Quintile rank by monetary total: 5 means the buyer is in the
	// highest-spending fifth of the population.
	MScore int `json:"m_score"`

	// Three-digit segment code: RScore, FScore, MScore concatenated in that
	// order with no separators, e.g. scores 5,4,5 produce "545". Parsing the
	// code back into digits reproduces the three scores exactly.
	Segment string `json:"rfm_segment"`
}
