package specs

// ChampionSpec represents one row of the champion report.
//
// Champions are the highest-value segment selected for action (marketing
// outreach, loyalty programs): buyers with a top recency score, near-top or
// top frequency score, and a top monetary score. Rows are ordered by monetary
// total descending so the biggest spenders come first.
type ChampionSpec struct {
	// Stable identifier for the real-world buyer.
	CustomerUniqueID string `json:"customer_unique_id"`

	// Recency score; always 5 for champions.
	RScore int `json:"r_score"`

	// Frequency score; 4 or 5 for champions.
	FScore int `json:"f_score"`

	// Monetary score; always 5 for champions.
	MScore int `json:"m_score"`

	// Concatenated three-digit segment code.
	Segment string `json:"rfm_segment"`
}

// DistributionRowSpec represents one row of the frequency-distribution report.
//
// The report sanity-checks the threshold-based frequency scorer by showing
// how the scored population spreads across frequency buckets. A healthy
// long-tail dataset shows bucket 1 dominant with shares falling toward
// bucket 5; that expectation is a diagnostic, not an enforced invariant.
//
// Only buckets with at least one buyer appear. Rows are ordered by score
// descending.
type DistributionRowSpec struct {
	// Frequency bucket in [1,5].
	FScore int `json:"f_score"`

	// Number of scored buyers in this bucket.
	CustomerCount int `json:"customer_count"`

	// Share of the total scored population, rendered as a percentage with
	// two decimal places and a trailing percent marker, e.g. "62.50%".
	// Because each bucket rounds independently, the rendered shares can sum
	// to slightly more or less than 100.00.
	Percentage string `json:"percentage"`
}
