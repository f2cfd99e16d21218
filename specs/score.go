package specs

// Score transforms raw source records into scored customers.
//
// Process:
//  1. Inner-join customers ⋈ orders ⋈ payments, keeping delivered orders only
//  2. Group by customer_unique_id into per-buyer metrics
//     (last purchase date, distinct order count, monetary total)
//  3. Assign recency and monetary scores by quintile rank against the run's
//     population (sort ascending, partition into 5 buckets of equal ±1 size)
//  4. Assign the frequency score by fixed thresholds
//  5. Concatenate the three digits into the segment code
//
// Rows with broken foreign keys drop out silently; that is join semantics,
// not an error. Returns an empty slice when no buyer survives the joins.
//
// Under tied sort keys the quintile assignment is resolved by a stable sort
// with customer_unique_id ascending as the secondary key, making reruns over
// the same data reproducible.
//
// This is the spec-level interface using only primitive types.
// See internal.ScoreCustomers for the reference implementation.
type Score func(
	customers []CustomerRecordSpec,
	orders []OrderRecordSpec,
	payments []PaymentRecordSpec,
) ([]ScoredCustomerSpec, error)

// Champions selects the highest-value segment from a scored population.
//
// Predicate: r_score == 5 && f_score >= 4 && m_score == 5. Output is ordered
// by monetary total descending (customer_unique_id ascending under ties).
// Pure filter and sort; no mutation of the input.
//
// This is the spec-level interface using only primitive types.
// See internal.Champions for the reference implementation.
type Champions func(scored []ScoredCustomerSpec) ([]ChampionSpec, error)

// FrequencyDistribution reports, per frequency bucket, the buyer count and
// percentage share of the scored population, ordered by bucket descending.
//
// An empty population yields an empty report rather than a division by zero.
// Empty buckets are omitted.
//
// This is the spec-level interface using only primitive types.
// See internal.FrequencyDistribution for the reference implementation.
type FrequencyDistribution func(scored []ScoredCustomerSpec) ([]DistributionRowSpec, error)
