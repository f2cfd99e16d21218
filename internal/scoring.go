package internal

import (
	specs "customer-rfm/specs"
	"fmt"
	"sort"
)

const scoreBuckets = 5

// ScoreCustomers implements specs.Score.
// Aggregates raw rows into per-buyer metrics and assigns the three sub-scores.
func ScoreCustomers(
	customersSpec []specs.CustomerRecordSpec,
	ordersSpec []specs.OrderRecordSpec,
	paymentsSpec []specs.PaymentRecordSpec,
) ([]specs.ScoredCustomerSpec, error) {
	metricsSpecs, err := Aggregate(customersSpec, ordersSpec, paymentsSpec)
	if err != nil {
		return nil, err
	}

	metrics := make([]CustomerMetrics, len(metricsSpecs))
	for i, spec := range metricsSpecs {
		m, err := NewCustomerMetrics(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid metrics at index %d: %w", i, err)
		}
		metrics[i] = m
	}

	scored, err := score(metrics)
	if err != nil {
		return nil, err
	}

	scoredSpecs := make([]specs.ScoredCustomerSpec, len(scored))
	for i, c := range scored {
		scoredSpecs[i] = c.ToSpec()
	}
	return scoredSpecs, nil
}

// score is the private domain-level scorer. Recency and monetary scores come
// from quintile rank against this population; the frequency score comes from
// fixed thresholds.
func score(metrics []CustomerMetrics) ([]ScoredCustomer, error) {
	rBuckets := quintiles(metrics, func(a, b CustomerMetrics) bool {
		return a.LastPurchase.ToTime().Before(b.LastPurchase.ToTime())
	})
	mBuckets := quintiles(metrics, func(a, b CustomerMetrics) bool {
		return a.Monetary.ToDecimal().Cmp(b.Monetary.ToDecimal()) < 0
	})

	scored := make([]ScoredCustomer, len(metrics))
	for i, m := range metrics {
		rScore, err := NewRFMScore(rBuckets[i])
		if err != nil {
			return nil, fmt.Errorf("customer %s: invalid r score: %w", m.UniqueID.ToString(), err)
		}

		fScore, err := NewRFMScore(frequencyScore(m.Frequency))
		if err != nil {
			return nil, fmt.Errorf("customer %s: invalid f score: %w", m.UniqueID.ToString(), err)
		}

		mScore, err := NewRFMScore(mBuckets[i])
		if err != nil {
			return nil, fmt.Errorf("customer %s: invalid m score: %w", m.UniqueID.ToString(), err)
		}

		scored[i] = ScoredCustomer{
			Metrics: m,
			RScore:  rScore,
			FScore:  fScore,
			MScore:  mScore,
			Segment: NewSegmentCode(rScore, fScore, mScore),
		}
	}
	return scored, nil
}

// quintiles ranks the population ascending by the given ordering and assigns
// each row a bucket in [1,5], balanced NTILE-style: bucket sizes differ by at
// most one, with earlier buckets taking the remainder. The lowest-sorted rows
// land in bucket 1 and the highest in bucket 5.
//
// Ties on the sort key are broken by customer unique id ascending. The
// underlying ranking is arbitrary under ties either way; fixing the secondary
// key keeps reruns over the same data reproducible.
//
// Returns one bucket per input index, aligned with the metrics slice.
func quintiles(metrics []CustomerMetrics, less func(a, b CustomerMetrics) bool) []int {
	order := make([]int, len(metrics))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(x, y int) bool {
		a, b := metrics[order[x]], metrics[order[y]]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.UniqueID.ToString() < b.UniqueID.ToString()
	})

	buckets := make([]int, len(metrics))
	for rank, idx := range order {
		buckets[idx] = ntileBucket(rank, len(metrics))
	}
	return buckets
}

// ntileBucket maps a zero-based rank to its bucket index for a population of
// the given size. With n rows the first n%5 buckets hold n/5+1 rows and the
// rest hold n/5, matching SQL NTILE(5) distribution.
func ntileBucket(rank, total int) int {
	base := total / scoreBuckets
	remainder := total % scoreBuckets

	boundary := 0
	for bucket := 1; bucket <= scoreBuckets; bucket++ {
		size := base
		if bucket <= remainder {
			size++
		}
		boundary += size
		if rank < boundary {
			return bucket
		}
	}
	return scoreBuckets
}

// frequencyScore maps an order count to its loyalty score by fixed business
// thresholds. Frequency in this domain is heavily right-skewed (most buyers
// purchase exactly once), so rank-based bucketing would promote one-time
// buyers into high scores purely to fill quota.
func frequencyScore(frequency Frequency) int {
	switch f := frequency.ToInt(); {
	case f >= 5:
		return 5
	case f == 4:
		return 4
	case f == 3:
		return 3
	case f == 2:
		return 2
	default:
		return 1
	}
}
