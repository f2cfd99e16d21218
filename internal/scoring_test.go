package internal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specs "customer-rfm/specs"
)

func metricsOf(t *testing.T, uniqueID string, lastPurchase time.Time, frequency int, monetary string) CustomerMetrics {
	t.Helper()
	m, err := NewCustomerMetrics(specs.CustomerMetricsSpec{
		CustomerUniqueID: uniqueID,
		LastPurchaseDate: lastPurchase,
		Frequency:        frequency,
		Monetary:         monetary,
	})
	require.NoError(t, err)
	return m
}

func TestScore(t *testing.T) {
	t.Run("all scores stay in range for any population", func(t *testing.T) {
		metrics := make([]CustomerMetrics, 0, 23)
		for i := 0; i < 23; i++ {
			metrics = append(metrics, metricsOf(t,
				fmt.Sprintf("buyer-%02d", i),
				day(i),
				1+i%7,
				fmt.Sprintf("%d.50", 10*i),
			))
		}

		scored, err := score(metrics)

		require.NoError(t, err)
		require.Len(t, scored, 23)
		for _, c := range scored {
			for _, s := range []int{c.RScore.ToInt(), c.FScore.ToInt(), c.MScore.ToInt()} {
				assert.GreaterOrEqual(t, s, 1)
				assert.LessOrEqual(t, s, 5)
			}
		}
	})

	t.Run("most recent buyer gets recency 5 and least recent gets 1", func(t *testing.T) {
		metrics := []CustomerMetrics{
			metricsOf(t, "buyer-old", day(0), 1, "10"),
			metricsOf(t, "buyer-mid-1", day(10), 1, "10"),
			metricsOf(t, "buyer-mid-2", day(20), 1, "10"),
			metricsOf(t, "buyer-mid-3", day(30), 1, "10"),
			metricsOf(t, "buyer-new", day(40), 1, "10"),
		}

		scored, err := score(metrics)

		require.NoError(t, err)
		byID := scoredByID(scored)
		assert.Equal(t, 1, byID["buyer-old"].RScore.ToInt())
		assert.Equal(t, 5, byID["buyer-new"].RScore.ToInt())
	})

	t.Run("highest spender gets monetary 5", func(t *testing.T) {
		metrics := []CustomerMetrics{
			metricsOf(t, "buyer-a", day(0), 1, "5.00"),
			metricsOf(t, "buyer-b", day(0), 1, "50.00"),
			metricsOf(t, "buyer-c", day(0), 1, "500.00"),
			metricsOf(t, "buyer-d", day(0), 1, "5000.00"),
			metricsOf(t, "buyer-e", day(0), 1, "50000.00"),
		}

		scored, err := score(metrics)

		require.NoError(t, err)
		byID := scoredByID(scored)
		assert.Equal(t, 1, byID["buyer-a"].MScore.ToInt())
		assert.Equal(t, 5, byID["buyer-e"].MScore.ToInt())
	})

	t.Run("zero monetary lands in bucket 1 instead of being excluded", func(t *testing.T) {
		metrics := []CustomerMetrics{
			metricsOf(t, "buyer-free", day(0), 1, "0"),
			metricsOf(t, "buyer-a", day(0), 1, "10"),
			metricsOf(t, "buyer-b", day(0), 1, "20"),
			metricsOf(t, "buyer-c", day(0), 1, "30"),
			metricsOf(t, "buyer-d", day(0), 1, "40"),
		}

		scored, err := score(metrics)

		require.NoError(t, err)
		byID := scoredByID(scored)
		assert.Equal(t, 1, byID["buyer-free"].MScore.ToInt())
	})

	t.Run("matches the worked frequency example", func(t *testing.T) {
		frequencies := []int{1, 1, 1, 1, 1, 2, 3, 5}
		wantScores := []int{1, 1, 1, 1, 1, 2, 3, 5}

		metrics := make([]CustomerMetrics, len(frequencies))
		for i, f := range frequencies {
			metrics[i] = metricsOf(t, fmt.Sprintf("buyer-%d", i), day(i), f, "10")
		}

		scored, err := score(metrics)

		require.NoError(t, err)
		for i, c := range scored {
			assert.Equal(t, wantScores[i], c.FScore.ToInt(), "frequency %d", frequencies[i])
		}
	})

	t.Run("segment code concatenates the three scores", func(t *testing.T) {
		metrics := []CustomerMetrics{metricsOf(t, "buyer-a", day(0), 4, "10")}

		scored, err := score(metrics)

		require.NoError(t, err)
		require.Len(t, scored, 1)
		c := scored[0]

		want := fmt.Sprintf("%d%d%d", c.RScore.ToInt(), c.FScore.ToInt(), c.MScore.ToInt())
		assert.Equal(t, want, c.Segment.ToString())

		r, f, m, err := specs.ParseSegment(c.Segment.ToString())
		require.NoError(t, err)
		assert.Equal(t, c.RScore.ToInt(), r)
		assert.Equal(t, c.FScore.ToInt(), f)
		assert.Equal(t, c.MScore.ToInt(), m)
	})

	t.Run("tied sort keys resolve by customer unique id", func(t *testing.T) {
		// All five buyers identical except id; reruns must give stable buckets.
		metrics := []CustomerMetrics{
			metricsOf(t, "buyer-e", day(0), 1, "10"),
			metricsOf(t, "buyer-d", day(0), 1, "10"),
			metricsOf(t, "buyer-c", day(0), 1, "10"),
			metricsOf(t, "buyer-b", day(0), 1, "10"),
			metricsOf(t, "buyer-a", day(0), 1, "10"),
		}

		first, err := score(metrics)
		require.NoError(t, err)
		second, err := score(metrics)
		require.NoError(t, err)

		firstByID := scoredByID(first)
		secondByID := scoredByID(second)
		for id, c := range firstByID {
			assert.Equal(t, c.MScore.ToInt(), secondByID[id].MScore.ToInt())
		}
		assert.Equal(t, 1, firstByID["buyer-a"].MScore.ToInt())
		assert.Equal(t, 5, firstByID["buyer-e"].MScore.ToInt())
	})
}

func scoredByID(scored []ScoredCustomer) map[string]ScoredCustomer {
	byID := make(map[string]ScoredCustomer, len(scored))
	for _, c := range scored {
		byID[c.Metrics.UniqueID.ToString()] = c
	}
	return byID
}

func TestNtileBucket(t *testing.T) {
	t.Run("buckets are balanced within one row", func(t *testing.T) {
		for _, total := range []int{1, 2, 4, 5, 7, 10, 23, 100, 101} {
			sizes := make(map[int]int)
			for rank := 0; rank < total; rank++ {
				bucket := ntileBucket(rank, total)
				require.GreaterOrEqual(t, bucket, 1)
				require.LessOrEqual(t, bucket, 5)
				sizes[bucket]++
			}

			min, max := total, 0
			for bucket := 1; bucket <= 5; bucket++ {
				size := sizes[bucket]
				if size == 0 {
					continue // small populations cannot fill every bucket
				}
				if size < min {
					min = size
				}
				if size > max {
					max = size
				}
			}
			assert.LessOrEqual(t, max-min, 1, "population %d", total)
		}
	})

	t.Run("bucket index never decreases with rank", func(t *testing.T) {
		total := 23
		prev := 1
		for rank := 0; rank < total; rank++ {
			bucket := ntileBucket(rank, total)
			assert.GreaterOrEqual(t, bucket, prev)
			prev = bucket
		}
	})

	t.Run("earlier buckets take the remainder", func(t *testing.T) {
		// 7 rows: buckets 1 and 2 get two rows, the rest get one.
		sizes := make(map[int]int)
		for rank := 0; rank < 7; rank++ {
			sizes[ntileBucket(rank, 7)]++
		}
		assert.Equal(t, map[int]int{1: 2, 2: 2, 3: 1, 4: 1, 5: 1}, sizes)
	})
}

func TestFrequencyScore(t *testing.T) {
	t.Run("applies the fixed threshold ladder", func(t *testing.T) {
		cases := map[int]int{
			1:   1,
			2:   2,
			3:   3,
			4:   4,
			5:   5,
			6:   5,
			17:  5,
			100: 5,
		}
		for frequency, want := range cases {
			f, err := NewFrequency(frequency)
			require.NoError(t, err)
			assert.Equal(t, want, frequencyScore(f), "frequency %d", frequency)
		}
	})

	t.Run("is independent of the rest of the population", func(t *testing.T) {
		f, err := NewFrequency(3)
		require.NoError(t, err)

		alone := frequencyScore(f)

		// Same frequency embedded in a large population scores identically.
		metrics := make([]CustomerMetrics, 0, 51)
		metrics = append(metrics, metricsOf(t, "buyer-target", day(0), 3, "10"))
		for i := 0; i < 50; i++ {
			metrics = append(metrics, metricsOf(t, fmt.Sprintf("buyer-%02d", i), day(i), 1, "10"))
		}
		scored, err := score(metrics)
		require.NoError(t, err)

		assert.Equal(t, alone, scoredByID(scored)["buyer-target"].FScore.ToInt())
	})

	t.Run("is monotone in frequency", func(t *testing.T) {
		prev := 0
		for frequency := 1; frequency <= 10; frequency++ {
			f, err := NewFrequency(frequency)
			require.NoError(t, err)
			got := frequencyScore(f)
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	})
}
