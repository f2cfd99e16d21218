package internal

import (
	specs "customer-rfm/specs"
	"fmt"
	"sort"
)

// ScoredSet is a scored population computed once and held in memory for the
// duration of a run, so the report views share one result instead of
// re-scoring. Caching is purely a convenience: recomputing from source yields
// identical results.
type ScoredSet struct {
	customers []ScoredCustomer
}

func NewScoredSet(scoredSpecs []specs.ScoredCustomerSpec) (ScoredSet, error) {
	customers := make([]ScoredCustomer, len(scoredSpecs))
	for i, spec := range scoredSpecs {
		c, err := NewScoredCustomer(spec)
		if err != nil {
			return ScoredSet{}, fmt.Errorf("invalid scored customer at index %d: %w", i, err)
		}
		customers[i] = c
	}
	return ScoredSet{customers: customers}, nil
}

func (s ScoredSet) Size() int {
	return len(s.customers)
}

func (s ScoredSet) ToSpecs() []specs.ScoredCustomerSpec {
	scoredSpecs := make([]specs.ScoredCustomerSpec, len(s.customers))
	for i, c := range s.customers {
		scoredSpecs[i] = c.ToSpec()
	}
	return scoredSpecs
}

// Champions selects buyers with r == 5, f >= 4, m == 5, ordered by monetary
// total descending (customer unique id ascending under ties).
func (s ScoredSet) Champions() []specs.ChampionSpec {
	champions := make([]ScoredCustomer, 0)
	for _, c := range s.customers {
		if c.RScore.ToInt() == 5 && c.FScore.ToInt() >= 4 && c.MScore.ToInt() == 5 {
			champions = append(champions, c)
		}
	}

	sort.SliceStable(champions, func(i, j int) bool {
		cmp := champions[i].Metrics.Monetary.ToDecimal().Cmp(champions[j].Metrics.Monetary.ToDecimal())
		if cmp != 0 {
			return cmp > 0
		}
		return champions[i].Metrics.UniqueID.ToString() < champions[j].Metrics.UniqueID.ToString()
	})

	rows := make([]specs.ChampionSpec, len(champions))
	for i, c := range champions {
		rows[i] = specs.ChampionSpec{
			CustomerUniqueID: c.Metrics.UniqueID.ToString(),
			RScore:           c.RScore.ToInt(),
			FScore:           c.FScore.ToInt(),
			MScore:           c.MScore.ToInt(),
			Segment:          c.Segment.ToString(),
		}
	}
	return rows
}

// FrequencyDistribution reports buyer count and population share per
// frequency bucket, ordered by bucket descending. Empty buckets are omitted;
// an empty population yields an empty report rather than dividing by zero.
func (s ScoredSet) FrequencyDistribution() []specs.DistributionRowSpec {
	if len(s.customers) == 0 {
		return []specs.DistributionRowSpec{}
	}

	counts := make(map[int]int)
	for _, c := range s.customers {
		counts[c.FScore.ToInt()]++
	}

	total := NewDecimalFromInt64(int64(len(s.customers)))
	rows := make([]specs.DistributionRowSpec, 0, scoreBuckets)
	for bucket := scoreBuckets; bucket >= 1; bucket-- {
		count, ok := counts[bucket]
		if !ok {
			continue
		}

		share := NewDecimalFromInt64(int64(count) * 100).Div(total).Round(2)
		rows = append(rows, specs.DistributionRowSpec{
			FScore:        bucket,
			CustomerCount: count,
			Percentage:    share.Text() + "%",
		})
	}
	return rows
}
