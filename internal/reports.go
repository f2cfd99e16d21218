package internal

import (
	specs "customer-rfm/specs"
)

// Champions implements specs.Champions.
func Champions(scored []specs.ScoredCustomerSpec) ([]specs.ChampionSpec, error) {
	set, err := NewScoredSet(scored)
	if err != nil {
		return nil, err
	}
	return set.Champions(), nil
}

// FrequencyDistribution implements specs.FrequencyDistribution.
func FrequencyDistribution(scored []specs.ScoredCustomerSpec) ([]specs.DistributionRowSpec, error) {
	set, err := NewScoredSet(scored)
	if err != nil {
		return nil, err
	}
	return set.FrequencyDistribution(), nil
}
