package internal

import (
	specs "customer-rfm/specs"
	"fmt"
)

type ScoredCustomer struct {
	Metrics CustomerMetrics
	RScore  RFMScore
	FScore  RFMScore
	MScore  RFMScore
	Segment SegmentCode
}

func NewScoredCustomer(spec specs.ScoredCustomerSpec) (ScoredCustomer, error) {
	metrics, err := NewCustomerMetrics(specs.CustomerMetricsSpec{
		CustomerUniqueID: spec.CustomerUniqueID,
		LastPurchaseDate: spec.LastPurchaseDate,
		Frequency:        spec.Frequency,
		Monetary:         spec.Monetary,
	})
	if err != nil {
		return ScoredCustomer{}, err
	}

	rScore, err := NewRFMScore(spec.RScore)
	if err != nil {
		return ScoredCustomer{}, fmt.Errorf("invalid r score: %w", err)
	}

	fScore, err := NewRFMScore(spec.FScore)
	if err != nil {
		return ScoredCustomer{}, fmt.Errorf("invalid f score: %w", err)
	}

	mScore, err := NewRFMScore(spec.MScore)
	if err != nil {
		return ScoredCustomer{}, fmt.Errorf("invalid m score: %w", err)
	}

	segment := NewSegmentCode(rScore, fScore, mScore)
	if spec.Segment != "" && spec.Segment != segment.ToString() {
		return ScoredCustomer{}, fmt.Errorf("segment %q does not match scores %s", spec.Segment, segment.ToString())
	}

	return ScoredCustomer{
		Metrics: metrics,
		RScore:  rScore,
		FScore:  fScore,
		MScore:  mScore,
		Segment: segment,
	}, nil
}

func (c ScoredCustomer) ToSpec() specs.ScoredCustomerSpec {
	return specs.ScoredCustomerSpec{
		CustomerUniqueID: c.Metrics.UniqueID.ToString(),
		LastPurchaseDate: c.Metrics.LastPurchase.ToTime(),
		Frequency:        c.Metrics.Frequency.ToInt(),
		Monetary:         c.Metrics.Monetary.ToDecimal().Text(),
		RScore:           c.RScore.ToInt(),
		FScore:           c.FScore.ToInt(),
		MScore:           c.MScore.ToInt(),
		Segment:          c.Segment.ToString(),
	}
}

type RFMScore struct {
	value int
}

func NewRFMScore(value int) (RFMScore, error) {
	if value < 1 || value > 5 {
		return RFMScore{}, fmt.Errorf("score must be in [1,5], got %d", value)
	}
	return RFMScore{value: value}, nil
}

func (s RFMScore) ToInt() int {
	return s.value
}

// SegmentCode is the three-digit concatenation of r, f, and m scores.
type SegmentCode struct {
	value string
}

func NewSegmentCode(rScore, fScore, mScore RFMScore) SegmentCode {
	return SegmentCode{
		value: fmt.Sprintf("%d%d%d", rScore.ToInt(), fScore.ToInt(), mScore.ToInt()),
	}
}

func (s SegmentCode) ToString() string {
	return s.value
}
