package internal

import (
	specs "customer-rfm/specs"
	"fmt"
	"time"
)

type CustomerMetrics struct {
	UniqueID     CustomerUniqueID
	LastPurchase LastPurchaseDate
	Frequency    Frequency
	Monetary     Monetary
}

func NewCustomerMetrics(spec specs.CustomerMetricsSpec) (CustomerMetrics, error) {
	uniqueID, err := NewCustomerUniqueID(spec.CustomerUniqueID)
	if err != nil {
		return CustomerMetrics{}, fmt.Errorf("invalid customer unique ID: %w", err)
	}

	lastPurchase, err := NewLastPurchaseDate(spec.LastPurchaseDate)
	if err != nil {
		return CustomerMetrics{}, fmt.Errorf("invalid last purchase date: %w", err)
	}

	frequency, err := NewFrequency(spec.Frequency)
	if err != nil {
		return CustomerMetrics{}, fmt.Errorf("invalid frequency: %w", err)
	}

	monetary, err := NewMonetary(spec.Monetary)
	if err != nil {
		return CustomerMetrics{}, fmt.Errorf("invalid monetary: %w", err)
	}

	return CustomerMetrics{
		UniqueID:     uniqueID,
		LastPurchase: lastPurchase,
		Frequency:    frequency,
		Monetary:     monetary,
	}, nil
}

func (m CustomerMetrics) ToSpec() specs.CustomerMetricsSpec {
	return specs.CustomerMetricsSpec{
		CustomerUniqueID: m.UniqueID.ToString(),
		LastPurchaseDate: m.LastPurchase.ToTime(),
		Frequency:        m.Frequency.ToInt(),
		Monetary:         m.Monetary.ToDecimal().Text(),
	}
}

type LastPurchaseDate struct {
	value time.Time
}

func NewLastPurchaseDate(value time.Time) (LastPurchaseDate, error) {
	if value.IsZero() {
		return LastPurchaseDate{}, fmt.Errorf("last purchase date is required")
	}
	return LastPurchaseDate{value: value}, nil
}

func (d LastPurchaseDate) ToTime() time.Time {
	return d.value
}

type Frequency struct {
	value int
}

// NewFrequency rejects values below one: every aggregated buyer has at least
// one delivered order by construction.
func NewFrequency(value int) (Frequency, error) {
	if value < 1 {
		return Frequency{}, fmt.Errorf("frequency must be at least 1, got %d", value)
	}
	return Frequency{value: value}, nil
}

func (f Frequency) ToInt() int {
	return f.value
}

type Monetary struct {
	value Decimal
}

func NewMonetary(value string) (Monetary, error) {
	if value == "" {
		return Monetary{}, fmt.Errorf("monetary is required")
	}

	d, err := NewDecimal(value)
	if err != nil {
		return Monetary{}, err
	}

	if d.IsNegative() {
		return Monetary{}, fmt.Errorf("monetary cannot be negative: %s", value)
	}

	return Monetary{value: d}, nil
}

func NewMonetaryFromDecimal(value Decimal) (Monetary, error) {
	if value.IsNegative() {
		return Monetary{}, fmt.Errorf("monetary cannot be negative: %s", value.Text())
	}
	return Monetary{value: value}, nil
}

func (m Monetary) ToDecimal() Decimal {
	return m.value
}
