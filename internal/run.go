package internal

import (
	"context"
	"fmt"

	"customer-rfm/internal/infra"
	specs "customer-rfm/specs"
)

// Source supplies the three raw record sets from a relational store.
// Implemented by store.Store; tests substitute in-memory fakes.
type Source interface {
	LoadCustomers(ctx context.Context) ([]specs.CustomerRecordSpec, error)
	LoadOrders(ctx context.Context) ([]specs.OrderRecordSpec, error)
	LoadPayments(ctx context.Context) ([]specs.PaymentRecordSpec, error)
}

// Run executes one scoring pass: load the record sets, aggregate to
// per-buyer metrics, assign scores, and return the cached scored set that
// both report views read from.
//
// Pipeline progress is published on the bus when one is provided; a nil bus
// disables events. Source errors surface unchanged; the run is one-shot and
// never retries.
func Run(ctx context.Context, src Source, bus *infra.Bus) (ScoredSet, error) {
	customers, err := src.LoadCustomers(ctx)
	if err != nil {
		return ScoredSet{}, fmt.Errorf("load customers: %w", err)
	}

	orders, err := src.LoadOrders(ctx)
	if err != nil {
		return ScoredSet{}, fmt.Errorf("load orders: %w", err)
	}

	payments, err := src.LoadPayments(ctx)
	if err != nil {
		return ScoredSet{}, fmt.Errorf("load payments: %w", err)
	}

	publish(bus, infra.SourceRecordsLoadedEvent{
		Customers: len(customers),
		Orders:    len(orders),
		Payments:  len(payments),
	})

	metricsSpecs, err := Aggregate(customers, orders, payments)
	if err != nil {
		return ScoredSet{}, fmt.Errorf("aggregate: %w", err)
	}

	publish(bus, infra.CustomersAggregatedEvent{Customers: len(metricsSpecs)})

	metrics := make([]CustomerMetrics, len(metricsSpecs))
	for i, spec := range metricsSpecs {
		m, err := NewCustomerMetrics(spec)
		if err != nil {
			return ScoredSet{}, fmt.Errorf("invalid metrics at index %d: %w", i, err)
		}
		metrics[i] = m
	}

	scored, err := score(metrics)
	if err != nil {
		return ScoredSet{}, fmt.Errorf("score: %w", err)
	}

	publish(bus, infra.CustomersScoredEvent{Customers: len(scored)})

	return ScoredSet{customers: scored}, nil
}

func publish(bus *infra.Bus, e infra.Event) {
	if bus != nil {
		bus.Publish(e)
	}
}
