package internal

import (
	specs "customer-rfm/specs"
	"fmt"
	"sort"
)

// Aggregate reduces raw source rows to one metrics row per real-world buyer.
// Converts specs to domain objects, transforms, and converts back to specs.
//
// Join semantics are strictly inner: an order whose customer id has no
// customer row, a payment line whose order id has no delivered order, and an
// order with zero payment lines all drop out silently. A buyer therefore
// appears in the output only with at least one delivered, paid order.
func Aggregate(
	customersSpec []specs.CustomerRecordSpec,
	ordersSpec []specs.OrderRecordSpec,
	paymentsSpec []specs.PaymentRecordSpec,
) ([]specs.CustomerMetricsSpec, error) {
	customers := make([]CustomerRecord, len(customersSpec))
	for i, spec := range customersSpec {
		record, err := NewCustomerRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid customer at index %d: %w", i, err)
		}
		customers[i] = record
	}

	orders := make([]OrderRecord, len(ordersSpec))
	for i, spec := range ordersSpec {
		record, err := NewOrderRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid order at index %d: %w", i, err)
		}
		orders[i] = record
	}

	payments := make([]PaymentRecord, len(paymentsSpec))
	for i, spec := range paymentsSpec {
		record, err := NewPaymentRecord(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid payment at index %d: %w", i, err)
		}
		payments[i] = record
	}

	metrics, err := aggregate(customers, orders, payments)
	if err != nil {
		return nil, err
	}

	metricsSpecs := make([]specs.CustomerMetricsSpec, len(metrics))
	for i, m := range metrics {
		metricsSpecs[i] = m.ToSpec()
	}
	return metricsSpecs, nil
}

// deliveredOrder is one delivered order resolved to its real-world buyer.
type deliveredOrder struct {
	uniqueID    CustomerUniqueID
	purchasedAt PurchaseTimestamp
}

// customerGroup accumulates one buyer's joined rows during grouping.
type customerGroup struct {
	uniqueID     CustomerUniqueID
	lastPurchase PurchaseTimestamp
	orderIDs     map[string]bool
	monetary     Decimal
}

// aggregate is the private domain-level reduction: customers ⋈ delivered
// orders ⋈ payments, grouped by customer unique id.
func aggregate(
	customers []CustomerRecord,
	orders []OrderRecord,
	payments []PaymentRecord,
) ([]CustomerMetrics, error) {
	uniqueIDByCustomer := make(map[string]CustomerUniqueID, len(customers))
	for _, c := range customers {
		uniqueIDByCustomer[c.CustomerID.ToString()] = c.UniqueID
	}

	deliveredByOrder := make(map[string]deliveredOrder)
	for _, o := range orders {
		if !o.Status.IsDelivered() {
			continue
		}
		uniqueID, ok := uniqueIDByCustomer[o.CustomerID.ToString()]
		if !ok {
			continue // no customer row, drop per inner-join semantics
		}
		deliveredByOrder[o.OrderID.ToString()] = deliveredOrder{
			uniqueID:    uniqueID,
			purchasedAt: o.PurchasedAt,
		}
	}

	groups := make(map[string]*customerGroup)
	for _, p := range payments {
		order, ok := deliveredByOrder[p.OrderID.ToString()]
		if !ok {
			continue // orphan payment line, drop per inner-join semantics
		}

		key := order.uniqueID.ToString()
		group, ok := groups[key]
		if !ok {
			group = &customerGroup{
				uniqueID:     order.uniqueID,
				lastPurchase: order.purchasedAt,
				orderIDs:     make(map[string]bool),
				monetary:     NewDecimalFromInt64(0),
			}
			groups[key] = group
		}

		if order.purchasedAt.ToTime().After(group.lastPurchase.ToTime()) {
			group.lastPurchase = order.purchasedAt
		}
		group.orderIDs[p.OrderID.ToString()] = true
		group.monetary = group.monetary.Add(p.Value.ToDecimal())
	}

	metrics := make([]CustomerMetrics, 0, len(groups))
	for _, group := range groups {
		lastPurchase, err := NewLastPurchaseDate(group.lastPurchase.ToTime())
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", group.uniqueID.ToString(), err)
		}

		frequency, err := NewFrequency(len(group.orderIDs))
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", group.uniqueID.ToString(), err)
		}

		monetary, err := NewMonetaryFromDecimal(group.monetary)
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", group.uniqueID.ToString(), err)
		}

		metrics = append(metrics, CustomerMetrics{
			UniqueID:     group.uniqueID,
			LastPurchase: lastPurchase,
			Frequency:    frequency,
			Monetary:     monetary,
		})
	}

	// Deterministic output order so repeated runs emit identical results.
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].UniqueID.ToString() < metrics[j].UniqueID.ToString()
	})

	return metrics, nil
}
