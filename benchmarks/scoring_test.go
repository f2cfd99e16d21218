package benchmarks

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"customer-rfm/internal"
	"customer-rfm/specs"
)

// population builds raw record sets shaped like the real dataset: mostly
// one-time buyers, a thin tail of repeat buyers, occasional installment
// payments.
func population(buyers int) ([]specs.CustomerRecordSpec, []specs.OrderRecordSpec, []specs.PaymentRecordSpec) {
	base := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

	var customers []specs.CustomerRecordSpec
	var orders []specs.OrderRecordSpec
	var payments []specs.PaymentRecordSpec

	for b := 0; b < buyers; b++ {
		frequency := 1
		switch {
		case b%97 == 0:
			frequency = 5
		case b%23 == 0:
			frequency = 3
		case b%7 == 0:
			frequency = 2
		}

		uniqueID := fmt.Sprintf("buyer-%06d", b)
		for o := 0; o < frequency; o++ {
			accountID := fmt.Sprintf("acct-%06d-%d", b, o)
			orderID := fmt.Sprintf("order-%06d-%d", b, o)

			customers = append(customers, specs.CustomerRecordSpec{
				CustomerID:       accountID,
				CustomerUniqueID: uniqueID,
			})
			orders = append(orders, specs.OrderRecordSpec{
				OrderID:           orderID,
				CustomerID:        accountID,
				Status:            "delivered",
				PurchaseTimestamp: base.AddDate(0, 0, (b+37*o)%500),
			})

			lines := 1 + (b+o)%3
			for l := 0; l < lines; l++ {
				payments = append(payments, specs.PaymentRecordSpec{
					OrderID: orderID,
					Value:   fmt.Sprintf("%d.%02d", 10+(b+l)%200, (b*7)%100),
				})
			}
		}
	}

	return customers, orders, payments
}

func BenchmarkScoreCustomers(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		customers, orders, payments := population(size)

		b.Run(fmt.Sprintf("buyers_%d", size), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := internal.ScoreCustomers(customers, orders, payments); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAggregate(b *testing.B) {
	customers, orders, payments := population(10000)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := internal.Aggregate(customers, orders, payments); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFrequencyDistribution(b *testing.B) {
	customers, orders, payments := population(10000)
	scored, err := internal.ScoreCustomers(customers, orders, payments)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := internal.FrequencyDistribution(scored); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark JSON serialization of a realistic scored customer row
func BenchmarkScoredCustomer_JSONMarshal(b *testing.B) {
	row := specs.ScoredCustomerSpec{
		CustomerUniqueID: "8d50f5eadf50201ccdcedfb9e2ac8455",
		LastPurchaseDate: time.Date(2018, 8, 29, 15, 0, 37, 0, time.UTC),
		Frequency:        3,
		Monetary:         "588.24",
		RScore:           5,
		FScore:           3,
		MScore:           5,
		Segment:          "535",
	}
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(row); err != nil {
			b.Fatal(err)
		}
	}
}
