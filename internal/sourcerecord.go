package internal

import (
	specs "customer-rfm/specs"
	"fmt"
	"time"
)

// deliveredStatus is the only order status that participates in scoring.
const deliveredStatus = "delivered"

type CustomerRecord struct {
	CustomerID CustomerID
	UniqueID   CustomerUniqueID
}

func NewCustomerRecord(spec specs.CustomerRecordSpec) (CustomerRecord, error) {
	customerID, err := NewCustomerID(spec.CustomerID)
	if err != nil {
		return CustomerRecord{}, fmt.Errorf("invalid customer ID: %w", err)
	}

	uniqueID, err := NewCustomerUniqueID(spec.CustomerUniqueID)
	if err != nil {
		return CustomerRecord{}, fmt.Errorf("invalid customer unique ID: %w", err)
	}

	return CustomerRecord{
		CustomerID: customerID,
		UniqueID:   uniqueID,
	}, nil
}

type OrderRecord struct {
	OrderID     OrderID
	CustomerID  CustomerID
	Status      OrderStatus
	PurchasedAt PurchaseTimestamp
}

func NewOrderRecord(spec specs.OrderRecordSpec) (OrderRecord, error) {
	orderID, err := NewOrderID(spec.OrderID)
	if err != nil {
		return OrderRecord{}, fmt.Errorf("invalid order ID: %w", err)
	}

	customerID, err := NewCustomerID(spec.CustomerID)
	if err != nil {
		return OrderRecord{}, fmt.Errorf("invalid customer ID: %w", err)
	}

	status, err := NewOrderStatus(spec.Status)
	if err != nil {
		return OrderRecord{}, fmt.Errorf("invalid status: %w", err)
	}

	purchasedAt, err := NewPurchaseTimestamp(spec.PurchaseTimestamp)
	if err != nil {
		return OrderRecord{}, fmt.Errorf("invalid purchase timestamp: %w", err)
	}

	return OrderRecord{
		OrderID:     orderID,
		CustomerID:  customerID,
		Status:      status,
		PurchasedAt: purchasedAt,
	}, nil
}

type PaymentRecord struct {
	OrderID OrderID
	Value   PaymentValue
}

func NewPaymentRecord(spec specs.PaymentRecordSpec) (PaymentRecord, error) {
	orderID, err := NewOrderID(spec.OrderID)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("invalid order ID: %w", err)
	}

	value, err := NewPaymentValue(spec.Value)
	if err != nil {
		return PaymentRecord{}, fmt.Errorf("invalid payment value: %w", err)
	}

	return PaymentRecord{
		OrderID: orderID,
		Value:   value,
	}, nil
}

type CustomerID struct {
	value string
}

func NewCustomerID(value string) (CustomerID, error) {
	if value == "" {
		return CustomerID{}, fmt.Errorf("customer ID is required")
	}
	return CustomerID{value: value}, nil
}

func (id CustomerID) ToString() string {
	return id.value
}

type CustomerUniqueID struct {
	value string
}

func NewCustomerUniqueID(value string) (CustomerUniqueID, error) {
	if value == "" {
		return CustomerUniqueID{}, fmt.Errorf("customer unique ID is required")
	}
	return CustomerUniqueID{value: value}, nil
}

func (id CustomerUniqueID) ToString() string {
	return id.value
}

type OrderID struct {
	value string
}

func NewOrderID(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, fmt.Errorf("order ID is required")
	}
	return OrderID{value: value}, nil
}

func (id OrderID) ToString() string {
	return id.value
}

type OrderStatus struct {
	value string
}

func NewOrderStatus(value string) (OrderStatus, error) {
	if value == "" {
		return OrderStatus{}, fmt.Errorf("status is required")
	}
	return OrderStatus{value: value}, nil
}

func (s OrderStatus) ToString() string {
	return s.value
}

func (s OrderStatus) IsDelivered() bool {
	return s.value == deliveredStatus
}

type PurchaseTimestamp struct {
	value time.Time
}

func NewPurchaseTimestamp(value time.Time) (PurchaseTimestamp, error) {
	if value.IsZero() {
		return PurchaseTimestamp{}, fmt.Errorf("purchase timestamp is required")
	}
	return PurchaseTimestamp{value: value}, nil
}

func (t PurchaseTimestamp) ToTime() time.Time {
	return t.value
}

type PaymentValue struct {
	value Decimal
}

func NewPaymentValue(value string) (PaymentValue, error) {
	if value == "" {
		return PaymentValue{}, fmt.Errorf("payment value is required")
	}

	d, err := NewDecimal(value)
	if err != nil {
		return PaymentValue{}, err
	}

	if d.IsNegative() {
		return PaymentValue{}, fmt.Errorf("payment value cannot be negative: %s", value)
	}

	return PaymentValue{value: d}, nil
}

func (v PaymentValue) ToDecimal() Decimal {
	return v.value
}
