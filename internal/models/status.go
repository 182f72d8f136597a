package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// OrderStatus is the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

var orderStatuses = []OrderStatus{OrderPending, OrderProcessing, OrderDelivered, OrderCancelled}

// TransportStatus is the lifecycle of a transport run.
type TransportStatus string

const (
	TransportProcessing TransportStatus = "PROCESSING"
	TransportDelivered  TransportStatus = "DELIVERED"
)

var transportStatuses = []TransportStatus{TransportProcessing, TransportDelivered}

// PaymentStatus mirrors the state of the order payment at the gateway.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

var paymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed}

// Role decides which route groups an account may call.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

var roles = []Role{RoleAdmin, RoleStaff, RoleCustomer}

// parseLabel matches s against the known labels, ignoring case and
// surrounding spaces.
func parseLabel[T ~string](kind, s string, labels []T) (T, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range labels {
		if string(l) == want {
			return l, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}

func unmarshalLabel[T ~string](kind string, data []byte, labels []T) (T, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, fmt.Errorf("%s must be a string: %w", kind, err)
	}
	// "" is left for binding:"required" or the caller's default to handle
	if strings.TrimSpace(raw) == "" {
		var zero T
		return zero, nil
	}
	return parseLabel(kind, raw, labels)
}

func scanLabel[T ~string](kind string, src any, labels []T) (T, error) {
	var zero T
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		return zero, nil
	default:
		return zero, fmt.Errorf("cannot scan %T into %s", src, kind)
	}
	if raw == "" {
		return zero, nil
	}
	return parseLabel(kind, raw, labels)
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	return parseLabel("order status", s, orderStatuses)
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalLabel("order status", data, orderStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *OrderStatus) Scan(src any) error {
	v, err := scanLabel("order status", src, orderStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParseTransportStatus(s string) (TransportStatus, error) {
	return parseLabel("transport status", s, transportStatuses)
}

func (s TransportStatus) String() string { return string(s) }

func (s TransportStatus) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }

func (s *TransportStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalLabel("transport status", data, transportStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s TransportStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *TransportStatus) Scan(src any) error {
	v, err := scanLabel("transport status", src, transportStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	return parseLabel("payment status", s, paymentStatuses)
}

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalLabel("payment status", data, paymentStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) { return string(s), nil }

func (s *PaymentStatus) Scan(src any) error {
	v, err := scanLabel("payment status", src, paymentStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParseRole(s string) (Role, error) {
	return parseLabel("role", s, roles)
}

func (r Role) String() string { return string(r) }

func (r Role) MarshalJSON() ([]byte, error) { return json.Marshal(string(r)) }

func (r *Role) UnmarshalJSON(data []byte) error {
	v, err := unmarshalLabel("role", data, roles)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Role) Value() (driver.Value, error) { return string(r), nil }

func (r *Role) Scan(src any) error {
	v, err := scanLabel("role", src, roles)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
