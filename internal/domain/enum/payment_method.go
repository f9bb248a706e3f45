package enum

import "strings"

// PaymentMethod identifies how a sale was paid.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
	// PaymentUnknown tags ledger entries whose payment value was missing or
	// unrecognized. Stored explicitly so reporting never deals with absent
	// fields.
	PaymentUnknown PaymentMethod = "unknown"
)

// ParsePaymentMethod parses a payment method chosen by the operator.
// Only cash and online are selectable on a bill.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentCash:
		return PaymentCash, true
	case PaymentOnline:
		return PaymentOnline, true
	default:
		return "", false
	}
}

// Normalize maps any stored value to a recognized tag, defaulting to unknown.
func (m PaymentMethod) Normalize() PaymentMethod {
	switch m {
	case PaymentCash, PaymentOnline:
		return m
	default:
		return PaymentUnknown
	}
}

// Label returns the display label for report output.
func (m PaymentMethod) Label() string {
	return strings.ToUpper(string(m.Normalize()))
}
