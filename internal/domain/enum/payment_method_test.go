package enum

import "testing"

func TestParsePaymentMethod(t *testing.T) {
	cases := []struct {
		in   string
		want PaymentMethod
		ok   bool
	}{
		{"cash", PaymentCash, true},
		{"online", PaymentOnline, true},
		{"  CASH ", PaymentCash, true},
		{"Online", PaymentOnline, true},
		{"card", "", false},
		{"", "", false},
		{"unknown", "", false},
	}

	for _, tc := range cases {
		got, ok := ParsePaymentMethod(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePaymentMethod(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPaymentMethodNormalize(t *testing.T) {
	if got := PaymentMethod("card").Normalize(); got != PaymentUnknown {
		t.Errorf("Normalize(card) = %q, want unknown", got)
	}
	if got := PaymentCash.Normalize(); got != PaymentCash {
		t.Errorf("Normalize(cash) = %q, want cash", got)
	}
}

func TestPaymentMethodLabel(t *testing.T) {
	if got := PaymentOnline.Label(); got != "ONLINE" {
		t.Errorf("Label(online) = %q", got)
	}
	if got := PaymentMethod("").Label(); got != "UNKNOWN" {
		t.Errorf("Label(empty) = %q", got)
	}
}
