package logger

import "testing"

func TestSanitizePayloadMasksSensitiveFields(t *testing.T) {
	payload := map[string]any{
		"name":        "Ana Souza",
		"taxId":       "12345678901",
		"phoneNumber": "+55 11 99999-0000",
		"nested": map[string]any{
			"guardianTaxId": "98765432100",
			"amount":        "10.00",
		},
	}

	sanitized, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("expected a map back, got %T", SanitizePayload(payload))
	}

	if sanitized["taxId"] != "******" {
		t.Fatalf("expected taxId masked, got %v", sanitized["taxId"])
	}
	if sanitized["phoneNumber"] != "******" {
		t.Fatalf("expected phoneNumber masked, got %v", sanitized["phoneNumber"])
	}
	if sanitized["name"] != "Ana Souza" {
		t.Fatalf("non-sensitive fields must pass through, got %v", sanitized["name"])
	}

	nested := sanitized["nested"].(map[string]any)
	if nested["guardianTaxId"] != "******" {
		t.Fatalf("expected nested guardianTaxId masked, got %v", nested["guardianTaxId"])
	}
	if nested["amount"] != "10.00" {
		t.Fatalf("expected nested amount untouched, got %v", nested["amount"])
	}
}

func TestSanitizePayloadHandlesUnmarshalablePayloads(t *testing.T) {
	if got := SanitizePayload(make(chan int)); got != "<unavailable>" {
		t.Fatalf("expected the unavailable marker, got %v", got)
	}
}
