package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"Vendor", KeyVendor, "vendor1", Vendor("vendor1")},
		{"Company", KeyCompany, "Acme", Company("Acme")},
		{"Product", KeyProduct, "Widget", Product("Widget")},
		{"Template", KeyTemplate, "intro.md", Template("intro.md")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Step", KeyStep, "placeholders", Step("placeholders")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if tc.attr.Value.String() != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.attr.Value.String())
		}
	}
}

func TestErrorAttr(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should produce empty value, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected attr %v", a)
	}
	if a := Count(3); a.Value.Int64() != 3 {
		t.Fatalf("unexpected count %v", a)
	}
}
