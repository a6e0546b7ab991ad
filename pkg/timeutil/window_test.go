package timeutil

import "testing"

func TestParseWindowDays(t *testing.T) {
	tests := []struct {
		input     string
		wantDays  int
		wantLabel string
		wantErr   bool
	}{
		{"", 7, "1w", false},
		{"7d", 7, "1w", false},
		{"30d", 30, "4w2d", false},
		{"4w", 28, "4w", false},
		{"1w3d", 10, "1w3d", false},
		{" 2 weeks ", 14, "2w", false},
		{"0d", 0, "", true},
		{"5h", 0, "", true},
		{"nope", 0, "", true},
	}

	for _, tc := range tests {
		days, label, err := ParseWindowDays(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		if days != tc.wantDays {
			t.Fatalf("%q: expected %d days, got %d", tc.input, tc.wantDays, days)
		}
		if label != tc.wantLabel {
			t.Fatalf("%q: expected label %q, got %q", tc.input, tc.wantLabel, label)
		}
	}
}

func TestFormatWindowDays(t *testing.T) {
	if got := FormatWindowDays(0); got != "0d" {
		t.Fatalf("expected 0d, got %q", got)
	}
	if got := FormatWindowDays(9); got != "1w2d" {
		t.Fatalf("expected 1w2d, got %q", got)
	}
}
