package journal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2024-12-31 ", NewDate(2024, time.December, 31), false},
		{"invalid-date", Date{}, true},
		{"15/01/2024", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDateStringAndLabel(t *testing.T) {
	d := NewDate(2024, time.January, 2)
	if got := d.String(); got != "2024-01-02" {
		t.Errorf("String() = %q, want %q", got, "2024-01-02")
	}
	if got := d.Label(); got != "Jan 2, 2024" {
		t.Errorf("Label() = %q, want %q", got, "Jan 2, 2024")
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2024, time.January, 1)
	b := NewDate(2024, time.January, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is inconsistent for %s and %s", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is inconsistent for %s and %s", a, b)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.February, 29)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `"2024-02-29"` {
		t.Errorf("Marshal = %s, want \"2024-02-29\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Errorf("Unmarshal accepted an invalid date")
	}
}
