package utils

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2025-06-14")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2025 || d.Month() != time.June || d.Day() != 14 {
		t.Fatalf("unexpected date %v", d)
	}

	if _, err := ParseDateOnly("14/06/2025"); err == nil {
		t.Fatal("expected error for non ISO date")
	}
	if _, err := ParseDateOnly(""); err == nil {
		t.Fatal("expected error for empty string")
	}
}

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d := NewDateOnly(2025, time.March, 7)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2025-03-07"` {
		t.Fatalf("expected \"2025-03-07\", got %s", raw)
	}

	var parsed DateOnly
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("expected %v, got %v", d, parsed)
	}
}

func TestDateOnlyJSONNull(t *testing.T) {
	var d DateOnly
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Fatal("expected zero date for null")
	}

	raw, err := json.Marshal(DateOnly{})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `null` {
		t.Fatalf("expected null, got %s", raw)
	}
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	if err := d.Scan(time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if d.Format("2006-01-02") != "2025-01-02" {
		t.Fatalf("unexpected date %v", d)
	}

	var fromString DateOnly
	if err := fromString.Scan("2025-09-30"); err != nil {
		t.Fatal(err)
	}
	if fromString.Format("2006-01-02") != "2025-09-30" {
		t.Fatalf("unexpected date %v", fromString)
	}

	var fromNil DateOnly
	if err := fromNil.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !fromNil.IsZero() {
		t.Fatal("expected zero date for nil")
	}

	var bad DateOnly
	if err := bad.Scan(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestDateOnlyBefore(t *testing.T) {
	earlier := NewDateOnly(2025, time.May, 19)
	later := NewDateOnly(2025, time.May, 20)

	if !earlier.Before(later) {
		t.Fatal("expected earlier < later")
	}
	if later.Before(earlier) {
		t.Fatal("expected later not < earlier")
	}
	if earlier.Before(earlier) {
		t.Fatal("expected same day not before itself")
	}
}
