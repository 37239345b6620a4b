package codec

import (
	"testing"
	"time"
)

func TestISODate_RoundTrip(t *testing.T) {
	got, err := ParseISODate("2024-02-29")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got)
	}
	if s := FormatISODate(got); s != "2024-02-29" {
		t.Fatalf("roundtrip mismatch: %s", s)
	}
}

func TestISODate_ZonedAndInvalid(t *testing.T) {
	if _, err := ParseISODate("2024-03-01+09:00"); err != nil {
		t.Fatalf("zoned date should parse: %v", err)
	}
	for _, in := range []string{"2023-02-29", "2024-3-1", "20240301", ""} {
		if err := CheckISODate(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestISODateTime_Forms(t *testing.T) {
	cases := map[string]time.Time{
		"2019-10-07T13:15:00-04:00":   time.Date(2019, 10, 7, 17, 15, 0, 0, time.UTC),
		"2019-10-07T13:15:00Z":        time.Date(2019, 10, 7, 13, 15, 0, 0, time.UTC),
		"2019-10-07T13:15:00.123Z":    time.Date(2019, 10, 7, 13, 15, 0, 123000000, time.UTC),
		"2019-10-07T13:15:00":         time.Date(2019, 10, 7, 13, 15, 0, 0, time.UTC),
		"2019-10-07T13:15:00.5+01:00": time.Date(2019, 10, 7, 12, 15, 0, 500000000, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseISODateTime(in)
		if err != nil {
			t.Fatalf("%s: parse err: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: got %v want %v", in, got.UTC(), want)
		}
	}
	if err := CheckISODateTime("2019-10-07 13:15:00"); err == nil {
		t.Fatalf("space separator should be rejected")
	}
}

func TestCommaFractionRejected(t *testing.T) {
	for _, in := range []string{"2024-01-01T10:00:00,5Z", "2024-01-01T10:00:00,123"} {
		if err := CheckISODateTime(in); err == nil {
			t.Errorf("%s: comma fraction accepted", in)
		}
	}
	if err := CheckISOTime("10:00:00,5"); err == nil {
		t.Errorf("time with comma fraction accepted")
	}
	if err := CheckISODateTime("2024-01-01T10:00:00.5Z"); err != nil {
		t.Errorf("dot fraction: %v", err)
	}
}

func TestFormatISODateTime_TrimsFraction(t *testing.T) {
	in := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if s := FormatISODateTime(in); s != "2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected format: %s", s)
	}
	loc := time.FixedZone("EDT", -4*3600)
	in = time.Date(2025, 6, 1, 9, 30, 0, 250000000, loc)
	if s := FormatISODateTime(in); s != "2025-06-01T09:30:00.25-04:00" {
		t.Fatalf("unexpected format: %s", s)
	}
}

func TestISOTimeAndYear(t *testing.T) {
	if err := CheckISOTime("13:15:00"); err != nil {
		t.Fatalf("time: %v", err)
	}
	if err := CheckISOTime("13:15:00Z"); err != nil {
		t.Fatalf("zoned time: %v", err)
	}
	if err := CheckISOTime("25:00:00"); err == nil {
		t.Fatalf("hour 25 should be rejected")
	}
	if err := CheckISOYear("2024"); err != nil {
		t.Fatalf("year: %v", err)
	}
	if _, err := ParseISOYearMonth("2024-13"); err == nil {
		t.Fatalf("month 13 should be rejected")
	}
}
