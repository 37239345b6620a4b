package codec

import (
	"fmt"
	"strings"
	"time"
)

// Lexical layouts of the ISO 20022 date and time simple types.
const (
	LayoutISODate          = "2006-01-02"
	LayoutISODateTime      = "2006-01-02T15:04:05.999999999Z07:00"
	LayoutISOLocalDateTime = "2006-01-02T15:04:05.999999999"
	LayoutISOTime          = "15:04:05.999999999Z07:00"
	layoutISODateZoned     = "2006-01-02Z07:00"
	layoutISOLocalTime     = "15:04:05.999999999"
	layoutISOYear          = "2006"
	layoutISOYearMonth     = "2006-01"
)

// ParseISODate parses an xs:date ("2024-03-01", optionally zoned).
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(LayoutISODate, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(layoutISODateZoned, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISODate %q", s)
	}
	return t, nil
}

// FormatISODate renders the calendar date of t.
func FormatISODate(t time.Time) string { return t.Format(LayoutISODate) }

// ParseISODateTime parses an xs:dateTime. The zone offset is optional and
// fractional seconds are accepted; a missing zone yields UTC.
func ParseISODateTime(s string) (time.Time, error) {
	// time.Parse also takes a comma before the fraction; xs:dateTime does not.
	if strings.ContainsRune(s, ',') {
		return time.Time{}, fmt.Errorf("invalid ISODateTime %q", s)
	}
	if t, err := time.Parse(LayoutISODateTime, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(LayoutISOLocalDateTime, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISODateTime %q", s)
	}
	return t, nil
}

// FormatISODateTime renders t with its zone offset ("Z" for UTC) and without
// trailing zero fractions.
func FormatISODateTime(t time.Time) string { return t.Format(LayoutISODateTime) }

// ParseISOTime parses an xs:time ("13:15:00", optionally zoned).
func ParseISOTime(s string) (time.Time, error) {
	if strings.ContainsRune(s, ',') {
		return time.Time{}, fmt.Errorf("invalid ISOTime %q", s)
	}
	if t, err := time.Parse(LayoutISOTime, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(layoutISOLocalTime, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISOTime %q", s)
	}
	return t, nil
}

// ParseISOYear parses an xs:gYear.
func ParseISOYear(s string) (time.Time, error) {
	t, err := time.Parse(layoutISOYear, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISOYear %q", s)
	}
	return t, nil
}

// ParseISOYearMonth parses an xs:gYearMonth.
func ParseISOYearMonth(s string) (time.Time, error) {
	t, err := time.Parse(layoutISOYearMonth, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISOYearMonth %q", s)
	}
	return t, nil
}

// CheckISODate discards the parsed value, for use as a lexical format check.
func CheckISODate(s string) error {
	_, err := ParseISODate(s)
	return err
}

// CheckISODateTime discards the parsed value, for use as a lexical format check.
func CheckISODateTime(s string) error {
	_, err := ParseISODateTime(s)
	return err
}

// CheckISOTime discards the parsed value, for use as a lexical format check.
func CheckISOTime(s string) error {
	_, err := ParseISOTime(s)
	return err
}

// CheckISOYear discards the parsed value, for use as a lexical format check.
func CheckISOYear(s string) error {
	_, err := ParseISOYear(s)
	return err
}
