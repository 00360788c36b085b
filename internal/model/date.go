package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day. The wire format is DD-MM-YYYY, matching the
// quotation CSV; comparisons use the calendar value, never the string form.
type Date struct {
	Day   int
	Month int
	Year  int
}

// ParseDate parses a DD-MM-YYYY string.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("parse date %q: want DD-MM-YYYY", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: day: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: month: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: year: %w", s, err)
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

// DateOf truncates a time.Time to a Date in its own location.
func DateOf(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// String renders the wire format DD-MM-YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// Time returns the date as a UTC instant at midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is chronologically earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// DistanceTo returns the absolute calendar distance between two dates.
func (d Date) DistanceTo(other Date) time.Duration {
	diff := d.Time().Sub(other.Time())
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalJSON encodes the date as its wire string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON decodes a DD-MM-YYYY string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
