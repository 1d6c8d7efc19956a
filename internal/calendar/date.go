package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the date format used by the data source and the exporters
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date at midnight UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseWeekday accepts a full English weekday name in any case
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%q is not a weekday name", name)
}

// ShortWeekday returns the three-letter abbreviation of a weekday
func ShortWeekday(d time.Weekday) string {
	return d.String()[:3]
}

// ShortMonth returns the three-letter abbreviation of a month
func ShortMonth(m time.Month) string {
	return m.String()[:3]
}
