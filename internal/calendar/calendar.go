// Package calendar holds the in-memory model of one year of contribution activity.
package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrEmptyCalendar is returned when a calendar without any day is rendered or validated
	ErrEmptyCalendar = errors.New("calendar is empty")
	// ErrNotChronological is returned when days are out of order or repeated
	ErrNotChronological = errors.New("calendar days are not in chronological order")
	// ErrNotContiguous is returned when a day is missing between two entries
	ErrNotContiguous = errors.New("calendar days are not contiguous")
)

// DayRecord represents the activity of a single calendar day
type DayRecord struct {
	Date        time.Time `json:"date"`
	Count       int       `json:"count"`
	SourceColor string    `json:"color,omitempty"`
	Level       Level     `json:"level"`
}

// Calendar is a chronological, contiguous sequence of days
type Calendar []DayRecord

// NewDayRecord builds a DayRecord from the raw values delivered by the data source
func NewDayRecord(date string, count int, color string, level string) (DayRecord, error) {
	d, err := ParseDate(date)
	if err != nil {
		return DayRecord{}, err
	}
	if count < 0 {
		return DayRecord{}, fmt.Errorf("negative contribution count %d on %s", count, date)
	}

	return DayRecord{
		Date:        d,
		Count:       count,
		SourceColor: color,
		Level:       ParseLevel(level),
	}, nil
}

// Total returns the sum of all contribution counts
func (c Calendar) Total() int {
	total := 0
	for _, day := range c {
		total += day.Count
	}
	return total
}

// First returns the earliest day of the calendar
func (c Calendar) First() (DayRecord, bool) {
	if len(c) == 0 {
		return DayRecord{}, false
	}
	return c[0], true
}

// Last returns the most recent day of the calendar
func (c Calendar) Last() (DayRecord, bool) {
	if len(c) == 0 {
		return DayRecord{}, false
	}
	return c[len(c)-1], true
}

// Validate checks that the calendar is non-empty and holds one entry per day in order
func (c Calendar) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCalendar
	}
	for i := 1; i < len(c); i++ {
		prev, cur := c[i-1].Date, c[i].Date
		if !cur.After(prev) {
			return fmt.Errorf("%w: %s follows %s", ErrNotChronological, FormatDate(cur), FormatDate(prev))
		}
		if next := prev.AddDate(0, 0, 1); !cur.Equal(next) {
			return fmt.Errorf("%w: expected %s, got %s", ErrNotContiguous, FormatDate(next), FormatDate(cur))
		}
	}
	return nil
}

// SortByDate sorts days by date in ascending order
func (c Calendar) SortByDate() {
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Date.Before(c[j].Date)
	})
}
