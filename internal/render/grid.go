package render

import (
	"time"

	"github.com/klabast/dono/internal/calendar"
)

// DaysPerWeek is the number of grid rows
const DaysPerWeek = 7

// Grid places the days of a calendar on weekday rows and week columns
type Grid struct {
	cal       calendar.Calendar
	weekStart time.Weekday
	offset    int
}

// NewGrid lays out cal with weekStart as row 0
func NewGrid(cal calendar.Calendar, weekStart time.Weekday) (*Grid, error) {
	first, ok := cal.First()
	if !ok {
		return nil, calendar.ErrEmptyCalendar
	}

	return &Grid{
		cal:       cal,
		weekStart: weekStart,
		offset:    Offset(first.Date.Weekday(), weekStart),
	}, nil
}

// Offset is the row of the first day when rows start at weekStart
func Offset(first, weekStart time.Weekday) int {
	return (int(first) - int(weekStart) + DaysPerWeek) % DaysPerWeek
}

// Position returns the row and column of the day at index
func Position(index, offset int) (row, col int) {
	return (index + offset) % DaysPerWeek, (index + offset) / DaysPerWeek
}

// Offset returns the number of blank cells before the first day
func (g *Grid) Offset() int {
	return g.offset
}

// Columns returns the number of weeks the grid spans, including partial ones
func (g *Grid) Columns() int {
	return (len(g.cal) + g.offset + DaysPerWeek - 1) / DaysPerWeek
}

// Index maps a cell back to a calendar index. The result is negative for
// cells before the first day and >= len(calendar) for cells after the last.
func (g *Grid) Index(row, col int) int {
	return col*DaysPerWeek + row - g.offset
}

// Cell returns the day at a grid position, if any
func (g *Grid) Cell(row, col int) (calendar.DayRecord, bool) {
	i := g.Index(row, col)
	if i < 0 || i >= len(g.cal) {
		return calendar.DayRecord{}, false
	}
	return g.cal[i], true
}

// Labels returns the row labels of the grid
func (g *Grid) Labels() []string {
	return WeekdayLabels(g.weekStart)
}

// WeekdayLabels returns three-letter weekday names starting at start
func WeekdayLabels(start time.Weekday) []string {
	labels := make([]string, DaysPerWeek)
	for i := range labels {
		labels[i] = calendar.ShortWeekday(time.Weekday((int(start) + i) % DaysPerWeek))
	}
	return labels
}
