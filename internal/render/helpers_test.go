package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klabast/dono/internal/calendar"
)

// buildCalendar returns len(counts) contiguous days starting at start.
// Levels follow the count: 0 -> NONE, 1 -> Q1, ... 4+ -> Q4.
func buildCalendar(t *testing.T, start string, counts []int) calendar.Calendar {
	t.Helper()

	first, err := calendar.ParseDate(start)
	require.NoError(t, err)

	levels := []string{"NONE", "FIRST_QUARTILE", "SECOND_QUARTILE", "THIRD_QUARTILE", "FOURTH_QUARTILE"}
	colors := []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

	cal := make(calendar.Calendar, 0, len(counts))
	for i, count := range counts {
		bucket := min(count, 4)
		day, err := calendar.NewDayRecord(
			calendar.FormatDate(first.AddDate(0, 0, i)),
			count,
			colors[bucket],
			levels[bucket],
		)
		require.NoError(t, err)
		cal = append(cal, day)
	}
	return cal
}

// repeatCounts returns n counts cycling through 0..4
func repeatCounts(n int) []int {
	counts := make([]int, n)
	for i := range counts {
		counts[i] = i % 5
	}
	return counts
}
