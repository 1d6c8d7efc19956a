package render

import (
	"sort"

	"github.com/klabast/dono/internal/calendar"
)

// BuildLegend returns the legend colors from least to most activity.
//
// PolicyCustom always yields the five palette colors. PolicyNative yields
// NativeDark followed by the distinct colors of non-empty days, compared by
// hex string and sorted descending so the order is reproducible.
func BuildLegend(cal calendar.Calendar, opts Options) []calendar.Color {
	if opts.Policy != PolicyNative {
		return opts.Palette.Colors()
	}

	seen := make(map[string]calendar.Color)
	for _, day := range cal {
		if day.Count == 0 {
			continue
		}
		c := Resolve(day, opts)
		if c.Hex == NativeDark.Hex {
			continue
		}
		seen[c.Hex] = c
	}

	keys := make([]string, 0, len(seen))
	for hex := range seen {
		keys = append(keys, hex)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	legend := make([]calendar.Color, 0, len(keys)+1)
	legend = append(legend, NativeDark)
	for _, hex := range keys {
		legend = append(legend, seen[hex])
	}
	return legend
}
