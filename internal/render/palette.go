package render

import "github.com/klabast/dono/internal/calendar"

// Resolve returns the display color of a day. It is total: every day gets a color.
func Resolve(day calendar.DayRecord, opts Options) calendar.Color {
	if opts.Policy == PolicyNative {
		return resolveNative(day)
	}
	if day.Count == 0 {
		return opts.Palette.Empty
	}
	return opts.Palette.ForLevel(day.Level)
}

func resolveNative(day calendar.DayRecord) calendar.Color {
	if day.Count == 0 {
		return NativeDark
	}
	c, err := calendar.ParseColor(day.SourceColor)
	if err != nil {
		return NativeDark
	}
	return c
}

// glyph returns the character drawn for a day
func glyph(day calendar.DayRecord, opts Options) string {
	if day.Count == 0 {
		return opts.Empty
	}
	return opts.Fill
}
