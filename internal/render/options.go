// Package render draws a contribution calendar as a colored week/weekday grid.
//
// Rendering is a pure function of a calendar.Calendar and an Options value:
// nothing here performs I/O except Renderer.Write, which only writes the
// lines produced by Renderer.Render.
package render

import (
	"time"

	"github.com/klabast/dono/internal/calendar"
)

// Policy selects where cell colors come from
type Policy int

const (
	// PolicyCustom colors cells from the configured five-step palette by level
	PolicyCustom Policy = iota
	// PolicyNative colors cells with the color supplied by the data source
	PolicyNative
)

func (p Policy) String() string {
	if p == PolicyNative {
		return "native"
	}
	return "custom"
}

// DefaultGlyph is used for both filled and empty cells
const DefaultGlyph = "■"

// NativeDark is the color of zero-count days under PolicyNative.
// Data sources tend to supply a bright "empty" color that reads as activity
// on dark terminals.
var NativeDark = calendar.MustParseColor("#45475a")

// Palette maps levels to colors for PolicyCustom
type Palette struct {
	Empty  calendar.Color
	Low    calendar.Color
	Medium calendar.Color
	High   calendar.Color
	Max    calendar.Color
}

// DefaultPalette returns GitHub's dark-theme greens
func DefaultPalette() Palette {
	return Palette{
		Empty:  calendar.MustParseColor("#161b22"),
		Low:    calendar.MustParseColor("#0e4429"),
		Medium: calendar.MustParseColor("#006d32"),
		High:   calendar.MustParseColor("#26a641"),
		Max:    calendar.MustParseColor("#39d353"),
	}
}

// ForLevel returns the palette color of a level; unknown levels get Empty
func (p Palette) ForLevel(level calendar.Level) calendar.Color {
	switch level {
	case calendar.LevelFirstQuartile:
		return p.Low
	case calendar.LevelSecondQuartile:
		return p.Medium
	case calendar.LevelThirdQuartile:
		return p.High
	case calendar.LevelFourthQuartile:
		return p.Max
	default:
		return p.Empty
	}
}

// Colors returns the palette from least to most activity
func (p Palette) Colors() []calendar.Color {
	return []calendar.Color{p.Empty, p.Low, p.Medium, p.High, p.Max}
}

// Options is the immutable configuration of a render call
type Options struct {
	Policy    Policy
	Fill      string
	Empty     string
	Palette   Palette
	WeekStart time.Weekday
}

// DefaultOptions mirrors the defaults of a freshly created config file
func DefaultOptions() Options {
	return Options{
		Policy:    PolicyCustom,
		Fill:      DefaultGlyph,
		Empty:     DefaultGlyph,
		Palette:   DefaultPalette(),
		WeekStart: time.Sunday,
	}
}
