package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klabast/dono/internal/calendar"
)

func scenarioPalette(t *testing.T) Palette {
	t.Helper()
	parse := func(hex string) calendar.Color {
		c, err := calendar.ParseColor(hex)
		require.NoError(t, err)
		return c
	}
	return Palette{
		Empty:  parse("#eeeeee"),
		Low:    parse("#c6e48b"),
		Medium: parse("#7bc96f"),
		High:   parse("#239a3b"),
		Max:    parse("#196127"),
	}
}

func TestResolveZeroCountIsEmpty(t *testing.T) {
	custom := DefaultOptions()
	custom.Palette = scenarioPalette(t)
	native := custom
	native.Policy = PolicyNative

	levels := []calendar.Level{
		calendar.LevelNone,
		calendar.LevelFirstQuartile,
		calendar.LevelSecondQuartile,
		calendar.LevelThirdQuartile,
		calendar.LevelFourthQuartile,
	}
	for _, level := range levels {
		for _, source := range []string{"", "#39d353", "garbage"} {
			day := calendar.DayRecord{Count: 0, Level: level, SourceColor: source}
			assert.Equal(t, "#eeeeee", Resolve(day, custom).Hex, "custom %s %q", level, source)
			assert.Equal(t, NativeDark, Resolve(day, native), "native %s %q", level, source)
		}
	}
}

func TestResolveCustomLevels(t *testing.T) {
	opts := DefaultOptions()
	opts.Palette = scenarioPalette(t)

	tests := []struct {
		level calendar.Level
		want  string
	}{
		{calendar.LevelFirstQuartile, "#c6e48b"},
		{calendar.LevelSecondQuartile, "#7bc96f"},
		{calendar.LevelThirdQuartile, "#239a3b"},
		{calendar.LevelFourthQuartile, "#196127"},
		{calendar.LevelNone, "#eeeeee"},
		{calendar.Level(99), "#eeeeee"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			day := calendar.DayRecord{Count: 10, Level: tt.level, SourceColor: "#000000"}
			assert.Equal(t, tt.want, Resolve(day, opts).Hex)
		})
	}
}

func TestResolveNative(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = PolicyNative

	c := Resolve(calendar.DayRecord{Count: 3, SourceColor: "#40c463", Level: calendar.LevelNone}, opts)
	assert.Equal(t, calendar.Color{R: 0x40, G: 0xc4, B: 0x63, Hex: "#40c463"}, c)

	c = Resolve(calendar.DayRecord{Count: 3, SourceColor: ""}, opts)
	assert.Equal(t, NativeDark, c)
}

func TestGlyph(t *testing.T) {
	opts := DefaultOptions()
	opts.Fill = "#"
	opts.Empty = "."

	assert.Equal(t, ".", glyph(calendar.DayRecord{Count: 0}, opts))
	assert.Equal(t, "#", glyph(calendar.DayRecord{Count: 1}, opts))
}
