package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#eeeeee", true},
		{"#C6E48B", true},
		{"#239a3b", true},
		{"#zzzzzz", false},
		{"eeeeee", false},
		{"#eee", false},
		{"#eeeeeee", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexColor(tt.in))
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#239a3b")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x23, G: 0x9a, B: 0x3b, Hex: "#239a3b"}, c)

	c, err = ParseColor("#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, "#FFFFFF", c.Hex)

	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseColor("nope") })
}
