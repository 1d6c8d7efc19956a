package calendar

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture(t *testing.T) Calendar {
	return Calendar{
		mustDay(t, "2025-01-15", 0, "#ebedf0", "NONE"),
		mustDay(t, "2025-01-16", 6, "#216e39", "FOURTH_QUARTILE"),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,count,level,color", lines[0])
	assert.Equal(t, "2025-01-15,0,NONE,#ebedf0", lines[1])
	assert.Equal(t, "2025-01-16,6,FOURTH_QUARTILE,#216e39", lines[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "octocat", exportFixture(t)))

	var got struct {
		User  string `json:"user"`
		Total int    `json:"total"`
		Days  []struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
			Level Level  `json:"level"`
			Color string `json:"color"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "octocat", got.User)
	assert.Equal(t, 6, got.Total)
	require.Len(t, got.Days, 2)
	assert.Equal(t, "2025-01-16", got.Days[1].Date)
	assert.Equal(t, LevelFourthQuartile, got.Days[1].Level)
	assert.Contains(t, buf.String(), `"level": "FOURTH_QUARTILE"`)
}
