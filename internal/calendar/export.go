package calendar

import (
	"encoding/json"
	"fmt"
	"io"
)

// exportDay is the exported shape of a single day
type exportDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level Level  `json:"level"`
	Color string `json:"color,omitempty"`
}

// WriteCSV writes the calendar as CSV with a header row
func WriteCSV(w io.Writer, cal Calendar) error {
	if _, err := fmt.Fprintln(w, "date,count,level,color"); err != nil {
		return err
	}

	for _, day := range cal {
		if _, err := fmt.Fprintf(w, "%s,%d,%s,%s\n", FormatDate(day.Date), day.Count, day.Level, day.SourceColor); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the calendar of a user together with its total
func WriteJSON(w io.Writer, user string, cal Calendar) error {
	days := make([]exportDay, 0, len(cal))
	for _, day := range cal {
		days = append(days, exportDay{
			Date:  FormatDate(day.Date),
			Count: day.Count,
			Level: day.Level,
			Color: day.SourceColor,
		})
	}

	data := map[string]interface{}{
		"user":  user,
		"total": cal.Total(),
		"days":  days,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}
