package calendar

import "encoding/json"

// Level is the quartile bucket the data source assigns to a day
type Level int

const (
	LevelNone Level = iota
	LevelFirstQuartile
	LevelSecondQuartile
	LevelThirdQuartile
	LevelFourthQuartile
)

var levelNames = map[Level]string{
	LevelNone:           "NONE",
	LevelFirstQuartile:  "FIRST_QUARTILE",
	LevelSecondQuartile: "SECOND_QUARTILE",
	LevelThirdQuartile:  "THIRD_QUARTILE",
	LevelFourthQuartile: "FOURTH_QUARTILE",
}

// ParseLevel maps a GitHub ContributionLevel name to a Level.
// Unknown names map to LevelNone.
func ParseLevel(name string) Level {
	for level, n := range levelNames {
		if n == name {
			return level
		}
	}
	return LevelNone
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return levelNames[LevelNone]
}

// MarshalJSON encodes the level by name
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level name
func (l *Level) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*l = ParseLevel(name)
	return nil
}
