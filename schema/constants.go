package schema

import "strings"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Hue represents the primary color channel used for filled cells.
	Hue string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All hues supported.
const (
	RedHue   Hue = "red"
	GreenHue Hue = "green" // default
	BlueHue  Hue = "blue"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidHues lists all valid hues.
var ValidHues = map[Hue]struct{}{
	RedHue:   {},
	GreenHue: {},
	BlueHue:  {},
}

// AllHues returns the hues in display order.
var AllHues = []Hue{RedHue, GreenHue, BlueHue}

// ParseHue resolves a case-insensitive hue name.
func ParseHue(s string) (Hue, bool) {
	h := Hue(strings.ToLower(strings.TrimSpace(s)))
	_, ok := ValidHues[h]
	return h, ok
}

// Intensity levels for each activity bucket.
const (
	IntensityNone    uint8 = 0
	IntensityLow     uint8 = 64
	IntensityMedium  uint8 = 127
	IntensityHigh    uint8 = 191
	IntensityHighest uint8 = 255
)

// Intensity maps an activity level to a color intensity. Levels from 4 up
// saturate at IntensityHighest.
func Intensity(level ActivityLevel) uint8 {
	switch level {
	case 0:
		return IntensityNone
	case 1:
		return IntensityLow
	case 2:
		return IntensityMedium
	case 3:
		return IntensityHigh
	default:
		return IntensityHighest
	}
}

// RGB is a truecolor triple.
type RGB struct {
	R, G, B uint8
}

// Channel places the intensity on this hue's channel and leaves the others at zero.
func (h Hue) Channel(intensity uint8) RGB {
	switch h {
	case RedHue:
		return RGB{R: intensity}
	case BlueHue:
		return RGB{B: intensity}
	default: // GreenHue
		return RGB{G: intensity}
	}
}

// Weekday names indexed by day slot; GitHub's grid starts on Sunday.
var Weekdays = [DaysInWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
