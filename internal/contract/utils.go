package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/heatgrid/schema"
)

// Color variables for console output.
var (
	HeaderColor = color.New(color.FgCyan, color.Bold) // HeaderColor highlights summary headings.
	MutedColor  = color.New(color.FgHiBlack)          // MutedColor is used for secondary labels.
)

// GetBucketLabel returns a colored label for an activity bucket, shaded the
// same way its glyphs are rendered.
func GetBucketLabel(bucket string, level schema.ActivityLevel, hue schema.Hue, useColors bool) string {
	if !useColors {
		return bucket
	}
	rgb := hue.Channel(schema.Intensity(level))
	if rgb == (schema.RGB{}) {
		return MutedColor.Sprint(bucket)
	}
	return color.RGB(int(rgb.R), int(rgb.G), int(rgb.B)).Sprint(bucket)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
