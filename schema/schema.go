// Package schema has configs, models and shared types for all parts of heatgrid.
package schema

// DaysInWeek is the number of rows in a contribution heatmap.
const DaysInWeek = 7

// ActivityLevel is the heat level GitHub publishes for a single day.
// There is no declared upper bound; only 0-3 are distinct when rendered
// and every value from 4 upwards shares the top bucket.
type ActivityLevel uint

// Contribution represents the activity of exactly one calendar day.
type Contribution struct {
	Level ActivityLevel `json:"level"`
}

// Intensity returns the color intensity used when rendering this contribution.
func (c Contribution) Intensity() uint8 {
	return Intensity(c.Level)
}

// Week holds the seven day slots of one heatmap column. A nil slot means the
// page published no data for that day (years rarely start on a Sunday, so
// boundary weeks are sparse).
type Week [DaysInWeek]*Contribution

// Populated returns the number of slots that hold a contribution.
func (w Week) Populated() int {
	n := 0
	for _, c := range w {
		if c != nil {
			n++
		}
	}
	return n
}

// Heatmap is a full contribution grid, oldest week first.
// The core never hands out a Heatmap with zero weeks.
type Heatmap struct {
	Weeks []Week `json:"weeks"`
}

// HeatmapResult is a heatmap together with where it came from. It is the
// document written by the json output and returned by the MCP tool.
type HeatmapResult struct {
	Slug    string         `json:"slug"`
	Year    string         `json:"year,omitempty"`
	Weeks   [][]*uint      `json:"weeks"`
	Summary HeatmapSummary `json:"summary"`
}

// HeatmapSummary holds aggregate statistics over a heatmap.
type HeatmapSummary struct {
	Weeks         int            `json:"weeks"`
	TrackedDays   int            `json:"tracked_days"`
	ActiveDays    int            `json:"active_days"`
	LevelCounts   map[string]int `json:"level_counts"`
	LongestStreak int            `json:"longest_streak"`
	BusiestDay    string         `json:"busiest_day"`
}

// Cell is one populated slot of a heatmap, flattened for tabular exports.
type Cell struct {
	Week      int           `json:"week"`
	Day       int           `json:"day"`
	Level     ActivityLevel `json:"level"`
	Intensity uint8         `json:"intensity"`
}
