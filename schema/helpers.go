package schema

import "strconv"

// LevelBucket returns the label of the rendering bucket a level falls into.
func LevelBucket(level ActivityLevel) string {
	if level >= 4 {
		return "4+"
	}
	return strconv.FormatUint(uint64(level), 10)
}

// LevelBuckets lists the bucket labels in ascending order.
var LevelBuckets = []string{"0", "1", "2", "3", "4+"}

// Cells flattens the populated slots of a heatmap in chronological order
// (week by week, Sunday first).
func Cells(h Heatmap) []Cell {
	var cells []Cell
	for w, week := range h.Weeks {
		for d, c := range week {
			if c == nil {
				continue
			}
			cells = append(cells, Cell{
				Week:      w,
				Day:       d,
				Level:     c.Level,
				Intensity: c.Intensity(),
			})
		}
	}
	return cells
}

// Summarize computes aggregate statistics over a heatmap.
func Summarize(h Heatmap) HeatmapSummary {
	s := HeatmapSummary{
		Weeks:       len(h.Weeks),
		LevelCounts: make(map[string]int, len(LevelBuckets)),
	}
	for _, b := range LevelBuckets {
		s.LevelCounts[b] = 0
	}

	var perDay [DaysInWeek]int
	streak := 0
	for _, week := range h.Weeks {
		for d, c := range week {
			if c == nil {
				streak = 0
				continue
			}
			s.TrackedDays++
			s.LevelCounts[LevelBucket(c.Level)]++
			if c.Level == 0 {
				streak = 0
				continue
			}
			s.ActiveDays++
			perDay[d]++
			streak++
			s.LongestStreak = max(s.LongestStreak, streak)
		}
	}

	best := 0
	for d, n := range perDay {
		if n > best {
			best = n
			s.BusiestDay = Weekdays[d]
		}
	}
	return s
}

// LevelMatrix converts a heatmap into week-major rows of optional levels,
// the shape used by JSON consumers.
func LevelMatrix(h Heatmap) [][]*uint {
	rows := make([][]*uint, len(h.Weeks))
	for w, week := range h.Weeks {
		row := make([]*uint, DaysInWeek)
		for d, c := range week {
			if c != nil {
				level := uint(c.Level)
				row[d] = &level
			}
		}
		rows[w] = row
	}
	return rows
}

// NewHeatmapResult bundles a heatmap with its origin and summary.
func NewHeatmapResult(slug, year string, h Heatmap) HeatmapResult {
	return HeatmapResult{
		Slug:    slug,
		Year:    year,
		Weeks:   LevelMatrix(h),
		Summary: Summarize(h),
	}
}
