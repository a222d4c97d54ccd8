package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/huangsam/heatgrid/internal/parquet"
	"github.com/huangsam/heatgrid/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Cell glyphs. Every cell is two characters wide so columns stay aligned.
const (
	FilledCell = "■ "
	EmptyCell  = "  "
)

// PrintHeatmapResults outputs the heatmap, dispatching based on the output format configured.
func PrintHeatmapResults(h schema.Heatmap, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForHeatmap(h, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForHeatmap(h, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForHeatmap(h, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to the glyph grid
		if err := printHeatmapGrid(h, cfg, duration); err != nil {
			return fmt.Errorf("error writing heatmap output: %w", err)
		}
	}
	return nil
}

// RenderHeatmapLines renders the heatmap as one line per weekday, Sunday
// first, with one colored cell per week from oldest to newest.
func RenderHeatmapLines(h schema.Heatmap, hue schema.Hue) []string {
	return renderHeatmapLines(h, hue, true)
}

// renderHeatmapLines transposes the week-major heatmap into day-major lines.
// Without colors, populated cells are plain glyphs.
func renderHeatmapLines(h schema.Heatmap, hue schema.Hue, useColors bool) []string {
	glyphs := make(map[uint8]string)
	glyph := func(intensity uint8) string {
		if !useColors {
			return FilledCell
		}
		if g, ok := glyphs[intensity]; ok {
			return g
		}
		rgb := hue.Channel(intensity)
		c := color.RGB(int(rgb.R), int(rgb.G), int(rgb.B))
		c.EnableColor()
		g := c.Sprint(FilledCell)
		glyphs[intensity] = g
		return g
	}

	lines := make([]string, schema.DaysInWeek)
	for day := range schema.DaysInWeek {
		var sb strings.Builder
		for _, week := range h.Weeks {
			if c := week[day]; c != nil {
				sb.WriteString(glyph(c.Intensity()))
			} else {
				sb.WriteString(EmptyCell)
			}
		}
		lines[day] = sb.String()
	}
	return lines
}

// printHeatmapGrid writes the glyph grid, followed by the summary table when requested.
func printHeatmapGrid(h schema.Heatmap, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		shown := h
		if cfg.Fit {
			shown = FitHeatmap(h, GetTerminalWidth(cfg))
		}
		for _, line := range renderHeatmapLines(shown, cfg.Hue, cfg.UseColors) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if !cfg.Detail {
			return nil
		}
		if err := writeHeatmapSummaryTable(w, schema.Summarize(h), cfg); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Heatmap for %s built in %v.\n", cfg.Slug, duration)
		return err
	}, "Wrote heatmap")
}

// writeHeatmapSummaryTable prints aggregate statistics in a two-column table.
func writeHeatmapSummaryTable(w io.Writer, s schema.HeatmapSummary, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight}
	})

	busiest := s.BusiestDay
	if busiest == "" {
		busiest = "-"
	}
	data := [][]string{
		{"Weeks", strconv.Itoa(s.Weeks)},
		{"Tracked days", strconv.Itoa(s.TrackedDays)},
		{"Active days", strconv.Itoa(s.ActiveDays)},
		{"Longest streak", strconv.Itoa(s.LongestStreak)},
		{"Busiest weekday", busiest},
	}
	for i, bucket := range schema.LevelBuckets {
		label := contract.GetBucketLabel("Level "+bucket, schema.ActivityLevel(i), cfg.Hue, cfg.UseColors)
		data = append(data, []string{label, strconv.Itoa(s.LevelCounts[bucket])})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// printJSONResultsForHeatmap handles opening the file and calling the JSON writer.
func printJSONResultsForHeatmap(h schema.Heatmap, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForHeatmap(w, schema.NewHeatmapResult(cfg.Slug, cfg.Year, h))
	}, "Wrote JSON heatmap results")
}

// printCSVResultsForHeatmap handles opening the file and calling the CSV writer.
func printCSVResultsForHeatmap(h schema.Heatmap, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForHeatmap(w, h)
	}, "Wrote CSV heatmap results")
}

// printParquetResultsForHeatmap exports the populated cells to a Parquet file.
func printParquetResultsForHeatmap(h schema.Heatmap, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	rows := parquet.CellsFromHeatmap(cfg.Slug, cfg.Year, h)
	if err := parquet.WriteContributionCellsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	_, err := fmt.Fprintf(os.Stderr, "💾 Wrote parquet heatmap results to %s\n", cfg.OutputFile)
	return err
}
