// Package parquet provides data structures and functions for exporting heatgrid
// contribution data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/heatgrid/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributionCell represents one populated day of a contribution heatmap.
type ContributionCell struct {
	// Slug is the GitHub profile the heatmap belongs to
	Slug string `parquet:"slug,snappy,dict"`

	// Year is the requested calendar year (nullable, absent for the rolling year)
	Year *string `parquet:"year,optional,snappy"`

	// Week is the column index, 0 being the oldest week
	Week int32 `parquet:"week,snappy"`

	// Day is the weekday slot, 0 being Sunday
	Day int32 `parquet:"day,snappy"`

	// Weekday is the short weekday name of Day
	Weekday string `parquet:"weekday,snappy,dict"`

	// Level is the activity level published by GitHub
	Level int32 `parquet:"level,snappy"`

	// Intensity is the rendered color intensity (0-255)
	Intensity int32 `parquet:"intensity,snappy"`
}

// CellsFromHeatmap converts the populated slots of a heatmap into Parquet rows.
func CellsFromHeatmap(slug, year string, h schema.Heatmap) []ContributionCell {
	var yearPtr *string
	if year != "" {
		yearPtr = &year
	}

	cells := schema.Cells(h)
	result := make([]ContributionCell, len(cells))
	for i, c := range cells {
		result[i] = ContributionCell{
			Slug:      slug,
			Year:      yearPtr,
			Week:      int32(c.Week),
			Day:       int32(c.Day),
			Weekday:   schema.Weekdays[c.Day],
			Level:     int32(c.Level),
			Intensity: int32(c.Intensity),
		}
	}
	return result
}

// WriteContributionCellsParquet writes a slice of ContributionCell structs to a Parquet file.
func WriteContributionCellsParquet(data []ContributionCell, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ContributionCell struct tags
	writer := parquet.NewGenericWriter[ContributionCell](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the row group and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
