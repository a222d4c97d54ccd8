package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/huangsam/heatgrid/schema"
)

// heatmapCSVHeader lists the columns of the CSV export.
var heatmapCSVHeader = []string{"week", "day", "weekday", "level", "intensity"}

// writeJSONResultsForHeatmap marshals the schema.HeatmapResult to JSON and writes it.
func writeJSONResultsForHeatmap(w io.Writer, result schema.HeatmapResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForHeatmap writes one row per populated heatmap cell.
func writeCSVResultsForHeatmap(w io.Writer, h schema.Heatmap) error {
	return writeCSVWithHeader(w, heatmapCSVHeader, func(cw *csv.Writer) error {
		for _, c := range schema.Cells(h) {
			row := []string{
				strconv.Itoa(c.Week),
				strconv.Itoa(c.Day),
				schema.Weekdays[c.Day],
				strconv.FormatUint(uint64(c.Level), 10),
				strconv.Itoa(int(c.Intensity)),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
