// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/huangsam/heatgrid/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteHeatmap prints a contribution heatmap using the configured output format.
func (ow *OutWriter) WriteHeatmap(h schema.Heatmap, cfg *contract.Config, duration time.Duration) error {
	return PrintHeatmapResults(h, cfg, duration)
}
