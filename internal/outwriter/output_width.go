package outwriter

import (
	"os"

	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/huangsam/heatgrid/schema"
	"golang.org/x/term"
)

// cellWidth is the number of terminal columns one heatmap cell occupies.
var cellWidth = len([]rune(EmptyCell))

// GetTerminalWidth returns the width the grid may occupy: the configured
// override, else the detected terminal width, else contract.DefaultWidth.
func GetTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return contract.DefaultWidth
	}
	return detectedWidth
}

// FitHeatmap keeps the newest weeks that fit in width columns. At least one
// week is always kept so the result is never empty.
func FitHeatmap(h schema.Heatmap, width int) schema.Heatmap {
	maxWeeks := max(width/cellWidth, 1)
	if len(h.Weeks) <= maxWeeks {
		return h
	}
	return schema.Heatmap{Weeks: h.Weeks[len(h.Weeks)-maxWeeks:]}
}
