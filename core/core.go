// Package core has core logic for extracting and rendering contribution heatmaps.
package core

import (
	"context"
	"time"

	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/huangsam/heatgrid/internal/outwriter"
	"github.com/huangsam/heatgrid/schema"
)

// ExecuteHeatmap fetches the configured profile, extracts its heatmap and
// prints it. It serves as the main entry point of the CLI.
func ExecuteHeatmap(ctx context.Context, cfg *contract.Config, client contract.ProfileClient) error {
	start := time.Now()
	heatmap, err := GetHeatmapResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteHeatmap(heatmap, cfg, duration)
}

// GetHeatmapResults fetches the configured profile and extracts its heatmap
// without printing anything. Fetch errors are returned unchanged.
func GetHeatmapResults(ctx context.Context, cfg *contract.Config, client contract.ProfileClient) (schema.Heatmap, error) {
	ctx, cancel := withFetchTimeout(ctx, cfg)
	defer cancel()

	doc, err := client.FetchProfile(ctx, cfg.Slug, cfg.Year)
	if err != nil {
		return schema.Heatmap{}, err
	}
	return BuildHeatmap(doc)
}
