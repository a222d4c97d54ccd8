// Package contract provides interfaces and shared utilities for heatgrid's internal architecture.
package contract

import (
	"context"
	"errors"

	"github.com/huangsam/heatgrid/internal/dom"
)

// Fetch failures surfaced by a ProfileClient. The heatmap core never raises
// these itself; it passes them through unchanged.
var (
	ErrProfileNotFound = errors.New("unable to find GitHub profile")
	ErrRequestFailure  = errors.New("unable to reach GitHub services")
)

// ProfileClient retrieves and parses GitHub profile pages.
// This allows the heatmap logic to be tested without network access.
type ProfileClient interface {
	// FetchProfile returns the parsed profile page of slug. A non-empty year
	// selects that calendar year's contributions.
	FetchProfile(ctx context.Context, slug string, year string) (dom.Node, error)
}
