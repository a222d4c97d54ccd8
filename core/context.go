package core

import (
	"context"

	"github.com/huangsam/heatgrid/internal/contract"
)

// withFetchTimeout bounds the profile fetch by the configured timeout.
// A zero timeout leaves the context untouched.
func withFetchTimeout(ctx context.Context, cfg *contract.Config) (context.Context, context.CancelFunc) {
	if cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.Timeout)
}
