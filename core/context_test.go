package core

import (
	"context"
	"testing"
	"time"

	"github.com/huangsam/heatgrid/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestWithFetchTimeout(t *testing.T) {
	t.Run("positive timeout sets a deadline", func(t *testing.T) {
		ctx, cancel := withFetchTimeout(context.Background(), &contract.Config{Timeout: time.Minute})
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})

	t.Run("zero timeout leaves no deadline", func(t *testing.T) {
		ctx, cancel := withFetchTimeout(context.Background(), &contract.Config{})
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})

	t.Run("cancel releases the context", func(t *testing.T) {
		ctx, cancel := withFetchTimeout(context.Background(), &contract.Config{Timeout: time.Minute})
		cancel()

		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}
