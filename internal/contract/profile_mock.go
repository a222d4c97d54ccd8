package contract

import (
	"context"

	"github.com/huangsam/heatgrid/internal/dom"
	"github.com/stretchr/testify/mock"
)

// MockProfileClient is a mock implementation of ProfileClient for testing.
type MockProfileClient struct {
	mock.Mock
}

var _ ProfileClient = &MockProfileClient{} // Compile-time check

// FetchProfile implements the ProfileClient interface.
func (m *MockProfileClient) FetchProfile(ctx context.Context, slug string, year string) (dom.Node, error) {
	ret := m.Called(ctx, slug, year)
	doc, _ := ret.Get(0).(dom.Node)
	return doc, ret.Error(1)
}
