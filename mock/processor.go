// Package mock provides mock implementations of service interfaces for
// testing.
package mock

import (
	"context"

	"github.com/uedocset/uedocset"
)

// Ensure PageProcessor implements uedocset.PageProcessor.
var _ uedocset.PageProcessor = (*PageProcessor)(nil)

// PageProcessor is a mock implementation of uedocset.PageProcessor.
type PageProcessor struct {
	ProcessPageFn func(ctx context.Context, path string) ([]uedocset.Entry, error)
}

// ProcessPage calls the mocked function.
func (m *PageProcessor) ProcessPage(ctx context.Context, path string) ([]uedocset.Entry, error) {
	return m.ProcessPageFn(ctx, path)
}
