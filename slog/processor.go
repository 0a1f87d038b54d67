// Package slog provides logging decorators for docset services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/uedocset/uedocset"
)

// Ensure LoggingProcessor implements uedocset.PageProcessor.
var _ uedocset.PageProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a PageProcessor with logging.
type LoggingProcessor struct {
	next   uedocset.PageProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next uedocset.PageProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// ProcessPage delegates to the wrapped processor and logs the outcome.
func (p *LoggingProcessor) ProcessPage(ctx context.Context, path string) ([]uedocset.Entry, error) {
	start := time.Now()
	entries, err := p.next.ProcessPage(ctx, path)
	duration := time.Since(start)

	if err != nil {
		p.logger.Error("page failed",
			"path", path,
			"duration", duration,
			"error", err,
		)
		return nil, err
	}

	p.logger.Debug("page processed",
		"path", path,
		"duration", duration,
		"entries", len(entries),
	)
	return entries, nil
}
