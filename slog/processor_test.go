package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uedocset/uedocset"
	"github.com/uedocset/uedocset/mock"
	ueslog "github.com/uedocset/uedocset/slog"
)

func TestLoggingProcessor_ProcessPage(t *testing.T) {
	t.Parallel()

	t.Run("logs success and passes entries through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		next := &mock.PageProcessor{
			ProcessPageFn: func(ctx context.Context, path string) ([]uedocset.Entry, error) {
				return []uedocset.Entry{{Name: "AActor", Path: path, Kind: "Class"}}, nil
			},
		}

		p := ueslog.NewLoggingProcessor(next, logger)
		entries, err := p.ProcessPage(context.Background(), "a/index.html")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "AActor", entries[0].Name)

		assert.Contains(t, buf.String(), "page processed")
		assert.Contains(t, buf.String(), "a/index.html")
	})

	t.Run("logs failures and propagates the error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.PageProcessor{
			ProcessPageFn: func(ctx context.Context, path string) ([]uedocset.Entry, error) {
				return nil, uedocset.Errorf(uedocset.EINTERNAL, "boom")
			},
		}

		p := ueslog.NewLoggingProcessor(next, logger)
		_, err := p.ProcessPage(context.Background(), "b/index.html")
		require.Error(t, err)
		assert.Equal(t, uedocset.EINTERNAL, uedocset.ErrorCode(err))
		assert.Contains(t, buf.String(), "page failed")
	})
}
