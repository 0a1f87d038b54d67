// Package goquery implements parsing, classification and entry collection
// for Unreal Engine documentation pages.
package goquery

import (
	"bytes"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/uedocset/uedocset"
)

// Reader retry defaults. One attempt is usually enough; the budget absorbs
// reads that race with a sibling worker rewriting the same subtree.
const (
	DefaultReadAttempts = 10
	DefaultReadDelay    = 100 * time.Millisecond
)

// Reader loads HTML files into navigable documents. Reads are retried with a
// fixed delay before failing: workers rewrite pages in place, and a reader
// can observe a file mid-write.
type Reader struct {
	// Attempts is the total read budget. Zero means DefaultReadAttempts.
	Attempts int

	// Delay is the pause between attempts. Zero means DefaultReadDelay.
	Delay time.Duration

	// Sleep replaces the retry pause, for tests. Nil means time.Sleep.
	Sleep func(time.Duration)
}

// NewReader returns a Reader with the default retry policy.
func NewReader() *Reader {
	return &Reader{Attempts: DefaultReadAttempts, Delay: DefaultReadDelay}
}

// Read parses the HTML file at path. Transient failures are retried; an
// exhausted budget returns an EINTERNAL error. The failure is fatal for this
// file only, never for the surrounding run.
func (r *Reader) Read(path string) (*goquery.Document, error) {
	attempts := r.Attempts
	if attempts <= 0 {
		attempts = DefaultReadAttempts
	}
	delay := r.Delay
	if delay <= 0 {
		delay = DefaultReadDelay
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			sleep(delay)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
		if err != nil {
			lastErr = err
			continue
		}

		return doc, nil
	}

	return nil, uedocset.Errorf(uedocset.EINTERNAL, "could not parse %q after %d attempts: %v", path, attempts, lastErr)
}
