// Package fs provides filesystem collaborators for docset generation:
// archive extraction and the docset directory layout.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout describes the on-disk structure of a generated docset.
type Layout struct {
	Root      string // <output>/<Name>.docset
	Contents  string
	Resources string
	Documents string
}

// NewLayout returns the layout for a docset named docsetName under
// outputDir.
func NewLayout(outputDir, docsetName string) Layout {
	root := filepath.Join(outputDir, docsetName)
	contents := filepath.Join(root, "Contents")
	resources := filepath.Join(contents, "Resources")
	return Layout{
		Root:      root,
		Contents:  contents,
		Resources: resources,
		Documents: filepath.Join(resources, "Documents"),
	}
}

// Create makes the layout directories.
func (l Layout) Create() error {
	if err := os.MkdirAll(l.Documents, 0o755); err != nil {
		return fmt.Errorf("failed to create docset layout: %w", err)
	}
	return nil
}

// ManifestPath returns the Info.plist location.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.Contents, "Info.plist")
}

// IndexPath returns the search index database location.
func (l Layout) IndexPath() string {
	return filepath.Join(l.Resources, "docSet.dsidx")
}
