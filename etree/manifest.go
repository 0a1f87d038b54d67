// Package etree writes the docset property list manifest.
package etree

import (
	"bytes"
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/uedocset/uedocset"
)

// plistDoctype is the Apple property list document type declaration.
const plistDoctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// Ensure ManifestWriter implements uedocset.ManifestWriter.
var _ uedocset.ManifestWriter = (*ManifestWriter)(nil)

// ManifestWriter writes Info.plist files.
type ManifestWriter struct{}

// NewManifestWriter creates a new ManifestWriter.
func NewManifestWriter() *ManifestWriter {
	return &ManifestWriter{}
}

// WriteManifest writes the manifest to path as an indented property list.
func (w *ManifestWriter) WriteManifest(path string, m *uedocset.Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(plistDoctype)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addString := func(key, value string) {
		dict.CreateElement("key").SetText(key)
		dict.CreateElement("string").SetText(value)
	}
	addBool := func(key string, value bool) {
		dict.CreateElement("key").SetText(key)
		if value {
			dict.CreateElement("true")
		} else {
			dict.CreateElement("false")
		}
	}

	addString("CFBundleIdentifier", m.BundleIdentifier)
	addString("CFBundleName", m.BundleName)
	addString("DashDocSetDeclaredInStyle", m.DeclaredInStyle)
	addString("DashDocSetFallbackURL", m.FallbackURL)
	addString("DashDocSetFamily", m.Family)
	addString("DocSetPlatformFamily", m.PlatformFamily)
	addBool("isDashDocset", m.DashDocset)
	addBool("isJavaScriptEnabled", m.JavaScriptEnabled)
	if m.IndexFilePath != "" {
		addString("dashIndexFilePath", m.IndexFilePath)
	}

	doc.IndentTabs()

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
