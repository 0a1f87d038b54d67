package mock

import "github.com/uedocset/uedocset"

// Ensure ManifestWriter implements uedocset.ManifestWriter.
var _ uedocset.ManifestWriter = (*ManifestWriter)(nil)

// ManifestWriter is a mock implementation of uedocset.ManifestWriter.
type ManifestWriter struct {
	WriteManifestFn func(path string, m *uedocset.Manifest) error
}

// WriteManifest calls the mocked function.
func (m *ManifestWriter) WriteManifest(path string, manifest *uedocset.Manifest) error {
	return m.WriteManifestFn(path, manifest)
}
