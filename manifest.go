package uedocset

// Manifest describes the contents of a docset Info.plist.
type Manifest struct {
	BundleIdentifier  string
	BundleName        string
	DeclaredInStyle   string
	FallbackURL       string
	Family            string
	PlatformFamily    string
	DashDocset        bool
	JavaScriptEnabled bool
	IndexFilePath     string
}

// Validate returns an error if the manifest contains invalid fields.
func (m *Manifest) Validate() error {
	if m.BundleIdentifier == "" {
		return Errorf(EINVALID, "manifest bundle identifier required")
	}
	if m.BundleName == "" {
		return Errorf(EINVALID, "manifest bundle name required")
	}
	return nil
}

// ManifestWriter writes the docset manifest file.
type ManifestWriter interface {
	WriteManifest(path string, m *Manifest) error
}
