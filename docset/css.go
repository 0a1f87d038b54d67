package docset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// cssMarker guards against appending the overrides again on reprocessing.
const cssMarker = "/* uedocset viewer overrides */"

// viewerCSS hides the site chrome so pages render cleanly inside the
// documentation viewer.
const viewerCSS = cssMarker + `
#maincol {
    height: unset !important;
}

#page_head, #navWrapper, #splitter, #footer {
    display: none !important;
}

#contentContainer {
    margin-left: 0 !important;
}

.toc {
    display: none !important;
}
`

// AppendViewerCSS appends the viewer style overrides to the documentation's
// shared stylesheet. The append is idempotent.
func AppendViewerCSS(apiDir string) error {
	cssPath := filepath.Join(apiDir, "..", "..", "Include", "CSS", "udn_public.css")

	existing, err := os.ReadFile(cssPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read stylesheet: %w", err)
	}
	if strings.Contains(string(existing), cssMarker) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cssPath), 0o755); err != nil {
		return fmt.Errorf("failed to create stylesheet directory: %w", err)
	}

	f, err := os.OpenFile(cssPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open stylesheet: %w", err)
	}

	if _, err := f.WriteString("\n" + viewerCSS); err != nil {
		f.Close()
		return fmt.Errorf("failed to append viewer overrides: %w", err)
	}
	return f.Close()
}
