package goquery

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	nethtml "golang.org/x/net/html"

	"github.com/uedocset/uedocset"
)

// Ensure Processor implements uedocset.PageProcessor.
var _ uedocset.PageProcessor = (*Processor)(nil)

// Processor extracts entries from documentation pages for one flavor and
// rewrites each page with Dash anchors.
type Processor struct {
	// Reader loads pages and link targets.
	Reader *Reader

	// Collectors is the ordered collector table to run against each page.
	Collectors []Collector

	// Flavor selects anchor scheme, name qualification and kind refinement.
	Flavor uedocset.Flavor

	// AddAnchors controls anchor injection. Pages that already carry Dash
	// anchors are never re-anchored regardless of this setting.
	AddAnchors bool
}

// NewProcessor returns a Processor configured for the given flavor.
func NewProcessor(flavor uedocset.Flavor) (*Processor, error) {
	p := &Processor{Reader: NewReader(), Flavor: flavor, AddAnchors: true}
	switch flavor {
	case uedocset.FlavorCPP:
		p.Collectors = CollectorsCPP
	case uedocset.FlavorBlueprint:
		p.Collectors = CollectorsBlueprint
	default:
		return nil, uedocset.Errorf(uedocset.EUNSUPPORTED, "unsupported flavor %q", flavor)
	}
	return p, nil
}

// candidate pairs an extracted entry with the element that produced it, so
// anchor injection stays aligned with its element when other candidates in
// the same listing are dropped.
type candidate struct {
	name string
	path string
	sel  *goquery.Selection
	info *uedocset.APIInfo // target page classification, nil for no-link candidates
}

// ProcessPage runs the collector table against the page at path, injects
// Dash anchors, rewrites the page on disk exactly once, and returns the
// collected entries. Candidates whose target file does not exist are
// silently dropped.
func (p *Processor) ProcessPage(ctx context.Context, path string) ([]uedocset.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := p.Reader.Read(path)
	if err != nil {
		return nil, err
	}

	localizeLinks(doc, path)

	info := Classify(doc)
	hasAnchors := doc.Find("a.dashAnchor").Length() > 0

	// Overload occurrences by local anchor name. Page scoped: the counter
	// spans all collectors and resets with the next page.
	counts := make(map[string]int)

	var entries []uedocset.Entry
	for _, collector := range p.Collectors {
		candidates, err := p.extract(collector, doc, info, path)
		if err != nil {
			return nil, err
		}

		for _, cand := range candidates {
			if !fileExists(stripFragment(cand.path)) {
				continue
			}

			kind := collector.Kind

			// The classes listing mixes classes, structs and unions; the
			// target page's declaration decides the real kind.
			if p.Flavor == uedocset.FlavorCPP && kind == uedocset.EntryKindClass && cand.info != nil {
				kind = cand.info.EntryKind
			}

			if p.AddAnchors && !hasAnchors {
				p.injectAnchor(cand.sel, cand.name, kind, counts)
			}

			entries = append(entries, uedocset.Entry{Name: cand.name, Path: cand.path, Kind: kind})
		}
	}

	if err := writeDocument(doc, path); err != nil {
		return nil, err
	}

	return entries, nil
}

// extract runs the collector's strategy over its candidate elements.
func (p *Processor) extract(c Collector, doc *goquery.Document, parent uedocset.APIInfo, pagePath string) ([]candidate, error) {
	var out []candidate

	for _, el := range c.Candidates(doc) {
		switch c.Strategy {
		case StrategyNoLink:
			name := strings.TrimSpace(el.Text())
			if name == "" {
				continue
			}
			if parent.Typed() && parent.Name != "" {
				name = parent.Name + "." + name
			}
			out = append(out, candidate{name: name, path: pagePath + "#" + name, sel: el})

		default:
			href, ok := el.Attr("href")
			if !ok || href == "" {
				continue
			}

			target := joinPath(pagePath, href)
			if !fileExists(stripFragment(target)) {
				continue
			}

			targetDoc, err := p.Reader.Read(stripFragment(target))
			if err != nil {
				return nil, err
			}
			targetInfo := Classify(targetDoc)

			// The listing may show an abbreviated name; the target page's
			// declared name is canonical.
			name := targetInfo.Name
			if name == "" {
				name = strings.TrimSpace(el.Text())
			}
			if name == "" {
				continue
			}

			if p.Flavor == uedocset.FlavorBlueprint && parent.Name != "" {
				name = parent.Name + "." + name
			}

			out = append(out, candidate{name: name, path: target, sel: el, info: &targetInfo})
		}
	}

	return out, nil
}

// injectAnchor inserts a Dash anchor element before the candidate. The
// anchor name encodes scheme/kind/local-name, where the local name is the
// last ::-delimited segment for C++ and the full qualified name for
// Blueprint. Repeated local names within a page get an " (Overload N)"
// suffix so the table of contents stays unambiguous.
func (p *Processor) injectAnchor(sel *goquery.Selection, name, kind string, counts map[string]int) {
	local := name
	if p.Flavor == uedocset.FlavorCPP {
		parts := strings.Split(name, "::")
		local = parts[len(parts)-1]
	}

	n := counts[local]
	counts[local]++
	if n > 0 {
		local = fmt.Sprintf("%s (Overload %d)", local, n)
	}

	anchor := fmt.Sprintf(`<a class="dashAnchor" name="//apple_ref/%s/%s/%s"></a>`,
		p.Flavor.AnchorScheme(), kind, html.EscapeString(local))
	sel.BeforeHtml(anchor)
}

// localizeLinks rewrites directory-style links to point at the directory's
// index.html, so later resolution always lands on a real file. Links whose
// target directory has no index.html are left unchanged.
func localizeLinks(doc *goquery.Document, pagePath string) {
	dir := filepath.Dir(pagePath)

	for _, attr := range []string{"href", "src"} {
		doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			link, _ := sel.Attr(attr)
			if localized, ok := localizeLink(dir, link); ok {
				sel.SetAttr(attr, localized)
			}
		})
	}
}

// localizeLink returns link/index.html when the page-relative directory
// contains one.
func localizeLink(dir, link string) (string, bool) {
	if link == "" || strings.HasPrefix(link, "#") || strings.Contains(link, "://") {
		return "", false
	}
	index := filepath.Join(dir, filepath.FromSlash(link), "index.html")
	if !fileExists(index) {
		return "", false
	}
	return link + "/index.html", true
}

// joinPath resolves a link target against the page location. A trailing
// index.html on the page path is stripped first: links on an index page are
// relative to the page's directory.
func joinPath(pagePath, href string) string {
	parent := pagePath
	if strings.HasSuffix(parent, "index.html") {
		parent = strings.TrimSuffix(parent, "index.html")
		parent = strings.TrimSuffix(parent, "/")
		parent = strings.TrimSuffix(parent, `\`)
	}
	return parent + "/" + href
}

// stripFragment removes an in-page fragment from a path before filesystem
// checks.
func stripFragment(path string) string {
	if i := strings.IndexByte(path, '#'); i >= 0 {
		return path[:i]
	}
	return path
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// writeDocument serializes the mutated document back to its original path.
func writeDocument(doc *goquery.Document, path string) error {
	var buf bytes.Buffer
	for _, node := range doc.Nodes {
		if err := nethtml.Render(&buf, node); err != nil {
			return fmt.Errorf("failed to serialize %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to rewrite %q: %w", path, err)
	}
	return nil
}
