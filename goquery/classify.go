package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/uedocset/uedocset"
)

// Page regions the classifier reads.
const (
	titleSelector  = "h1#H1TitleId"
	syntaxSelector = "div.simplecode_api p"
)

// Classify extracts the API information a page declares: the title heading
// as the symbol name, and the first declaration keyword whose
// "<kind> <name>" form appears in the page's syntax blocks. Pages without a
// matching declaration (or without a title) classify as the generic object
// kind.
func Classify(doc *goquery.Document) uedocset.APIInfo {
	name, syntax := apiNameAndSyntax(doc)

	if name != "" {
		for _, kind := range uedocset.SourceKinds {
			// Literal match: symbol names like "operator*" contain regex
			// metacharacters.
			if strings.Contains(syntax, kind+" "+name) {
				return uedocset.APIInfo{
					Name:       name,
					SourceKind: kind,
					EntryKind:  uedocset.EntryKindForSourceKind(kind),
				}
			}
		}
	}

	return uedocset.APIInfo{
		Name:       name,
		SourceKind: uedocset.SourceKindObject,
		EntryKind:  uedocset.EntryKindObject,
	}
}

// apiNameAndSyntax returns the page title and the concatenated text of its
// syntax blocks.
func apiNameAndSyntax(doc *goquery.Document) (string, string) {
	name := strings.TrimSpace(doc.Find(titleSelector).First().Text())

	var blocks []string
	doc.Find(syntaxSelector).Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, sel.Text())
	})

	return name, strings.Join(blocks, "\n")
}
