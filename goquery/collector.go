package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/uedocset/uedocset"
)

// Strategy selects how a collector turns candidate elements into entries.
type Strategy int

// Extraction strategies.
const (
	// StrategyDefault follows each candidate's href, resolves it against the
	// page directory and reads the target page for its canonical name.
	StrategyDefault Strategy = iota

	// StrategyNoLink synthesizes an in-page anchor target from the
	// candidate's text. Used for members documented inline with no page of
	// their own.
	StrategyNoLink
)

// AllCells selects candidates from every name cell instead of a single
// position within each row.
const AllCells = -1

// Collector pairs a structural page query with an extraction strategy.
// Collector tables are static and ordered: table order fixes the order
// entries are created in within a page, and with it the overload numbering
// of injected anchors.
type Collector struct {
	// Kind is the Dash entry kind for collected symbols.
	Kind string

	// Region is a CSS selector for the content region holding the listing.
	Region string

	// Cell is the 0-based index of the name cell within each table row, or
	// AllCells.
	Cell int

	// Strategy selects the extraction behavior.
	Strategy Strategy
}

// CollectorsCPP is the collector table for the C++ API documentation.
var CollectorsCPP = []Collector{
	{Kind: "Module", Region: "div.modules-list", Cell: AllCells, Strategy: StrategyDefault},
	{Kind: uedocset.EntryKindClass, Region: "div#classes", Cell: 0, Strategy: StrategyDefault},
	{Kind: "Constructor", Region: "div#constructor", Cell: 0, Strategy: StrategyDefault},
	{Kind: "Destructor", Region: "div#destructor", Cell: 0, Strategy: StrategyDefault},
	{Kind: "Type", Region: "div#typedefs", Cell: 0, Strategy: StrategyDefault},
	{Kind: "Enum", Region: "div#enums", Cell: 0, Strategy: StrategyDefault},
	{Kind: "Variable", Region: "div#variables", Cell: 1, Strategy: StrategyDefault},
	{Kind: "Variable", Region: "div#deprecatedvariables", Cell: 1, Strategy: StrategyDefault},
	{Kind: "Variable", Region: "div#variables", Cell: 1, Strategy: StrategyNoLink},
	{Kind: "Variable", Region: "div#deprecatedvariables", Cell: 1, Strategy: StrategyNoLink},
	{Kind: "Constant", Region: "div#constants", Cell: 0, Strategy: StrategyDefault},
	{Kind: "Function", Region: `div[id^="functions_"]`, Cell: 1, Strategy: StrategyDefault},
	{Kind: "Function", Region: `div[id^="deprecatedfunctions"]`, Cell: 1, Strategy: StrategyDefault},
}

// CollectorsBlueprint is the collector table for the Blueprint API
// documentation. Blueprint member listings are always scoped to the
// containing object, so extraction qualifies names as parent.member.
var CollectorsBlueprint = []Collector{
	{Kind: "Function", Region: `h2#actions ~ div.member-list`, Cell: AllCells, Strategy: StrategyDefault},
	{Kind: "Category", Region: `h2#categories ~ div.member-list`, Cell: AllCells, Strategy: StrategyDefault},
}

// candidateSelector returns the selector for candidate elements within a
// name cell. Previously injected Dash anchors are never candidates.
func (c Collector) candidateSelector() string {
	if c.Strategy == StrategyNoLink {
		return "p"
	}
	return "a:not(.dashAnchor)"
}

// Candidates returns the elements the collector selects from doc, in
// document order.
func (c Collector) Candidates(doc *goquery.Document) []*goquery.Selection {
	selector := c.candidateSelector()
	var out []*goquery.Selection

	collect := func(cell *goquery.Selection) {
		cell.ChildrenFiltered(selector).Each(func(_ int, cand *goquery.Selection) {
			out = append(out, cand)
		})
	}

	doc.Find(c.Region).Each(func(_ int, region *goquery.Selection) {
		if c.Cell == AllCells {
			region.Find("td.name-cell").Each(func(_ int, cell *goquery.Selection) {
				collect(cell)
			})
			return
		}

		region.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td.name-cell")
			if cells.Length() > c.Cell {
				collect(cells.Eq(c.Cell))
			}
		})
	})

	return out
}
