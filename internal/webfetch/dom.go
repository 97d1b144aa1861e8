package webfetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DOMReducer reduces HTML to text with a real HTML parse. It removes noise
// elements, then takes the text of the first matching content selector,
// falling back to the document body. It satisfies the same Reducer contract
// as the default heuristic, so callers can swap it in without touching any
// other component.
type DOMReducer struct {
	selectors []string
	fallback  *HeuristicReducer
}

// NewDOMReducer returns a goquery-based reducer with standard content
// selectors.
func NewDOMReducer() *DOMReducer {
	return &DOMReducer{
		selectors: []string{"main", "article", ".content", "#content", ".main-content", "#main-content"},
		fallback:  NewHeuristicReducer(),
	}
}

// Reduce implements Reducer. HTML the parser rejects goes through the regex
// heuristic instead of being dropped.
func (r *DOMReducer) Reduce(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return r.fallback.Reduce(html)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .ad, .ads, .cookie-banner").Remove()

	for _, selector := range r.selectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			return selection.First().Text()
		}
	}

	return doc.Find("body").Text()
}
