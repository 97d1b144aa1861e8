package webfetch

import (
	"regexp"
	"sort"
	"strings"
)

// defaultKeepTop is how many of the largest content blocks survive ranking.
// Large blocks are overwhelmingly article body; small ones are navigation,
// cookie banners, and footer boilerplate.
const defaultKeepTop = 20

var (
	scriptRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)

	// contentBlockRe matches the fixed allowlist of content-bearing tags in
	// one pass over the document.
	contentBlockRe = regexp.MustCompile(`(?is)<(article|main|div|p|h[1-6]|li|span)\b[^>]*>(.*?)</(?:article|main|div|p|h[1-6]|li|span)>`)

	anyTagRe = regexp.MustCompile(`(?s)<[^>]*>`)
)

// htmlEntities is the fixed decode table for entities that commonly survive
// tag stripping.
var htmlEntities = map[string]string{
	"&nbsp;":   " ",
	"&amp;":    "&",
	"&lt;":     "<",
	"&gt;":     ">",
	"&quot;":   `"`,
	"&#39;":    "'",
	"&apos;":   "'",
	"&mdash;":  "—",
	"&ndash;":  "–",
	"&lsquo;":  "‘",
	"&rsquo;":  "’",
	"&ldquo;":  "“",
	"&rdquo;":  "”",
	"&hellip;": "…",
	"&copy;":   "©",
	"&reg;":    "®",
	"&trade;":  "™",
}

// HeuristicReducer reduces HTML to text without a DOM parse: it strips
// scripts, styles, and comments, collects matches of an allowlist of
// content-bearing tags, keeps the largest blocks, then strips the remaining
// tags and decodes common entities.
type HeuristicReducer struct {
	keepTop int
}

// NewHeuristicReducer returns the default regex-based reducer.
func NewHeuristicReducer() *HeuristicReducer {
	return &HeuristicReducer{keepTop: defaultKeepTop}
}

// Reduce implements Reducer.
func (r *HeuristicReducer) Reduce(html string) string {
	html = scriptRe.ReplaceAllString(html, " ")
	html = styleRe.ReplaceAllString(html, " ")
	html = commentRe.ReplaceAllString(html, " ")

	blocks := contentBlockRe.FindAllString(html, -1)
	if len(blocks) == 0 {
		// No recognizable content blocks; fall back to the whole document.
		return decodeEntities(anyTagRe.ReplaceAllString(html, " "))
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return len(blocks[i]) > len(blocks[j])
	})
	if len(blocks) > r.keepTop {
		blocks = blocks[:r.keepTop]
	}

	joined := strings.Join(blocks, "\n")
	return decodeEntities(anyTagRe.ReplaceAllString(joined, " "))
}

func decodeEntities(text string) string {
	for entity, replacement := range htmlEntities {
		text = strings.ReplaceAll(text, entity, replacement)
	}
	return text
}
