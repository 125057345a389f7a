package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from untrusted input
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

func (hs *HTMLStripper) StripHTML(s string) string {
	return hs.bm.Sanitize(s)
}

// HasMarkup reports whether stripping removes anything from value.
// Plain text that the policy only entity-escapes (such as "&") has no markup.
func HasMarkup(s HTMLStripperer, value string) bool {
	return html.UnescapeString(s.StripHTML(value)) != value
}
