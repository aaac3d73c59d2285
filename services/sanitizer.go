package services

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPattern = regexp.MustCompile(`<[a-zA-Z!/?]`)
	embedSource   = regexp.MustCompile(`^https://(www\.)?(youtube\.com|youtube-nocookie\.com|player\.vimeo\.com)/`)
)

// Sanitizer strips unsafe markup from blog content written in the editor.
// Embedded players and inline text styling survive; scripts and event
// handlers do not.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowRelativeURLs(false)
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	p.AllowElements("iframe")
	p.AllowAttrs("src").Matching(embedSource).OnElements("iframe")
	p.AllowAttrs("width", "height", "frameborder").Matching(bluemonday.Integer).OnElements("iframe")
	p.AllowAttrs("allowfullscreen", "title").OnElements("iframe")
	p.AllowStyles("color", "background-color", "text-align", "font-weight", "font-style", "text-decoration").Globally()
	return &Sanitizer{policy: p}
}

// Sanitize returns text without tags unchanged, so plain prose keeps its
// ampersands and angle brackets.
func (s *Sanitizer) Sanitize(html string) string {
	if !markupPattern.MatchString(html) {
		return html
	}
	return s.policy.Sanitize(html)
}
