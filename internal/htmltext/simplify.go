// Package htmltext reduces HTML message bodies to readable plain text.
// It is a deliberate approximation: scripting and styling disappear,
// block boundaries become newlines, everything else is stripped. The
// goal is a legible terminal rendering, not fidelity.
package htmltext

import (
	"html"
	"regexp"
	"strings"
)

// RE2 has no backreferences, so script and style blocks need separate
// patterns instead of a shared <(script|style)>...</\1>.
var (
	scriptRe     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	brRe         = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseRe = regexp.MustCompile(`(?i)</(p|div|h[0-9]|li|tr|table|ul|ol)>`)
	tagRe        = regexp.MustCompile(`(?s)<.*?>`)
	trailingWsRe = regexp.MustCompile(`[ \t]+\n`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// Simplify joins the HTML fragments of a message body with blank lines
// and reduces the result to plain text.
//
// The passes run in a fixed order and later passes assume the earlier
// ones already ran: entity decode, script/style removal, <br> and
// block-closing tags to newlines, generic tag strip, then whitespace
// collapse. Reordering them changes the output (whitespace collapse
// before tag stripping would miss the gaps the tags leave behind).
//
// Simplify never fails. Markup the tag pattern cannot match is left in
// place rather than corrupting the surrounding text, and an empty or
// nil fragment list yields the empty string.
func Simplify(fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}

	text := strings.Join(fragments, "\n\n")
	text = html.UnescapeString(text)
	text = scriptRe.ReplaceAllString(text, "")
	text = styleRe.ReplaceAllString(text, "")
	text = brRe.ReplaceAllString(text, "\n")
	text = blockCloseRe.ReplaceAllString(text, "\n")
	text = tagRe.ReplaceAllString(text, "")
	text = trailingWsRe.ReplaceAllString(text, "\n")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
