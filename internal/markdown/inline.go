package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Inline markup cascade. The input is already HTML-escaped, so a NUL byte can
// never occur in it; NUL-delimited placeholders are therefore collision-free.
var (
	codeSpanRe   = regexp.MustCompile("`([^`]+)`")
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldItalicRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldStarRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRe  = regexp.MustCompile(`__(.+?)__`)
	strikeRe     = regexp.MustCompile(`~~(.+?)~~`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
)

// FormatInline applies the inline markup cascade to one escaped line:
// code spans are masked first so no later stage touches their interior,
// images before links so ![..](..) is never half-eaten as a link, then
// triple emphasis, bold, strikethrough and single emphasis, and finally
// the masked code spans are restored verbatim.
func FormatInline(text string) string {
	var spans []string
	text = codeSpanRe.ReplaceAllStringFunc(text, func(m string) string {
		spans = append(spans, m[1:len(m)-1])
		return "\x00C" + strconv.Itoa(len(spans)-1) + "\x00"
	})

	text = imageRe.ReplaceAllString(text, `<img src="$2" alt="$1" style="max-width:360px;border-radius:6px">`)
	text = linkRe.ReplaceAllString(text, `<a href="$2" target="_blank">$1</a>`)

	text = boldItalicRe.ReplaceAllString(text, "<strong><em>$1</em></strong>")
	text = boldStarRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = boldUnderRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = strikeRe.ReplaceAllString(text, "<del>$1</del>")
	text = emphasize(text)

	for i, code := range spans {
		placeholder := "\x00C" + strconv.Itoa(i) + "\x00"
		text = strings.ReplaceAll(text, placeholder, "<code>"+code+"</code>")
	}
	return text
}

// emphasize wraps *text* in <em>, skipping any asterisk that sits next to
// another asterisk: those belong to double markers the bold stage already
// consumed (or failed to pair), never to single emphasis.
func emphasize(text string) string {
	matches := italicRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && text[start-1] == '*' {
			continue
		}
		if end < len(text) && text[end] == '*' {
			continue
		}
		b.WriteString(text[last:start])
		fmt.Fprintf(&b, "<em>%s</em>", text[m[2]:m[3]])
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}
