package markdown

import (
	"html"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatInline_CodeSpanMasksMarkup(t *testing.T) {
	got := FormatInline("use `**not bold**` here")
	require.Equal(t, "use <code>**not bold**</code> here", got)
}

func TestFormatInline_CodeSpanKeepsEscapedContent(t *testing.T) {
	// Input arrives escaped; the restored span must stay escaped verbatim.
	got := FormatInline(html.EscapeString("run `a < b`"))
	require.Equal(t, "run <code>a &lt; b</code>", got)
}

func TestFormatInline_ImageBeforeLink(t *testing.T) {
	got := FormatInline("![alt text](https://example.com/i.png)")
	require.Equal(t, `<img src="https://example.com/i.png" alt="alt text" style="max-width:360px;border-radius:6px">`, got)
}

func TestFormatInline_Link(t *testing.T) {
	got := FormatInline("see [docs](https://example.com)")
	require.Equal(t, `see <a href="https://example.com" target="_blank">docs</a>`, got)
}

func TestFormatInline_TripleEmphasis(t *testing.T) {
	require.Equal(t, "<strong><em>wow</em></strong>", FormatInline("***wow***"))
}

func TestFormatInline_BothBoldForms(t *testing.T) {
	require.Equal(t, "<strong>a</strong> and <strong>b</strong>", FormatInline("**a** and __b__"))
}

func TestFormatInline_Strikethrough(t *testing.T) {
	require.Equal(t, "was <del>wrong</del>", FormatInline("was ~~wrong~~"))
}

func TestFormatInline_ItalicInsideBold(t *testing.T) {
	// Bold wraps the full span; the inner markers become italic without
	// leaking any marker outside the strong element.
	require.Equal(t, "<strong>a <em>b</em> c</strong>", FormatInline("**a *b* c**"))
}

func TestFormatInline_SingleEmphasis(t *testing.T) {
	require.Equal(t, "an <em>important</em> word", FormatInline("an *important* word"))
}

func TestFormatInline_NoMarkupPassesThrough(t *testing.T) {
	require.Equal(t, "nothing fancy", FormatInline("nothing fancy"))
}

func TestFormatInline_MultipleCodeSpans(t *testing.T) {
	got := FormatInline("`one` and `two`")
	require.Equal(t, "<code>one</code> and <code>two</code>", got)
}

func TestFormatInline_CascadeOrder(t *testing.T) {
	got := FormatInline("`code` ![i](u) [l](u) ***b*** **s** ~~d~~ *e*")
	require.Equal(t,
		`<code>code</code> <img src="u" alt="i" style="max-width:360px;border-radius:6px"> `+
			`<a href="u" target="_blank">l</a> <strong><em>b</em></strong> <strong>s</strong> <del>d</del> <em>e</em>`,
		got)
}
