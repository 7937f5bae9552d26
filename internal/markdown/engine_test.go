package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_PlainTextStaysPlain(t *testing.T) {
	require.Equal(t, []string{"<p>just some words</p>"}, Render("just some words"))
}

func TestRender_PlainTextEscaped(t *testing.T) {
	blocks := Render("a < b & c")
	require.Equal(t, []string{"<p>a &lt; b &amp; c</p>"}, blocks)
}

func TestRender_HeadingLevelOffset(t *testing.T) {
	require.Equal(t, []string{"<h2>Title</h2>"}, Render("# Title"))
	require.Equal(t, []string{"<h4>Sub</h4>"}, Render("### Sub"))
	// Source level 6 clamps at h6 instead of producing h7.
	require.Equal(t, []string{"<h6>Deep</h6>"}, Render("###### Deep"))
}

func TestRender_HeadingNeedsColumnZero(t *testing.T) {
	// An indented heading is a paragraph, as in the source renderer.
	require.Equal(t, []string{"<p>  # nope</p>"}, Render("  # nope"))
}

func TestRender_HorizontalRule(t *testing.T) {
	require.Equal(t, []string{"<hr>"}, Render("---"))
	require.Equal(t, []string{"<hr>"}, Render("* * *"))
}

func TestRender_BlankLinesEmitNothing(t *testing.T) {
	require.Empty(t, Render("\n   \n\t\n"))
}

func TestRender_BlockquotesStaySeparate(t *testing.T) {
	blocks := Render("> one\n> two\n>")
	require.Equal(t, []string{
		"<blockquote>one</blockquote>",
		"<blockquote>two</blockquote>",
		"<blockquote><br></blockquote>",
	}, blocks)
}

func TestRender_ListItems(t *testing.T) {
	blocks := Render("- top\n  * nested look\n3. third\n  2) deep")
	require.Equal(t, []string{
		`<div class="md-li" style="margin-left:0px">• top</div>`,
		`<div class="md-li" style="margin-left:24px">• nested look</div>`,
		`<div class="md-li" style="margin-left:0px">3. third</div>`,
		`<div class="md-li" style="margin-left:24px">2. deep</div>`,
	}, blocks)
}

func TestRender_CodeFence(t *testing.T) {
	blocks := Render("```go\nfunc main() {}\n\t// tab kept\n```")
	require.Equal(t, []string{
		"<pre><code class=\"lang-go\">func main() {}\n\t// tab kept</code></pre>",
	}, blocks)
}

func TestRender_FenceSuppressesEveryOtherRule(t *testing.T) {
	blocks := Render("```\n# not a heading\n|not|a|table|\n> not a quote\n```")
	require.Len(t, blocks, 1)
	require.Equal(t, "<pre><code class=\"lang-\"># not a heading\n|not|a|table|\n&gt; not a quote</code></pre>", blocks[0])
}

func TestRender_UnterminatedFenceStillFlushes(t *testing.T) {
	blocks := Render("before\n```py\nprint(1)\nprint(2)")
	require.Equal(t, []string{
		"<p>before</p>",
		"<pre><code class=\"lang-py\">print(1)\nprint(2)</code></pre>",
	}, blocks)
}

func TestRender_UnterminatedFenceWithNoLines(t *testing.T) {
	require.Equal(t, []string{`<pre><code class="lang-sh"></code></pre>`}, Render("```sh"))
}

func TestRender_TableWithSeparator(t *testing.T) {
	blocks := Render("|a|b|\n|-|-|\n|1|2|")
	require.Equal(t, []string{
		`<div class="md-table-wrap"><table><tr><th>a</th><th>b</th></tr><tr><td>1</td><td>2</td></tr></table></div>`,
	}, blocks)
}

func TestRender_TableFlushedByPlainLine(t *testing.T) {
	blocks := Render("|h|\n|-|\n|x|\nafter")
	require.Equal(t, []string{
		`<div class="md-table-wrap"><table><tr><th>h</th></tr><tr><td>x</td></tr></table></div>`,
		"<p>after</p>",
	}, blocks)
}

func TestRender_TableFlushedByFence(t *testing.T) {
	blocks := Render("|h|\n|-|\n```\ncode\n```")
	require.Equal(t, []string{
		`<div class="md-table-wrap"><table><tr><th>h</th></tr></table></div>`,
		`<pre><code class="lang-">code</code></pre>`,
	}, blocks)
}

func TestRender_TableCellsEscapedAndFormatted(t *testing.T) {
	blocks := Render("|**bold** & more|\n|-|")
	require.Equal(t, []string{
		`<div class="md-table-wrap"><table><tr><th><strong>bold</strong> &amp; more</th></tr></table></div>`,
	}, blocks)
}

func TestRender_MixedDocument(t *testing.T) {
	text := "# Notes\n\nSome *emphasis* here.\n\n- a\n- b\n\n```js\nlet x = 1;\n```\n\n> quoted"
	require.Equal(t, []string{
		"<h2>Notes</h2>",
		"<p>Some <em>emphasis</em> here.</p>",
		`<div class="md-li" style="margin-left:0px">• a</div>`,
		`<div class="md-li" style="margin-left:0px">• b</div>`,
		"<pre><code class=\"lang-js\">let x = 1;</code></pre>",
		"<blockquote>quoted</blockquote>",
	}, Render(text))
}

func TestRenderHTML_JoinsBlocks(t *testing.T) {
	require.Equal(t, "<h2>A</h2>\n<p>b</p>", RenderHTML("# A\nb"))
}
