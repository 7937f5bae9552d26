// Package markdown renders freeform chat text to HTML block fragments.
//
// The block layer is a line-driven state machine: at most one of a code fence
// or a table can be open at a time, and either is flushed to a finished block
// before the other (or ordinary flow) takes over. Tables and lists are
// deliberately simplified and non-nested.
package markdown

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/qmuntal/stateless"
)

// Block states and the triggers that move between them.
type blockState stateless.State

var (
	stateNormal blockState = "Normal"
	stateFence  blockState = "InFence"
	stateTable  blockState = "InTable"
)

type blockTrigger stateless.Trigger

var (
	triggerFenceOpen  blockTrigger = "FenceOpen"
	triggerFenceClose blockTrigger = "FenceClose"
	triggerTableRow   blockTrigger = "TableRow"
	triggerTableDone  blockTrigger = "TableDone"
)

// renderer accumulates output blocks plus the open fence/table buffers. One
// renderer serves one Render call; nothing is shared across calls.
type renderer struct {
	fsm *stateless.StateMachine
	out []string

	fenceLang  string
	fenceLines []string
	tableRows  []string
}

func newRenderer() *renderer {
	r := &renderer{}
	fsm := stateless.NewStateMachine(stateNormal)

	fsm.Configure(stateNormal).
		Permit(triggerFenceOpen, stateFence).
		Permit(triggerTableRow, stateTable)

	// Fence content is captured verbatim; the block is emitted when the
	// closing delimiter (or end of input) forces the exit.
	fsm.Configure(stateFence).
		OnExit(func(_ context.Context, _ ...any) error {
			r.emitCodeBlock()
			return nil
		}).
		Permit(triggerFenceClose, stateNormal)

	// A table flushes whenever any non-table line shows up, including a
	// fence opener: the two buffered constructs are mutually exclusive.
	fsm.Configure(stateTable).
		OnExit(func(_ context.Context, _ ...any) error {
			r.flushTable()
			return nil
		}).
		Permit(triggerTableDone, stateNormal).
		Permit(triggerFenceOpen, stateFence)

	r.fsm = fsm
	return r
}

// Render converts a text body into an ordered sequence of HTML block
// fragments. Unrecognized syntax degrades to escaped paragraphs; there is no
// failure mode for arbitrary input.
func Render(text string) []string {
	r := newRenderer()
	for _, line := range strings.Split(text, "\n") {
		r.feed(line)
	}
	r.finish()
	return r.out
}

// RenderHTML joins the rendered block fragments into one HTML snippet.
func RenderHTML(text string) string {
	return strings.Join(Render(text), "\n")
}

var (
	ruleRe    = regexp.MustCompile(`^(\s*[-*_]\s*){3,}$`)
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	ulRe      = regexp.MustCompile(`^(\s*)([-*+])\s+(.+)$`)
	olRe      = regexp.MustCompile(`^(\s*)(\d+)[.)]\s+(.+)$`)
)

// feed consumes one line. Transition priority, first match wins: fence
// delimiter, fence content, table row, table flush, horizontal rule, heading,
// blank, blockquote, unordered list, ordered list, paragraph.
func (r *renderer) feed(line string) {
	stripped := strings.TrimSpace(line)
	state := blockState(r.fsm.MustState())

	if strings.HasPrefix(stripped, "```") {
		if state == stateFence {
			r.fire(triggerFenceClose)
			return
		}
		r.fenceLang = strings.TrimSpace(stripped[3:])
		r.fire(triggerFenceOpen)
		return
	}

	if state == stateFence {
		r.fenceLines = append(r.fenceLines, line)
		return
	}

	if strings.HasPrefix(stripped, "|") && strings.Contains(stripped, "|") {
		if state != stateTable {
			r.fire(triggerTableRow)
		}
		r.tableRows = append(r.tableRows, stripped)
		return
	}
	if state == stateTable {
		r.fire(triggerTableDone)
	}

	if ruleRe.MatchString(stripped) {
		r.out = append(r.out, "<hr>")
		return
	}

	if m := headingRe.FindStringSubmatch(line); m != nil {
		// Source level 1 is reserved for the page-level conversation
		// title, so rendered headings start one level down.
		level := min(len(m[1])+1, 6)
		content := FormatInline(html.EscapeString(m[2]))
		r.out = append(r.out, fmt.Sprintf("<h%d>%s</h%d>", level, content, level))
		return
	}

	if stripped == "" {
		return
	}

	// Consecutive quote lines stay separate elements on purpose.
	if rest, ok := strings.CutPrefix(stripped, "> "); ok {
		r.out = append(r.out, "<blockquote>"+FormatInline(html.EscapeString(rest))+"</blockquote>")
		return
	}
	if stripped == ">" {
		r.out = append(r.out, "<blockquote><br></blockquote>")
		return
	}

	if m := ulRe.FindStringSubmatch(line); m != nil {
		r.emitListItem(len(m[1]), "•", m[3])
		return
	}
	if m := olRe.FindStringSubmatch(line); m != nil {
		r.emitListItem(len(m[1]), m[2]+".", m[3])
		return
	}

	r.out = append(r.out, "<p>"+FormatInline(html.EscapeString(line))+"</p>")
}

// finish flushes whatever is still open at end of input. An unterminated
// fence keeps its accumulated lines (even none) instead of being dropped.
func (r *renderer) finish() {
	switch blockState(r.fsm.MustState()) {
	case stateFence:
		r.fire(triggerFenceClose)
	case stateTable:
		r.fire(triggerTableDone)
	}
}

func (r *renderer) fire(trigger blockTrigger) {
	// All fires are permitted by construction; MustState would have
	// steered elsewhere otherwise.
	if err := r.fsm.Fire(trigger); err != nil {
		panic(fmt.Sprintf("markdown: block transition %v: %v", trigger, err))
	}
}

func (r *renderer) emitCodeBlock() {
	content := html.EscapeString(strings.Join(r.fenceLines, "\n"))
	lang := html.EscapeString(r.fenceLang)
	r.out = append(r.out, fmt.Sprintf(`<pre><code class="lang-%s">%s</code></pre>`, lang, content))
	r.fenceLang = ""
	r.fenceLines = nil
}

// List indentation is purely visual: every item is a flat sibling whose left
// offset is indent×12px, regardless of how deep it looks in the source.
func (r *renderer) emitListItem(indent int, marker, content string) {
	formatted := FormatInline(html.EscapeString(content))
	r.out = append(r.out, fmt.Sprintf(`<div class="md-li" style="margin-left:%dpx">%s %s</div>`, indent*12, marker, formatted))
}

// flushTable turns the buffered raw rows into one table block. Rows are split
// on pipes with outer empties dropped; a row whose cells are all dashes and
// colons is the separator and is not rendered. The first non-separator row
// becomes the header.
func (r *renderer) flushTable() {
	rows := r.tableRows
	r.tableRows = nil
	if len(rows) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString(`<div class="md-table-wrap"><table>`)
	headerDone := false
	for _, row := range rows {
		cells := splitTableRow(row)
		if isSeparatorRow(cells) {
			continue
		}
		tag := "td"
		if !headerDone {
			tag = "th"
			headerDone = true
		}
		b.WriteString("<tr>")
		for _, cell := range cells {
			fmt.Fprintf(&b, "<%s>%s</%s>", tag, FormatInline(html.EscapeString(cell)), tag)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table></div>")
	r.out = append(r.out, b.String())
}

func splitTableRow(row string) []string {
	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, cell := range cells {
		stripped := strings.Map(func(r rune) rune {
			if r == '-' || r == ':' {
				return -1
			}
			return r
		}, cell)
		if strings.TrimSpace(stripped) != "" {
			return false
		}
	}
	return true
}
