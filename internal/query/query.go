// Package query implements the read-side operations over a parsed archive:
// assistant and date filters, full-text search, and the list view.
package query

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rikkatools/rikkaview/internal/model"
)

// FilterAssistant keeps conversations whose assistant name contains the given
// name, case-insensitively.
func FilterAssistant(archive *model.Archive, name string) *model.Archive {
	matched := map[string]bool{}
	needle := strings.ToLower(name)
	for id, aname := range archive.Assistants {
		if strings.Contains(strings.ToLower(aname), needle) {
			matched[id] = true
		}
	}

	out := *archive
	out.Conversations = nil
	for _, conv := range archive.Conversations {
		if matched[conv.AssistantID] {
			out.Conversations = append(out.Conversations, conv)
		}
	}
	return &out
}

// FilterDate keeps conversations last updated within [start, end], both
// YYYY-MM-DD; the end day is inclusive.
func FilterDate(archive *model.Archive, start, end string) (*model.Archive, error) {
	startT, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("bad start date %q: %w", start, err)
	}
	endT, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("bad end date %q: %w", end, err)
	}
	startMS := startT.UnixMilli()
	endMS := endT.Add(24*time.Hour - time.Second).UnixMilli()

	out := *archive
	out.Conversations = nil
	for _, conv := range archive.Conversations {
		if conv.UpdateAtTS != 0 && conv.UpdateAtTS >= startMS && conv.UpdateAtTS <= endMS {
			out.Conversations = append(out.Conversations, conv)
		}
	}
	return &out, nil
}

// Match is one search hit with surrounding context.
type Match struct {
	Conversation *model.Conversation
	MessageIndex int
	Role         string
	Context      string
}

// Search finds case-insensitive occurrences of query inside text parts,
// returning each with a ±40 character context window.
func Search(archive *model.Archive, query string) []Match {
	needle := strings.ToLower(query)
	var matches []Match
	for ci := range archive.Conversations {
		conv := &archive.Conversations[ci]
		for mi, msg := range conv.Messages {
			for _, part := range msg.Parts {
				text, ok := part.(model.TextPart)
				if !ok || text.Text == "" {
					continue
				}
				idx := strings.Index(strings.ToLower(text.Text), needle)
				if idx < 0 {
					continue
				}
				matches = append(matches, Match{
					Conversation: conv,
					MessageIndex: mi,
					Role:         msg.Role,
					Context:      contextWindow(text.Text, idx, len(query)),
				})
			}
		}
	}
	return matches
}

func contextWindow(text string, idx, queryLen int) string {
	start := max(0, idx-40)
	end := min(len(text), idx+queryLen+40)
	// Window bounds snap to rune boundaries; the text is routinely CJK.
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	ctx := strings.ReplaceAll(text[start:end], "\n", " ")
	if start > 0 {
		ctx = "..." + ctx
	}
	if end < len(text) {
		ctx = ctx + "..."
	}
	return ctx
}

// List renders one terminal line per conversation.
func List(archive *model.Archive) []string {
	lines := make([]string, 0, len(archive.Conversations))
	for i, conv := range archive.Conversations {
		pin := "   "
		if conv.Pinned {
			pin = "📌 "
		}
		badge := ""
		if name := archive.Assistants[conv.AssistantID]; name != "" {
			badge = fmt.Sprintf(" [%s]", name)
		}
		lines = append(lines, fmt.Sprintf("%s%3d. %s%s  (%d 条)  %s",
			pin, i+1, conv.Title, badge, len(conv.Messages), conv.UpdateAt))
	}
	return lines
}
