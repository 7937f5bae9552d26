// Package export writes a parsed archive out as HTML, JSON, plain text, or
// OpenAI fine-tuning JSONL.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/rikkatools/rikkaview/internal/markdown"
	"github.com/rikkatools/rikkaview/internal/model"
)

var roleLabels = map[string]string{
	"user":      "👤 User",
	"assistant": "🤖 Assistant",
	"system":    "⚙️ System",
}

var toolLabels = map[string]string{
	"memory_tool": "🧠 记忆操作",
	"search_web":  "🔍 网页搜索",
	"scrape_web":  "🌐 网页抓取",
}

// HTML writes the archive as one self-contained page: inline CSS, a sidebar
// with the conversation list and a search box, and one hidden view per
// conversation toggled by inline JS.
func HTML(archive *model.Archive, title string, w io.Writer) error {
	var b strings.Builder
	writeHead(&b, title)
	writeSidebar(&b, archive, title)
	writeMain(&b, archive, title)
	b.WriteString("<script>\n" + pageJS + "\n</script>\n</body></html>")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHead(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
`, html.EscapeString(title), pageCSS)
}

func writeSidebar(b *strings.Builder, archive *model.Archive, title string) {
	b.WriteString(`<div class="sidebar" id="sidebar">` + "\n")
	b.WriteString(`<div class="sidebar-header">` + "\n")
	fmt.Fprintf(b, "<h2>🗂️ %s</h2>\n", html.EscapeString(title))
	fmt.Fprintf(b, `<span class="conv-count">%d 条对话</span>`+"\n", len(archive.Conversations))
	b.WriteString("</div>\n")
	b.WriteString(`<input type="text" class="search-box" id="searchBox" placeholder="🔍 搜索对话..." oninput="filterConversations()">` + "\n")
	b.WriteString(`<div class="conv-list" id="convList">` + "\n")

	for i, conv := range archive.Conversations {
		pinned := ""
		if conv.Pinned {
			pinned = " 📌"
		}
		badge := ""
		if name := archive.Assistants[conv.AssistantID]; name != "" {
			badge = fmt.Sprintf(` <span class="assistant-badge">%s</span>`, html.EscapeString(name))
		}
		fmt.Fprintf(b, `<div class="conv-item" data-index="%d" onclick="showConversation(%d)" data-title="%s">`+
			`<div class="conv-title">%s%s%s</div>`+
			`<div class="conv-meta">%s  ·  %d 条消息</div>`+
			"</div>\n",
			i, i, html.EscapeString(conv.Title),
			pinned, html.EscapeString(conv.Title), badge,
			conv.UpdateAt, len(conv.Messages))
	}
	b.WriteString("</div></div>\n")
}

func writeMain(b *strings.Builder, archive *model.Archive, title string) {
	b.WriteString(`<div class="main" id="main">` + "\n")
	b.WriteString(`<button class="menu-btn" onclick="toggleSidebar()">☰</button>` + "\n")

	b.WriteString(`<div class="welcome" id="welcome"><div class="welcome-inner">` + "\n")
	fmt.Fprintf(b, "<h1>📱 %s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(b, "<p>共 %d 条对话记录</p>\n", len(archive.Conversations))
	if len(archive.Memories) > 0 {
		fmt.Fprintf(b, "<p>🧠 %d 条 AI 记忆</p>\n", len(archive.Memories))
	}
	b.WriteString(`<p class="hint">← 从左侧选择一个对话开始浏览</p>` + "\n")
	b.WriteString("</div></div>\n")

	for i, conv := range archive.Conversations {
		fmt.Fprintf(b, `<div class="conv-view" id="conv-%d" style="display:none">`+"\n", i)
		pin := ""
		if conv.Pinned {
			pin = "📌 "
		}
		fmt.Fprintf(b, `<div class="conv-header"><h2>%s%s</h2>`+"\n", pin, html.EscapeString(conv.Title))
		fmt.Fprintf(b, `<div class="conv-info">创建: %s  ·  更新: %s  ·  %d 条消息</div></div>`+"\n",
			conv.CreateAt, conv.UpdateAt, len(conv.Messages))
		b.WriteString(`<div class="messages">` + "\n")
		for mi := range conv.Messages {
			renderMessage(b, &conv.Messages[mi])
		}
		b.WriteString("</div></div>\n")
	}
	b.WriteString("</div>\n")
}

func renderMessage(b *strings.Builder, msg *model.Message) {
	role := strings.ToLower(msg.Role)
	label, ok := roleLabels[role]
	if !ok {
		label = msg.Role
	}

	fmt.Fprintf(b, `<div class="message %s">`+"\n", html.EscapeString(role))
	fmt.Fprintf(b, `<div class="msg-header"><span class="role-label">%s</span>`, label)

	var extras []string
	if msg.CreatedAt != "" {
		extras = append(extras, msg.CreatedAt)
	}
	if msg.BranchCount > 1 {
		extras = append(extras, fmt.Sprintf("分支 %d/%d", msg.BranchIndex+1, msg.BranchCount))
	}
	if msg.Usage != nil && msg.Usage.TotalTokens > 0 {
		extras = append(extras, fmt.Sprintf("%d tokens", msg.Usage.TotalTokens))
	}
	if len(extras) > 0 {
		fmt.Fprintf(b, `<span class="msg-meta">%s</span>`, html.EscapeString(strings.Join(extras, " · ")))
	}
	b.WriteString(`</div><div class="msg-body">` + "\n")

	// Reasoning renders after everything else so the answer leads.
	for _, part := range msg.Parts {
		if part.Kind() != model.KindReasoning {
			b.WriteString(renderPart(part))
		}
	}
	for _, part := range msg.Parts {
		if part.Kind() == model.KindReasoning {
			b.WriteString(renderPart(part))
		}
	}

	if msg.Translation != "" {
		fmt.Fprintf(b, `<div class="translation"><strong>翻译:</strong> %s</div>`+"\n", html.EscapeString(msg.Translation))
	}

	if len(msg.Annotations) > 0 {
		fmt.Fprintf(b, `<details class="citations"><summary>🔗 %d 条引用</summary><div class="citations-list">`+"\n", len(msg.Annotations))
		for _, ann := range msg.Annotations {
			text := ann.Title
			if text == "" {
				text = ann.URL
			}
			fmt.Fprintf(b, `<div class="annotation"><a href="%s" target="_blank">%s</a></div>`+"\n",
				html.EscapeString(ann.URL), html.EscapeString(text))
		}
		b.WriteString("</div></details>\n")
	}
	b.WriteString("</div></div>\n")
}

func renderPart(part model.Part) string {
	switch p := part.(type) {
	case model.TextPart:
		if strings.TrimSpace(p.Text) == "" {
			return ""
		}
		return `<div class="part-text">` + markdown.RenderHTML(p.Text) + "</div>\n"

	case model.ReasoningPart:
		if strings.TrimSpace(p.Text) == "" {
			return ""
		}
		return `<details class="reasoning"><summary>💭 思考过程</summary>` +
			`<div class="reasoning-content">` + markdown.RenderHTML(p.Text) + "</div></details>\n"

	case model.ImagePart:
		if strings.HasPrefix(p.URL, "data:") {
			return fmt.Sprintf(`<div class="part-image"><img src="%s" alt="image" loading="lazy"></div>`+"\n", p.URL)
		}
		return fmt.Sprintf(`<div class="part-image"><span class="file-ref">🖼️ 图片: %s</span></div>`+"\n", html.EscapeString(p.URL))

	case model.DocumentPart:
		name := p.FileName
		if name == "" {
			name = "文档"
		}
		return fmt.Sprintf(`<div class="part-file">📄 %s <span class="mime">%s</span></div>`+"\n",
			html.EscapeString(name), html.EscapeString(p.Mime))

	case model.VideoPart:
		return fmt.Sprintf(`<div class="part-file">🎬 视频: %s</div>`+"\n", html.EscapeString(p.URL))

	case model.AudioPart:
		return fmt.Sprintf(`<div class="part-file">🔊 音频: %s</div>`+"\n", html.EscapeString(p.URL))

	case model.ToolPart:
		return renderToolPart(p)
	}
	return ""
}

func renderToolPart(p model.ToolPart) string {
	label, ok := toolLabels[p.Name]
	if !ok {
		label = "🔧 " + p.Name
	}

	inputDisplay := p.Input
	var obj any
	if strings.TrimSpace(p.Input) != "" && json.Unmarshal([]byte(p.Input), &obj) == nil {
		if pretty, err := json.MarshalIndent(obj, "", "  "); err == nil {
			inputDisplay = string(pretty)
		}
	}

	var out strings.Builder
	out.WriteString(`<details class="tool-call">`)
	fmt.Fprintf(&out, "<summary>%s</summary>", html.EscapeString(label))
	out.WriteString(`<div class="tool-body">`)
	fmt.Fprintf(&out, `<pre class="tool-input">%s</pre>`, html.EscapeString(inputDisplay))
	if len(p.Output) > 0 {
		out.WriteString(`<div class="tool-output"><strong>输出:</strong>`)
		for _, op := range p.Output {
			out.WriteString(renderPart(op))
		}
		out.WriteString("</div>")
	}
	out.WriteString("</div></details>\n")
	return out.String()
}
