package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rikkatools/rikkaview/internal/model"
)

// Text writes the archive as a plain transcript.
func Text(archive *model.Archive, w io.Writer) error {
	divider := strings.Repeat("=", 60)
	var lines []string

	for _, conv := range archive.Conversations {
		badge := ""
		if name := archive.Assistants[conv.AssistantID]; name != "" {
			badge = fmt.Sprintf(" [%s]", name)
		}
		pin := ""
		if conv.Pinned {
			pin = "📌 "
		}
		lines = append(lines,
			divider,
			pin+conv.Title+badge,
			fmt.Sprintf("创建: %s  更新: %s", conv.CreateAt, conv.UpdateAt),
			divider,
			"",
		)

		for _, msg := range conv.Messages {
			label, ok := roleLabels[strings.ToLower(msg.Role)]
			if !ok {
				label = msg.Role
			}
			lines = append(lines, fmt.Sprintf("--- %s ---", label))
			for _, part := range msg.Parts {
				switch p := part.(type) {
				case model.TextPart:
					lines = append(lines, p.Text)
				case model.ReasoningPart:
					lines = append(lines, p.Text)
				case model.ToolPart:
					lines = append(lines, fmt.Sprintf("[工具调用: %s]", p.Name))
				case model.ImagePart:
					lines = append(lines, fmt.Sprintf("[图片: %s]", p.URL))
				}
			}
			lines = append(lines, "")
		}
		lines = append(lines, "")
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
