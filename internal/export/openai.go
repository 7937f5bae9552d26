package export

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/rikkatools/rikkaview/internal/model"
)

type fineTuneRecord struct {
	Messages []openai.ChatCompletionMessage `json:"messages"`
}

// OpenAI writes one fine-tuning JSONL record per conversation, using the
// standard chat message shape. Text parts of a message are joined with blank
// lines; media and tool parts have no textual content and are skipped, and a
// message left empty by that is dropped. Conversations with fewer than two
// remaining messages are not emitted.
func OpenAI(archive *model.Archive, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for _, conv := range archive.Conversations {
		var record fineTuneRecord
		for _, msg := range conv.Messages {
			var chunks []string
			for _, part := range msg.Parts {
				if text, ok := part.(model.TextPart); ok && strings.TrimSpace(text.Text) != "" {
					chunks = append(chunks, text.Text)
				}
			}
			if len(chunks) == 0 {
				continue
			}
			record.Messages = append(record.Messages, openai.ChatCompletionMessage{
				Role:    strings.ToLower(msg.Role),
				Content: strings.Join(chunks, "\n\n"),
			})
		}
		if len(record.Messages) < 2 {
			continue
		}
		if err := enc.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
