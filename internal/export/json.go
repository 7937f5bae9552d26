package export

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/rikkatools/rikkaview/internal/logger"
	"github.com/rikkatools/rikkaview/internal/model"
)

type jsonExport struct {
	ExportID      string             `json:"export_id"`
	Conversations []jsonConversation `json:"conversations"`
	Memories      []jsonMemory       `json:"memories"`
}

type jsonConversation struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Assistant string        `json:"assistant"`
	CreateAt  string        `json:"create_at"`
	UpdateAt  string        `json:"update_at"`
	IsPinned  bool          `json:"is_pinned"`
	Messages  []jsonMessage `json:"messages"`
}

type jsonMessage struct {
	Role      string            `json:"role"`
	CreatedAt string            `json:"created_at"`
	Parts     []jsonPart        `json:"parts"`
	Usage     *model.TokenUsage `json:"usage,omitempty"`
}

type jsonPart struct {
	Type model.PartKind `json:"type"`
	Text *string        `json:"text"`
	URL  *string        `json:"url"`
}

type jsonMemory struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// JSON writes the archive as indented JSON, stamped with a fresh export id so
// separate runs over the same backup stay distinguishable downstream.
func JSON(archive *model.Archive, w io.Writer) error {
	out := jsonExport{
		ExportID: uuid.NewString(),
		Memories: []jsonMemory{},
	}
	logger.L.Debug("json export", "export_id", out.ExportID)

	for _, m := range archive.Memories {
		out.Memories = append(out.Memories, jsonMemory{ID: m.ID, Content: m.Content})
	}

	out.Conversations = make([]jsonConversation, 0, len(archive.Conversations))
	for _, conv := range archive.Conversations {
		jc := jsonConversation{
			ID:        conv.ID,
			Title:     conv.Title,
			Assistant: archive.Assistants[conv.AssistantID],
			CreateAt:  conv.CreateAt,
			UpdateAt:  conv.UpdateAt,
			IsPinned:  conv.Pinned,
			Messages:  []jsonMessage{},
		}
		for _, msg := range conv.Messages {
			jm := jsonMessage{
				Role:      msg.Role,
				CreatedAt: msg.CreatedAt,
				Parts:     []jsonPart{},
				Usage:     msg.Usage,
			}
			for _, part := range msg.Parts {
				jm.Parts = append(jm.Parts, jsonPartOf(part))
			}
			jc.Messages = append(jc.Messages, jm)
		}
		out.Conversations = append(out.Conversations, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func jsonPartOf(part model.Part) jsonPart {
	jp := jsonPart{Type: part.Kind()}
	switch p := part.(type) {
	case model.TextPart:
		jp.Text = nonEmpty(p.Text)
	case model.ReasoningPart:
		jp.Text = nonEmpty(p.Text)
	case model.ImagePart:
		jp.URL = nonEmpty(p.URL)
	case model.DocumentPart:
		jp.URL = nonEmpty(p.URL)
	case model.VideoPart:
		jp.URL = nonEmpty(p.URL)
	case model.AudioPart:
		jp.URL = nonEmpty(p.URL)
	}
	return jp
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
