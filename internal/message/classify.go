// Package message turns raw backup JSON records into typed model values.
//
// Part records in the backup are shape-ambiguous: older app versions wrote no
// type tag at all, and the structural signals overlap (documents and images
// both carry a url). Classification is therefore an ordered predicate chain;
// the order is the contract and must not be rearranged.
package message

import "github.com/rikkatools/rikkaview/internal/model"

// Serialized class names the app writes as explicit part discriminants.
const (
	tagText      = "me.rerere.ai.ui.UIMessagePart.Text"
	tagReasoning = "me.rerere.ai.ui.UIMessagePart.Reasoning"
	tagImage     = "me.rerere.ai.ui.UIMessagePart.Image"
	tagDocument  = "me.rerere.ai.ui.UIMessagePart.Document"
	tagVideo     = "me.rerere.ai.ui.UIMessagePart.Video"
	tagAudio     = "me.rerere.ai.ui.UIMessagePart.Audio"
	tagTool      = "me.rerere.ai.ui.UIMessagePart.Tool"
)

// Classify maps one raw part record to a typed Part. The second result is
// false when the record matches no rule; that is a normal outcome and the
// caller drops the record silently.
//
// Rule order, first match wins:
//  1. recognized explicit type tag, regardless of other fields
//  2. fileName present          -> document
//  3. toolCallId/toolName       -> tool (output classified recursively)
//  4. reasoning present         -> reasoning
//  5. url present               -> image
//  6. string text present       -> text
//  7. otherwise                 -> absent
func Classify(raw map[string]any) (model.Part, bool) {
	if raw == nil {
		return nil, false
	}

	switch str(raw, "type") {
	case tagText:
		return model.TextPart{Text: str(raw, "text")}, true
	case tagReasoning:
		return reasoningPart(raw), true
	case tagImage:
		return model.ImagePart{URL: str(raw, "url")}, true
	case tagDocument:
		return documentPart(raw), true
	case tagVideo:
		return model.VideoPart{URL: str(raw, "url")}, true
	case tagAudio:
		return model.AudioPart{URL: str(raw, "url")}, true
	case tagTool:
		return toolPart(raw), true
	}

	if _, ok := raw["fileName"]; ok {
		return documentPart(raw), true
	}
	if hasAny(raw, "toolCallId", "toolName") {
		return toolPart(raw), true
	}
	if _, ok := raw["reasoning"]; ok {
		return reasoningPart(raw), true
	}
	if _, ok := raw["url"]; ok {
		return model.ImagePart{URL: str(raw, "url")}, true
	}
	if text, ok := raw["text"].(string); ok {
		return model.TextPart{Text: text}, true
	}
	return nil, false
}

func reasoningPart(raw map[string]any) model.ReasoningPart {
	return model.ReasoningPart{
		Text:       str(raw, "reasoning"),
		CreatedAt:  str(raw, "createdAt"),
		FinishedAt: str(raw, "finishedAt"),
	}
}

func documentPart(raw map[string]any) model.DocumentPart {
	return model.DocumentPart{
		URL:      str(raw, "url"),
		FileName: str(raw, "fileName"),
		Mime:     str(raw, "mime"),
	}
}

func toolPart(raw map[string]any) model.ToolPart {
	part := model.ToolPart{
		CallID: str(raw, "toolCallId"),
		Name:   str(raw, "toolName"),
		Input:  str(raw, "input"),
	}
	rawOutput, _ := raw["output"].([]any)
	for _, entry := range rawOutput {
		record, _ := entry.(map[string]any)
		if classified, ok := Classify(record); ok {
			part.Output = append(part.Output, classified)
		}
	}
	return part
}

func str(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func hasAny(raw map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := raw[k]; ok {
			return true
		}
	}
	return false
}
