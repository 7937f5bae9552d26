package message

import "github.com/rikkatools/rikkaview/internal/model"

// Assemble reduces one branch set (the edit/regenerate variants of a single
// conversation turn) to a Message. An empty variant set yields no message.
// A selected index outside the set is tolerated data inconsistency: the first
// variant is used, but BranchIndex still reports the stored value so callers
// can display the intended position.
func Assemble(variants []map[string]any, selected int) (*model.Message, bool) {
	if len(variants) == 0 {
		return nil, false
	}
	active := variants[0]
	if selected >= 0 && selected < len(variants) {
		active = variants[selected]
	}

	msg := &model.Message{
		Role:        strOr(active, "role", "unknown"),
		CreatedAt:   str(active, "createdAt"),
		FinishedAt:  str(active, "finishedAt"),
		ModelID:     str(active, "modelId"),
		Translation: str(active, "translation"),
		BranchCount: len(variants),
		BranchIndex: selected,
	}

	rawParts, _ := active["parts"].([]any)
	for _, entry := range rawParts {
		record, _ := entry.(map[string]any)
		if part, ok := Classify(record); ok {
			msg.Parts = append(msg.Parts, part)
		}
	}

	rawAnns, _ := active["annotations"].([]any)
	for _, entry := range rawAnns {
		ann, _ := entry.(map[string]any)
		if str(ann, "type") != "url_citation" {
			continue
		}
		msg.Annotations = append(msg.Annotations, model.Citation{
			Title: str(ann, "title"),
			URL:   str(ann, "url"),
		})
	}

	if rawUsage, ok := active["usage"].(map[string]any); ok {
		msg.Usage = normalizeUsage(rawUsage)
	}
	return msg, true
}

// normalizeUsage folds the two token field naming conventions the app has
// used over time into one canonical triple. Missing counters are zero.
func normalizeUsage(raw map[string]any) *model.TokenUsage {
	return &model.TokenUsage{
		PromptTokens:     intField(raw, "promptTokens", "prompt_tokens"),
		CompletionTokens: intField(raw, "completionTokens", "completion_tokens"),
		TotalTokens:      intField(raw, "totalTokens", "total_tokens"),
	}
}

func intField(raw map[string]any, keys ...string) int {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case int64:
			return int(n)
		}
	}
	return 0
}

func strOr(raw map[string]any, key, fallback string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
