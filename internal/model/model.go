package model

// Citation is a url_citation annotation attached to a message.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// TokenUsage is the canonical form of the token counters a message may carry.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Message is one conversation turn, reduced to the variant the user had
// selected. BranchIndex is reported as stored even when it was out of range;
// only the variant choice falls back to the first entry.
type Message struct {
	Role        string
	Parts       []Part
	Annotations []Citation
	Usage       *TokenUsage
	CreatedAt   string
	FinishedAt  string
	ModelID     string
	Translation string
	BranchCount int
	BranchIndex int
}

// Conversation is one chat thread from the backup.
type Conversation struct {
	ID          string
	AssistantID string
	Title       string
	CreateAt    string
	UpdateAt    string
	CreateAtTS  int64
	UpdateAtTS  int64
	Pinned      bool
	Messages    []Message
}

// Memory is one AI memory entry.
type Memory struct {
	ID          int64
	AssistantID string
	Content     string
}

// Archive is everything parsed out of one backup file.
type Archive struct {
	Conversations []Conversation
	Memories      []Memory
	// Assistants maps assistant id to display name, from settings.json.
	Assistants map[string]string
}
