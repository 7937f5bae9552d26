package model

// PartKind identifies the variant of a message part.
type PartKind string

const (
	KindText      PartKind = "text"
	KindReasoning PartKind = "reasoning"
	KindImage     PartKind = "image"
	KindDocument  PartKind = "document"
	KindVideo     PartKind = "video"
	KindAudio     PartKind = "audio"
	KindTool      PartKind = "tool"
)

// Part is one typed content unit of a message. The concrete type carries the
// variant's fields; there is no shared base with optional fields.
type Part interface {
	Kind() PartKind
}

// TextPart is plain message text.
type TextPart struct {
	Text string
}

func (TextPart) Kind() PartKind { return KindText }

// ReasoningPart is model reasoning surfaced separately from the answer.
type ReasoningPart struct {
	Text       string
	CreatedAt  string
	FinishedAt string
}

func (ReasoningPart) Kind() PartKind { return KindReasoning }

type ImagePart struct {
	URL string
}

func (ImagePart) Kind() PartKind { return KindImage }

type DocumentPart struct {
	URL      string
	FileName string
	Mime     string
}

func (DocumentPart) Kind() PartKind { return KindDocument }

type VideoPart struct {
	URL string
}

func (VideoPart) Kind() PartKind { return KindVideo }

type AudioPart struct {
	URL string
}

func (AudioPart) Kind() PartKind { return KindAudio }

// ToolPart records a tool invocation. Output holds the classified results of
// the call; raw output entries that match no part shape are absent from it.
type ToolPart struct {
	CallID string
	Name   string
	Input  string
	Output []Part
}

func (ToolPart) Kind() PartKind { return KindTool }
