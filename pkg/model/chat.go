package model

// ChatMode selects the chatbot answering pipeline.
type ChatMode string

const (
	// ChatModeAuto lets the backend pick the pipeline.
	ChatModeAuto ChatMode = "auto"
	// ChatModeRasa forces the intent-based pipeline.
	ChatModeRasa ChatMode = "rasa"
	// ChatModeLangchain forces the retrieval pipeline.
	ChatModeLangchain ChatMode = "langchain"
)

// ChatRequest is the payload sent to the chatbot endpoint.
type ChatRequest struct {
	Message  string   `json:"message"`
	UserID   string   `json:"user_id,omitempty"`
	Language string   `json:"language,omitempty"` // e.g. "en", "hi", "ta"
	Mode     ChatMode `json:"mode,omitempty"`
}

// ChatResponse is the chatbot's answer.
type ChatResponse struct {
	Response   string  `json:"response"`
	Lang       string  `json:"lang"`
	ModeUsed   string  `json:"mode_used"`
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}
