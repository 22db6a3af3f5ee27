// mindful/utils/types/chat.go
package types

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResult is what the pipeline hands back for one processed message.
type ChatResult struct {
	Response       string `json:"response"`
	Intent         string `json:"intent"`
	ConversationID int    `json:"conversation_id"`
	IsCrisis       bool   `json:"is_crisis"`
}

// HistoryItem is one past exchange as returned by GET /api/chat/history.
type HistoryItem struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Intent    string `json:"intent"`
	IsCrisis  bool   `json:"is_crisis"`
	CreatedAt string `json:"created_at"`
}

// FeedbackRequest is the body of POST /api/feedback. Helpful is nullable:
// absent means the user left only a comment.
type FeedbackRequest struct {
	ConversationID int    `json:"conversation_id"`
	Helpful        *bool  `json:"helpful,omitempty"`
	Comment        string `json:"comment,omitempty"`
}
