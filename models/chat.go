package models

// ============================================================================
// AI CHAT MODELS
// ============================================================================

type ChatRole string

const (
	RoleHuman     ChatRole = "human"
	RoleAssistant ChatRole = "assistant"
)

type AICall struct {
	ID               int     `json:"id"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
	TotalTokens      int     `json:"total_tokens"`
	InputUsedTokens  int     `json:"input_used_tokens"`
	OutputUsedTokens int     `json:"output_used_tokens"`
	InputCost        float64 `json:"input_cost"`
	OutputCost       float64 `json:"output_cost"`
	Model            string  `json:"model"`
}

type ChatMessage struct {
	ID        int      `json:"id"`
	Role      ChatRole `json:"role"`
	Content   string   `json:"content"`
	AICall    *AICall  `json:"ai_call"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type ChatConversation struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
	Messages  []ChatMessage `json:"messages"`
}

type StartChatRequest struct {
	Content string `json:"content" binding:"required"`
	Model   string `json:"model,omitempty"`
}

type StartChatResponse struct {
	Conversation ChatConversation `json:"conversation"`
	UserMessage  ChatMessage      `json:"user_message"`
	AIMessage    ChatMessage      `json:"ai_message"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type SendMessageResponse struct {
	UserMessage ChatMessage `json:"user_message"`
	AIMessage   ChatMessage `json:"ai_message"`
}
