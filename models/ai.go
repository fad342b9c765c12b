package models

import "encoding/json"

// ============================================================================
// AI USAGE & COST TELEMETRY
// Read-only to the client; the backend aggregates per-call token usage.
// ============================================================================

// AIDateFilters narrows usage listings and stats to a created-at range and,
// optionally, a single model.
type AIDateFilters struct {
	DueDateStart string
	DueDateEnd   string
	Model        string
}

type ModelPrices struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
	Total  float64 `json:"total"`
}

type AICallItem struct {
	ID                 int             `json:"id"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
	Prompt             string          `json:"prompt"`
	Response           json.RawMessage `json:"response"`
	TotalTokens        int             `json:"total_tokens"`
	InputUsedTokens    int             `json:"input_used_tokens"`
	OutputUsedTokens   int             `json:"output_used_tokens"`
	Model              string          `json:"model"`
	IsError            bool            `json:"is_error"`
	RelatedTo          string          `json:"related_to"`
	ModelPrices        ModelPrices     `json:"model_prices"`
	FileURL            *string         `json:"file_url"`
	ConversationTitle  *string         `json:"conversation_title"`
	UserMessageContent *string         `json:"user_message_content"`
	AIMessageContent   *string         `json:"ai_message_content"`
}

type ModelStats struct {
	Count             int     `json:"count"`
	TotalTokens       int     `json:"total_tokens"`
	TotalInputTokens  int     `json:"total_input_tokens"`
	TotalOutputTokens int     `json:"total_output_tokens"`
	TotalSpent        float64 `json:"total_spent"`
}

type AmountSpent struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
	Total  float64 `json:"total"`
}

type AICallsStats struct {
	TotalCalls        int                   `json:"total_calls"`
	TotalTokens       int                   `json:"total_tokens"`
	TotalInputTokens  int                   `json:"total_input_tokens"`
	TotalOutputTokens int                   `json:"total_output_tokens"`
	TotalErrors       int                   `json:"total_errors"`
	ModelsStats       map[string]ModelStats `json:"models_stats"`
	AmountSpent       AmountSpent           `json:"amount_spent"`
}

type EmbeddingItem struct {
	ID               int     `json:"id"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
	Model            string  `json:"model"`
	TotalTokens      int     `json:"total_tokens"`
	PromptUsedTokens int     `json:"prompt_used_tokens"`
	Price            float64 `json:"price"`
}

type EmbeddingModelStats struct {
	Count             int `json:"count"`
	TotalTokens       int `json:"total_tokens"`
	TotalPromptTokens int `json:"total_prompt_tokens"`
}

type EmbeddingsStats struct {
	TotalEmbeddings   int                            `json:"total_embeddings"`
	TotalTokens       int                            `json:"total_tokens"`
	TotalPromptTokens int                            `json:"total_prompt_tokens"`
	TotalErrors       int                            `json:"total_errors"`
	ModelsStats       map[string]EmbeddingModelStats `json:"models_stats"`
	AmountSpent       float64                        `json:"amount_spent"`
}
