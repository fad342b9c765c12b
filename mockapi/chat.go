package mockapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fintrack-labs/fintrack-go/models"
)

// ============================================================================
// CHAT
// Conversations get canned Portuguese replies keyed on the question, with a
// synthetic usage row per reply so the cost screens have data.
// ============================================================================

var ErrConversationNotFound = fmt.Errorf("conversation not found")

func (s *Store) StartConversation(content, model string) models.StartChatResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	if model == "" {
		model = models.DefaultLLMModel
	}

	conv := models.ChatConversation{
		ID:        s.nextConversationID,
		Title:     conversationTitle(content),
		CreatedAt: now(),
		UpdatedAt: now(),
		Messages:  []models.ChatMessage{},
	}
	s.nextConversationID++

	userMsg, aiMsg := s.appendExchangeLocked(&conv, content, model)
	s.conversations = append(s.conversations, conv)

	return models.StartChatResponse{
		Conversation: conv,
		UserMessage:  userMsg,
		AIMessage:    aiMsg,
	}
}

func (s *Store) SendMessage(conversationID int, content string) (*models.SendMessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		if s.conversations[i].ID != conversationID {
			continue
		}
		conv := &s.conversations[i]
		userMsg, aiMsg := s.appendExchangeLocked(conv, content, models.DefaultLLMModel)
		conv.UpdatedAt = now()
		return &models.SendMessageResponse{UserMessage: userMsg, AIMessage: aiMsg}, nil
	}
	return nil, ErrConversationNotFound
}

func (s *Store) ListConversations() []models.ChatConversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first, without message bodies.
	list := make([]models.ChatConversation, 0, len(s.conversations))
	for i := len(s.conversations) - 1; i >= 0; i-- {
		conv := s.conversations[i]
		conv.Messages = nil
		list = append(list, conv)
	}
	return list
}

func (s *Store) ConversationMessages(conversationID int) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conv := range s.conversations {
		if conv.ID == conversationID {
			messages := make([]models.ChatMessage, len(conv.Messages))
			copy(messages, conv.Messages)
			return messages, nil
		}
	}
	return nil, ErrConversationNotFound
}

// appendExchangeLocked adds a user message and its canned reply to conv and
// records the synthetic usage row. Caller holds the write lock.
func (s *Store) appendExchangeLocked(conv *models.ChatConversation, content, model string) (models.ChatMessage, models.ChatMessage) {
	reply := s.cannedReplyLocked(content)

	inputTokens := estimateTokens(content)
	outputTokens := estimateTokens(reply)
	call := models.AICall{
		ID:               s.nextAICallID,
		CreatedAt:        now(),
		UpdatedAt:        now(),
		TotalTokens:      inputTokens + outputTokens,
		InputUsedTokens:  inputTokens,
		OutputUsedTokens: outputTokens,
		InputCost:        models.EstimateCost(model, inputTokens, 0),
		OutputCost:       models.EstimateCost(model, 0, outputTokens),
		Model:            model,
	}

	userMsg := models.ChatMessage{
		ID:        s.nextMessageID,
		Role:      models.RoleHuman,
		Content:   content,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	s.nextMessageID++

	aiMsg := models.ChatMessage{
		ID:        s.nextMessageID,
		Role:      models.RoleAssistant,
		Content:   reply,
		AICall:    &call,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	s.nextMessageID++

	conv.Messages = append(conv.Messages, userMsg, aiMsg)

	response, _ := json.Marshal(map[string]string{"content": reply})
	title := conv.Title
	s.aiCalls = append(s.aiCalls, models.AICallItem{
		ID:                 call.ID,
		CreatedAt:          call.CreatedAt,
		UpdatedAt:          call.UpdatedAt,
		Prompt:             content,
		Response:           response,
		TotalTokens:        call.TotalTokens,
		InputUsedTokens:    inputTokens,
		OutputUsedTokens:   outputTokens,
		Model:              model,
		RelatedTo:          "chat",
		ModelPrices:        modelPrices(model, inputTokens, outputTokens),
		ConversationTitle:  &title,
		UserMessageContent: &userMsg.Content,
		AIMessageContent:   &aiMsg.Content,
	})
	s.nextAICallID++

	return userMsg, aiMsg
}

func (s *Store) cannedReplyLocked(content string) string {
	question := strings.ToLower(content)
	switch {
	case strings.Contains(question, "gasto") || strings.Contains(question, "gastei"):
		total := 0.0
		for _, t := range s.transactions {
			if t.TransactionType == models.TransactionOutgoing {
				total += parseAmount(t.TotalAmount)
			}
		}
		return fmt.Sprintf("Seus gastos registrados somam R$ %.2f. As maiores despesas estão em moradia e alimentação.", total)
	case strings.Contains(question, "receita") || strings.Contains(question, "salário") || strings.Contains(question, "salario"):
		total := 0.0
		for _, t := range s.transactions {
			if t.TransactionType == models.TransactionIncoming {
				total += parseAmount(t.TotalAmount)
			}
		}
		return fmt.Sprintf("Suas receitas registradas somam R$ %.2f.", total)
	case strings.Contains(question, "saldo"):
		balance := 0.0
		for _, t := range s.transactions {
			amount := parseAmount(t.TotalAmount)
			if t.TransactionType == models.TransactionIncoming {
				balance += amount
			} else {
				balance -= amount
			}
		}
		return fmt.Sprintf("Seu saldo atual, considerando receitas e despesas registradas, é de R$ %.2f.", balance)
	case strings.Contains(question, "ator") || strings.Contains(question, "atores"):
		return fmt.Sprintf("Você tem %d atores cadastrados. Use as estatísticas de atores para ver quem mais gastou.", len(s.actors))
	default:
		return "Posso ajudar com perguntas sobre seus gastos, receitas, saldo e atores. O que você gostaria de saber?"
	}
}

func conversationTitle(content string) string {
	const maxLen = 50
	if utf8.RuneCountInString(content) <= maxLen {
		return content
	}
	runes := []rune(content)
	return string(runes[:maxLen]) + "..."
}

// estimateTokens approximates the tokenizer at four characters per token.
func estimateTokens(text string) int {
	n := utf8.RuneCountInString(text)/4 + 1
	return n
}

func modelPrices(model string, inputTokens, outputTokens int) models.ModelPrices {
	input := models.EstimateCost(model, inputTokens, 0)
	output := models.EstimateCost(model, 0, outputTokens)
	return models.ModelPrices{Input: input, Output: output, Total: input + output}
}

// ============================================================================
// AI USAGE LISTINGS
// ============================================================================

func (s *Store) ListAICalls(filters models.AIDateFilters) []models.AICallItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := []models.AICallItem{}
	for _, call := range s.aiCalls {
		if filters.Model != "" && call.Model != filters.Model {
			continue
		}
		if !withinDateRange(call.CreatedAt, filters.DueDateStart, filters.DueDateEnd) {
			continue
		}
		list = append(list, call)
	}
	return list
}

func (s *Store) AICallsStats(filters models.AIDateFilters) models.AICallsStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.AICallsStats{ModelsStats: map[string]models.ModelStats{}}
	for _, call := range s.aiCalls {
		if filters.Model != "" && call.Model != filters.Model {
			continue
		}
		if !withinDateRange(call.CreatedAt, filters.DueDateStart, filters.DueDateEnd) {
			continue
		}
		stats.TotalCalls++
		stats.TotalTokens += call.TotalTokens
		stats.TotalInputTokens += call.InputUsedTokens
		stats.TotalOutputTokens += call.OutputUsedTokens
		if call.IsError {
			stats.TotalErrors++
		}

		m := stats.ModelsStats[call.Model]
		m.Count++
		m.TotalTokens += call.TotalTokens
		m.TotalInputTokens += call.InputUsedTokens
		m.TotalOutputTokens += call.OutputUsedTokens
		m.TotalSpent += call.ModelPrices.Total
		stats.ModelsStats[call.Model] = m

		stats.AmountSpent.Input += call.ModelPrices.Input
		stats.AmountSpent.Output += call.ModelPrices.Output
		stats.AmountSpent.Total += call.ModelPrices.Total
	}
	return stats
}

func (s *Store) ListEmbeddings(filters models.AIDateFilters) []models.EmbeddingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := []models.EmbeddingItem{}
	for _, e := range s.embeddings {
		if !withinDateRange(e.CreatedAt, filters.DueDateStart, filters.DueDateEnd) {
			continue
		}
		list = append(list, e)
	}
	return list
}

func (s *Store) EmbeddingsStats(filters models.AIDateFilters) models.EmbeddingsStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.EmbeddingsStats{ModelsStats: map[string]models.EmbeddingModelStats{}}
	for _, e := range s.embeddings {
		if !withinDateRange(e.CreatedAt, filters.DueDateStart, filters.DueDateEnd) {
			continue
		}
		stats.TotalEmbeddings++
		stats.TotalTokens += e.TotalTokens
		stats.TotalPromptTokens += e.PromptUsedTokens
		stats.AmountSpent += e.Price

		m := stats.ModelsStats[e.Model]
		m.Count++
		m.TotalTokens += e.TotalTokens
		m.TotalPromptTokens += e.PromptUsedTokens
		stats.ModelsStats[e.Model] = m
	}
	return stats
}

// withinDateRange compares the "YYYY-MM-DD" prefix of an RFC 3339 timestamp
// against inclusive bounds; empty bounds never filter.
func withinDateRange(createdAt, start, end string) bool {
	if len(createdAt) < 10 {
		return start == "" && end == ""
	}
	date := createdAt[:10]
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}
