package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack-labs/fintrack-go/models"
)

// ============================================================================
// CHAT
// ============================================================================

func (s *Server) startChat(c *gin.Context) {
	var req models.StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "content is required")
		return
	}
	if req.Model != "" {
		if _, ok := models.LookupLLMModel(req.Model); !ok {
			detail(c, http.StatusBadRequest, "unknown model")
			return
		}
	}

	c.JSON(http.StatusCreated, s.store.StartConversation(req.Content, req.Model))
}

func (s *Server) askChat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "content is required")
		return
	}

	resp, err := s.store.SendMessage(id, req.Content)
	if err != nil {
		detail(c, http.StatusNotFound, "conversation not found")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) listConversations(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListConversations())
}

func (s *Server) chatMessages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	messages, err := s.store.ConversationMessages(id)
	if err != nil {
		detail(c, http.StatusNotFound, "conversation not found")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ============================================================================
// USAGE & COSTS
// ============================================================================

func aiFilters(c *gin.Context) models.AIDateFilters {
	return models.AIDateFilters{
		DueDateStart: c.Query("due_date_start"),
		DueDateEnd:   c.Query("due_date_end"),
		Model:        c.Query("model"),
	}
}

func (s *Server) listAICalls(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListAICalls(aiFilters(c)))
}

func (s *Server) aiCallsStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.AICallsStats(aiFilters(c)))
}

func (s *Server) listEmbeddings(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListEmbeddings(aiFilters(c)))
}

func (s *Server) embeddingsStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.EmbeddingsStats(aiFilters(c)))
}
