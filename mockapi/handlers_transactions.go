package mockapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fintrack-labs/fintrack-go/models"
)

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		detail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// ============================================================================
// TRANSACTIONS
// ============================================================================

func (s *Server) listTransactions(c *gin.Context) {
	month := c.Query("due_date__month")
	year := c.Query("due_date__year")
	transactionType := models.TransactionType(c.Query("transaction_type"))
	if transactionType != "" && !transactionType.Valid() {
		detail(c, http.StatusBadRequest, "transaction_type must be incoming or outgoing")
		return
	}

	c.JSON(http.StatusOK, s.store.ListTransactions(month, year, transactionType))
}

func (s *Server) getTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	transaction, ok := s.store.GetTransactionDetail(id)
	if !ok {
		detail(c, http.StatusNotFound, "transaction not found")
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func (s *Server) createTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "due_date, total_amount, transaction_identifier and transaction_type are required")
		return
	}
	if !req.TransactionType.Valid() {
		detail(c, http.StatusBadRequest, "transaction_type must be incoming or outgoing")
		return
	}

	c.JSON(http.StatusCreated, s.store.CreateTransaction(req))
}

func (s *Server) updateTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid transaction payload")
		return
	}
	if req.TransactionType != nil && !req.TransactionType.Valid() {
		detail(c, http.StatusBadRequest, "transaction_type must be incoming or outgoing")
		return
	}

	transaction, ok := s.store.UpdateTransaction(id, req)
	if !ok {
		detail(c, http.StatusNotFound, "transaction not found")
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !s.store.DeleteTransaction(id) {
		detail(c, http.StatusNotFound, "transaction not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) transactionStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.TransactionStats(c.Query("due_date")))
}

func (s *Server) payTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body struct {
		UpdateSubTransactions bool `json:"update_sub_transactions"`
	}
	// An empty body means no cascade.
	_ = c.ShouldBindJSON(&body)

	if !s.store.PayTransaction(id, body.UpdateSubTransactions) {
		detail(c, http.StatusNotFound, "transaction not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Transação atualizada com sucesso"})
}

func (s *Server) recalculateAmount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !s.store.RecalculateAmount(id) {
		detail(c, http.StatusNotFound, "transaction not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Valor total recalculado com sucesso"})
}

func (s *Server) guessCategories(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	updated := s.store.GuessCategories(id)
	if updated < 0 {
		detail(c, http.StatusNotFound, "transaction not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("%d sub transações atualizadas com sucesso", updated),
	})
}

// ============================================================================
// SUB-TRANSACTIONS
// ============================================================================

func (s *Server) listSubTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListSubTransactions())
}

func (s *Server) getSubTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sub, ok := s.store.GetSubTransaction(id)
	if !ok {
		detail(c, http.StatusNotFound, "sub transaction not found")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (s *Server) createSubTransaction(c *gin.Context) {
	var req models.CreateSubTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "date, description, amount and transaction_id are required")
		return
	}

	sub, err := s.store.CreateSubTransaction(req)
	if err != nil {
		detail(c, http.StatusBadRequest, "transaction not found")
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (s *Server) updateSubTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.UpdateSubTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid sub transaction payload")
		return
	}

	sub, ok := s.store.UpdateSubTransaction(id, req)
	if !ok {
		detail(c, http.StatusNotFound, "sub transaction not found")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (s *Server) deleteSubTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !s.store.DeleteSubTransaction(id) {
		detail(c, http.StatusNotFound, "sub transaction not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) paySubTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !s.store.PaySubTransaction(id) {
		detail(c, http.StatusNotFound, "sub transaction not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Sub transação atualizada com sucesso"})
}
