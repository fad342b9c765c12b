package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listBills(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListBills())
}

func (s *Server) getBill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bill, ok := s.store.GetBillDetail(id)
	if !ok {
		detail(c, http.StatusNotFound, "bill not found")
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (s *Server) uploadBill(c *gin.Context) {
	s.handleUpload(c)
}

func (s *Server) uploadSheet(c *gin.Context) {
	s.handleUpload(c)
}

// handleUpload accepts the multipart form and registers the file as a bill.
// The file content is discarded; the store fabricates the parsed result.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		detail(c, http.StatusBadRequest, "file is required")
		return
	}

	bill := s.store.IngestBill(file.Filename)
	c.JSON(http.StatusCreated, bill)
}
