package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack-labs/fintrack-go/models"
)

func (s *Server) listActors(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListActors())
}

func (s *Server) getActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := s.store.GetActor(id)
	if !ok {
		detail(c, http.StatusNotFound, "actor not found")
		return
	}
	c.JSON(http.StatusOK, actor)
}

func (s *Server) createActor(c *gin.Context) {
	var req models.CreateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "name is required")
		return
	}
	c.JSON(http.StatusCreated, s.store.CreateActor(req.Name))
}

func (s *Server) updateActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "name is required")
		return
	}

	actor, ok := s.store.UpdateActor(id, req.Name)
	if !ok {
		detail(c, http.StatusNotFound, "actor not found")
		return
	}
	c.JSON(http.StatusOK, actor)
}

func (s *Server) deleteActor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !s.store.DeleteActor(id) {
		detail(c, http.StatusNotFound, "actor not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) actorStats(c *gin.Context) {
	stats := s.store.ActorStats(c.Query("due_date_start"), c.Query("due_date_end"))
	c.JSON(http.StatusOK, stats)
}
