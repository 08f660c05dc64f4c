package httpserver

import (
	"net/http"
	"strconv"

	"slingshot/domain"

	"github.com/gin-gonic/gin"
)

type createAgentRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Status      string `json:"status"`
	Description string `json:"description"`
	ProjectID   *int64 `json:"projectId"`
}

func (s *Server) handleListAgents(c *gin.Context) {
	projectID, err := optionalProjectID(c)
	if err != nil {
		badRequest(c, "Invalid projectId", err)
		return
	}

	agents, err := s.agents.ListAgents(c.Request.Context(), projectID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if agents == nil {
		agents = []domain.Agent{}
	}
	c.JSON(http.StatusOK, agents)
}

func (s *Server) handleCreateAgent(c *gin.Context) {
	var req createAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid AI agent data", err)
		return
	}

	agent, err := s.agents.CreateAgent(c.Request.Context(), domain.Agent{
		Name:        req.Name,
		Type:        req.Type,
		Status:      req.Status,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

func (s *Server) handleUpdateAgent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid agent id", err)
		return
	}

	var patch domain.AgentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid AI agent data", err)
		return
	}

	agent, err := s.agents.UpdateAgent(c.Request.Context(), id, patch)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

func (s *Server) handleDeleteAgent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid agent id", err)
		return
	}
	if err := s.agents.DeleteAgent(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
