package httpserver

import (
	"net/http"
	"strconv"

	"slingshot/auth"
	"slingshot/domain"

	"github.com/gin-gonic/gin"
)

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
}

func (s *Server) handleListProjects(c *gin.Context) {
	userID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	projects, err := s.projects.ListProjects(c.Request.Context(), userID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	userID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid project data", err)
		return
	}

	project, err := s.projects.CreateProject(c.Request.Context(), domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
		OwnerID:     userID,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid project id", err)
		return
	}

	var patch domain.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid project data", err)
		return
	}

	project, err := s.projects.UpdateProject(c.Request.Context(), id, patch)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid project id", err)
		return
	}
	if err := s.projects.DeleteProject(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
