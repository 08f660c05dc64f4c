package httpserver

import (
	"net/http"
	"strconv"

	"slingshot/auth"
	"slingshot/domain"

	"github.com/gin-gonic/gin"
)

type createMessageRequest struct {
	Content   string      `json:"content" binding:"required"`
	Role      domain.Role `json:"role" binding:"required"`
	ProjectID *int64      `json:"projectId"`
}

// handleCreateMessage performs the durable write only. Broadcasting is a
// separate, optional step done by clients over /ws; there is deliberately no
// atomicity between the two paths.
func (s *Server) handleCreateMessage(c *gin.Context) {
	userID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid message data", err)
		return
	}

	msg, err := s.chat.PostMessage(c.Request.Context(), req.Content, req.Role, userID, req.ProjectID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) handleListMessages(c *gin.Context) {
	userID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	projectID, err := optionalProjectID(c)
	if err != nil {
		badRequest(c, "Invalid projectId", err)
		return
	}

	messages, err := s.chat.ListMessages(c.Request.Context(), userID, projectID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

// handleDeleteMessage is idempotent: deleting an unknown id still returns 204.
func (s *Server) handleDeleteMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid message id", err)
		return
	}
	if err := s.chat.DeleteMessage(c.Request.Context(), id); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func optionalProjectID(c *gin.Context) (*int64, error) {
	raw := c.Query("projectId")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
