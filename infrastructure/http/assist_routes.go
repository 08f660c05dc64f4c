package httpserver

import (
	"net/http"

	"slingshot/domain"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	Name    string `json:"name"`
}

type generateCodeRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	ProjectID *int64 `json:"projectId"`
}

type modernizeRequest struct {
	LegacyCode      string `json:"legacyCode" binding:"required"`
	TargetFramework string `json:"targetFramework" binding:"required"`
}

// handleChat asks the assistant stub for a reply. The caller is responsible
// for persisting both sides of the exchange via POST /api/messages.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid chat payload", err)
		return
	}

	reply, err := s.assist.Reply(c.Request.Context(), req.Message)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"content": reply, "role": domain.RoleAssistant},
	})
}

func (s *Server) handleGenerateCode(c *gin.Context) {
	var req generateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid generate-code payload", err)
		return
	}
	c.JSON(http.StatusOK, s.assist.GenerateCode(req.Prompt, req.ProjectID))
}

func (s *Server) handleModernize(c *gin.Context) {
	var req modernizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid modernize payload", err)
		return
	}
	c.JSON(http.StatusOK, s.assist.Modernize(req.LegacyCode, req.TargetFramework))
}
