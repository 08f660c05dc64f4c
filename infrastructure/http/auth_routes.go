package httpserver

import (
	"net/http"

	"slingshot/auth"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid credentials payload", err)
		return
	}

	token, err := s.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": string(token)})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid credentials payload", err)
		return
	}

	token, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": string(token)})
}

func (s *Server) handleCurrentUser(c *gin.Context) {
	userID, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := s.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
