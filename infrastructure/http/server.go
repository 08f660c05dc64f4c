// Package httpserver exposes the Slingshot REST gateway. Route semantics
// follow the public API: message/project/agent CRUD, auth, and the Slingshot
// assistant placeholders.
package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"slingshot/auth"
	"slingshot/realtime"
	"slingshot/services"

	"github.com/gin-gonic/gin"
)

type Server struct {
	log      *slog.Logger
	chat     services.IChatService
	projects services.IProjectService
	agents   services.IAgentService
	auth     services.IAuthService
	assist   *services.AssistService
	hub      *realtime.Hub
	tokens   *auth.TokenManager
	started  time.Time
}

func NewServer(
	log *slog.Logger,
	chat services.IChatService,
	projects services.IProjectService,
	agents services.IAgentService,
	authSvc services.IAuthService,
	assist *services.AssistService,
	hub *realtime.Hub,
	tokens *auth.TokenManager,
) *Server {
	return &Server{
		log:      log,
		chat:     chat,
		projects: projects,
		agents:   agents,
		auth:     authSvc,
		assist:   assist,
		hub:      hub,
		tokens:   tokens,
		started:  time.Now(),
	}
}

// Engine builds the gin router with all REST routes. The /ws endpoint is
// attached separately by the realtime channel.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "uptime": time.Since(s.started).String()})
	})

	r.POST("/api/auth/register", s.handleRegister)
	r.POST("/api/auth/login", s.handleLogin)

	api := r.Group("/api", auth.Middleware(s.tokens))
	{
		api.GET("/auth/user", s.handleCurrentUser)

		api.GET("/messages", s.handleListMessages)
		api.POST("/messages", s.handleCreateMessage)
		api.DELETE("/messages/:id", s.handleDeleteMessage)

		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.PUT("/projects/:id", s.handleUpdateProject)
		api.DELETE("/projects/:id", s.handleDeleteProject)

		api.GET("/ai-agents", s.handleListAgents)
		api.POST("/ai-agents", s.handleCreateAgent)
		api.PUT("/ai-agents/:id", s.handleUpdateAgent)
		api.DELETE("/ai-agents/:id", s.handleDeleteAgent)

		api.POST("/chat", s.handleChat)
		api.POST("/slingshot/generate-code", s.handleGenerateCode)
		api.POST("/slingshot/modernize", s.handleModernize)

		api.GET("/stats", s.handleStats)
	}

	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
