package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slingshot/auth"
	"slingshot/domain"
	"slingshot/realtime"
	"slingshot/repositories/memstore"
	"slingshot/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "tester@example.com"
	testPassword = "ComplexPass123!"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	logger := slog.Default()
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	server := NewServer(
		logger,
		services.NewChatService(store.Messages()),
		services.NewProjectService(store.Projects()),
		services.NewAgentService(store.Agents()),
		services.NewAuthService(store.Users(), tokens),
		services.NewAssistService(0),
		realtime.NewHub(logger, 4),
		tokens,
	)
	return server.Engine()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func registerTestUser(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/auth/register", "",
		map[string]string{"email": testEmail, "password": testPassword})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func Test_Healthz(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodGet, "/healthz", "", nil)
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"status":"ok"`)
}

func Test_Auth_Flow(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("register then fetch the current user", func(t *testing.T) {
		req := require.New(t)
		token := registerTestUser(t, engine)

		rec := doJSON(t, engine, http.MethodGet, "/api/auth/user", token, nil)
		req.Equal(http.StatusOK, rec.Code)

		var user domain.User
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &user))
		req.Equal(testEmail, user.Email)
		// The hash never leaves the service.
		req.NotContains(rec.Body.String(), "password")
	})

	t.Run("login with the registered credentials", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/auth/login", "",
			map[string]string{"email": testEmail, "password": testPassword})
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "token")
	})

	t.Run("login with a wrong password is rejected", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/auth/login", "",
			map[string]string{"email": testEmail, "password": "WrongPass123!"})
		req.Equal(http.StatusUnauthorized, rec.Code)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/auth/register", "",
			map[string]string{"email": testEmail, "password": testPassword})
		req.Equal(http.StatusConflict, rec.Code)
	})

	t.Run("weak password is a validation failure", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/auth/register", "",
			map[string]string{"email": "other@example.com", "password": "weakpassword"})
		req.Equal(http.StatusBadRequest, rec.Code)
	})
}

func Test_Protected_Routes_Require_A_Token(t *testing.T) {
	engine := newTestEngine(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/messages"},
		{http.MethodPost, "/api/messages"},
		{http.MethodGet, "/api/projects"},
		{http.MethodGet, "/api/ai-agents"},
		{http.MethodPost, "/api/chat"},
		{http.MethodGet, "/api/stats"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			req := require.New(t)
			rec := doJSON(t, engine, p.method, p.path, "", nil)
			req.Equal(http.StatusUnauthorized, rec.Code)
			req.Contains(rec.Body.String(), "Unauthorized")
		})
	}
}

func Test_Message_Flow(t *testing.T) {
	engine := newTestEngine(t)
	token := registerTestUser(t, engine)

	t.Run("empty list comes back as an empty array", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodGet, "/api/messages", token, nil)
		req.Equal(http.StatusOK, rec.Code)
		req.Equal("[]", rec.Body.String())
	})

	t.Run("posted messages come back in creation order", func(t *testing.T) {
		req := require.New(t)
		for _, content := range []string{"first", "second"} {
			rec := doJSON(t, engine, http.MethodPost, "/api/messages", token,
				map[string]any{"content": content, "role": "user"})
			req.Equal(http.StatusCreated, rec.Code)

			var msg domain.Message
			req.NoError(json.Unmarshal(rec.Body.Bytes(), &msg))
			req.Equal(content, msg.Content)
			req.NotZero(msg.ID)
		}

		rec := doJSON(t, engine, http.MethodGet, "/api/messages", token, nil)
		req.Equal(http.StatusOK, rec.Code)

		var messages []domain.Message
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &messages))
		req.Len(messages, 2)
		req.Equal("first", messages[0].Content)
		req.Equal("second", messages[1].Content)
	})

	t.Run("missing content is rejected before the store", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/messages", token,
			map[string]any{"role": "user"})
		req.Equal(http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown role is rejected by the store rules", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/messages", token,
			map[string]any{"content": "hello", "role": "robot"})
		req.Equal(http.StatusBadRequest, rec.Code)
	})

	t.Run("delete succeeds for known and unknown ids alike", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodDelete, "/api/messages/1", token, nil)
		req.Equal(http.StatusNoContent, rec.Code)

		rec = doJSON(t, engine, http.MethodDelete, "/api/messages/1", token, nil)
		req.Equal(http.StatusNoContent, rec.Code)

		rec = doJSON(t, engine, http.MethodDelete, "/api/messages/99999", token, nil)
		req.Equal(http.StatusNoContent, rec.Code)
	})

	t.Run("project filter narrows the list", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/messages", token,
			map[string]any{"content": "scoped", "role": "user", "projectId": 42})
		req.Equal(http.StatusCreated, rec.Code)

		rec = doJSON(t, engine, http.MethodGet, "/api/messages?projectId=42", token, nil)
		req.Equal(http.StatusOK, rec.Code)

		var messages []domain.Message
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &messages))
		req.Len(messages, 1)
		req.Equal("scoped", messages[0].Content)
	})
}

func Test_Project_Flow(t *testing.T) {
	engine := newTestEngine(t)
	token := registerTestUser(t, engine)

	req := require.New(t)
	rec := doJSON(t, engine, http.MethodPost, "/api/projects", token,
		map[string]any{"name": "Modernize billing", "description": "Legacy rewrite"})
	req.Equal(http.StatusCreated, rec.Code)

	var project domain.Project
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &project))
	req.Equal(domain.ProjectActive, project.Status)

	rec = doJSON(t, engine, http.MethodPut, "/api/projects/1", token,
		map[string]any{"progress": 60})
	req.Equal(http.StatusOK, rec.Code)
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &project))
	req.Equal(60, project.Progress)
	req.Equal("Modernize billing", project.Name)

	rec = doJSON(t, engine, http.MethodPut, "/api/projects/99999", token,
		map[string]any{"progress": 10})
	req.Equal(http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/projects/1", token, nil)
	req.Equal(http.StatusNoContent, rec.Code)
	rec = doJSON(t, engine, http.MethodDelete, "/api/projects/1", token, nil)
	req.Equal(http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/projects", token, nil)
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("[]", rec.Body.String())
}

func Test_Agent_Flow(t *testing.T) {
	engine := newTestEngine(t)
	token := registerTestUser(t, engine)

	req := require.New(t)
	rec := doJSON(t, engine, http.MethodPost, "/api/ai-agents", token,
		map[string]any{"name": "Generator", "type": domain.AgentCodeGenerator})
	req.Equal(http.StatusCreated, rec.Code)

	var agent domain.Agent
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &agent))
	req.Equal(domain.AgentIdle, agent.Status)

	rec = doJSON(t, engine, http.MethodPut, "/api/ai-agents/1", token,
		map[string]any{"status": domain.AgentRunning})
	req.Equal(http.StatusOK, rec.Code)
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &agent))
	req.Equal(domain.AgentRunning, agent.Status)

	rec = doJSON(t, engine, http.MethodPost, "/api/ai-agents", token,
		map[string]any{"name": "Incomplete"})
	req.Equal(http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/ai-agents/1", token, nil)
	req.Equal(http.StatusNoContent, rec.Code)
}

func Test_Assist_Endpoints(t *testing.T) {
	engine := newTestEngine(t)
	token := registerTestUser(t, engine)

	t.Run("chat returns an assistant reply", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/chat", token,
			map[string]string{"message": "how do I start?"})
		req.Equal(http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Content string      `json:"content"`
				Role    domain.Role `json:"role"`
			} `json:"data"`
		}
		req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		req.NotEmpty(resp.Data.Content)
		req.Equal(domain.RoleAssistant, resp.Data.Role)
	})

	t.Run("generate-code echoes the prompt", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/slingshot/generate-code", token,
			map[string]any{"prompt": "a login form"})
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), "a login form")
		req.Contains(rec.Body.String(), `"language":"javascript"`)
	})

	t.Run("modernize names the target framework", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/slingshot/modernize", token,
			map[string]any{"legacyCode": "var x = 1;", "targetFramework": "react"})
		req.Equal(http.StatusOK, rec.Code)
		req.Contains(rec.Body.String(), `"framework":"react"`)
	})

	t.Run("chat without a message is rejected", func(t *testing.T) {
		req := require.New(t)
		rec := doJSON(t, engine, http.MethodPost, "/api/chat", token, map[string]string{})
		req.Equal(http.StatusBadRequest, rec.Code)
	})
}

func Test_Stats(t *testing.T) {
	req := require.New(t)
	engine := newTestEngine(t)
	token := registerTestUser(t, engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/stats", token, nil)
	req.Equal(http.StatusOK, rec.Code)

	var stats map[string]any
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &stats))
	req.Contains(stats, "uptime")
	req.Contains(stats, "goroutines")
	req.Contains(stats, "listeners")
}
