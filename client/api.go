package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"slingshot/domain"
)

// API is a minimal client for the Slingshot REST gateway. It holds the
// bearer token obtained at login.
type API struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewAPI(baseURL string) *API {
	return &API{baseURL: baseURL, http: &http.Client{}}
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (a *API) Register(ctx context.Context, email, password string) error {
	var resp tokenResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return err
	}
	a.token = resp.Token
	return nil
}

func (a *API) Login(ctx context.Context, email, password string) error {
	var resp tokenResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return err
	}
	a.token = resp.Token
	return nil
}

// Token exposes the session token, e.g. for reuse across runs.
func (a *API) Token() string { return a.token }

func (a *API) CurrentUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := a.do(ctx, http.MethodGet, "/api/auth/user", nil, &user)
	return user, err
}

func (a *API) Messages(ctx context.Context, projectID *int64) ([]domain.Message, error) {
	path := "/api/messages"
	if projectID != nil {
		path += "?projectId=" + strconv.FormatInt(*projectID, 10)
	}
	var messages []domain.Message
	err := a.do(ctx, http.MethodGet, path, nil, &messages)
	return messages, err
}

func (a *API) PostMessage(ctx context.Context, content string, role domain.Role, projectID *int64) (domain.Message, error) {
	body := map[string]any{"content": content, "role": role}
	if projectID != nil {
		body["projectId"] = *projectID
	}
	var msg domain.Message
	err := a.do(ctx, http.MethodPost, "/api/messages", body, &msg)
	return msg, err
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, detail)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
