package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAssistService_Reply(t *testing.T) {
	t.Run("should return the same answer for the same prompt", func(t *testing.T) {
		req := require.New(t)
		svc := NewAssistService(0)
		ctx := context.Background()

		first, err := svc.Reply(ctx, "how do I fix this bug?")
		req.NoError(err)
		second, err := svc.Reply(ctx, "how do I fix this bug?")
		req.NoError(err)
		req.Equal(first, second)
		req.NotEmpty(first)
	})

	t.Run("should abort when the context is cancelled during the delay", func(t *testing.T) {
		req := require.New(t)
		svc := NewAssistService(5 * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := svc.Reply(ctx, "anything")
		req.ErrorIs(err, context.DeadlineExceeded)
	})
}

func TestAssistService_GenerateCode(t *testing.T) {
	req := require.New(t)
	svc := NewAssistService(0)
	projectID := int64(3)

	resp := svc.GenerateCode("build a login form", &projectID)
	req.Contains(resp.Code, "build a login form")
	req.Equal("javascript", resp.Language)
	req.Equal(0.95, resp.Confidence)
	req.Equal(&projectID, resp.ProjectID)
}

func TestAssistService_Modernize(t *testing.T) {
	req := require.New(t)
	svc := NewAssistService(0)

	resp := svc.Modernize("var x = 1;", "react")
	req.Equal("react", resp.Framework)
	req.Contains(resp.ModernizedCode, "react")
	req.NotEmpty(resp.Improvements)
}
