package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"
)

// AssistService stands in for the Slingshot AI integration. Responses are
// canned and the latency is simulated; treat this as an opaque external
// boundary, not an inference pipeline.
type AssistService struct {
	delay   time.Duration
	replies []string
}

type CodeResponse struct {
	Code       string  `json:"code"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	ProjectID  *int64  `json:"projectId"`
}

type ModernizeResponse struct {
	ModernizedCode string   `json:"modernizedCode"`
	Framework      string   `json:"framework"`
	Improvements   []string `json:"improvements"`
}

func NewAssistService(delay time.Duration) *AssistService {
	return &AssistService{
		delay: delay,
		replies: []string{
			"I can help with that. Could you share the relevant file or error output?",
			"Here is what I would try first: reproduce the issue in isolation, then bisect.",
			"That looks like a good candidate for a small refactor. Want me to sketch one?",
			"I've noted it. A test covering this path would catch regressions early.",
		},
	}
}

// Reply returns a canned assistant answer after the configured simulated
// latency. Selection is a stable hash of the prompt so repeated questions get
// repeated answers.
func (s *AssistService) Reply(ctx context.Context, message string) (string, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	h := fnv.New32a()
	h.Write([]byte(message))
	return s.replies[int(h.Sum32())%len(s.replies)], nil
}

func (s *AssistService) GenerateCode(prompt string, projectID *int64) CodeResponse {
	return CodeResponse{
		Code:       fmt.Sprintf("// Generated code based on: %s\n// This would be actual AI-generated code", prompt),
		Language:   "javascript",
		Confidence: 0.95,
		ProjectID:  projectID,
	}
}

func (s *AssistService) Modernize(legacyCode, targetFramework string) ModernizeResponse {
	_ = legacyCode
	return ModernizeResponse{
		ModernizedCode: fmt.Sprintf("// Modernized code for %s\n// This would be actual AI-modernized code", targetFramework),
		Framework:      targetFramework,
		Improvements:   []string{"Updated syntax", "Added TypeScript support", "Improved performance"},
	}
}
