package domain

import "time"

// Agent kinds. The records only describe agents, execution is external.
const (
	AgentCodeGenerator  = "code_generator"
	AgentTestAutomation = "test_automation"
	AgentCodeReview     = "code_review"
	AgentDocumentation  = "documentation"
)

// Agent statuses.
const (
	AgentActive  = "active"
	AgentRunning = "running"
	AgentPending = "pending"
	AgentIdle    = "idle"
)

type Agent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	ProjectID   *int64    `json:"projectId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AgentPatch carries a partial update; nil fields are left untouched.
type AgentPatch struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	ProjectID   *int64  `json:"projectId"`
}
