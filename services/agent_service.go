package services

import (
	"context"
	"strings"

	"slingshot/domain"
	"slingshot/errors"
	"slingshot/repositories"
)

type IAgentService interface {
	ListAgents(ctx context.Context, projectID *int64) ([]domain.Agent, error)
	CreateAgent(ctx context.Context, agent domain.Agent) (domain.Agent, error)
	UpdateAgent(ctx context.Context, id int64, patch domain.AgentPatch) (domain.Agent, error)
	DeleteAgent(ctx context.Context, id int64) error
}

type AgentService struct {
	agents repositories.IAgentRepository
}

func NewAgentService(agents repositories.IAgentRepository) *AgentService {
	return &AgentService{agents: agents}
}

func (s *AgentService) ListAgents(ctx context.Context, projectID *int64) ([]domain.Agent, error) {
	return s.agents.List(ctx, projectID)
}

func (s *AgentService) CreateAgent(ctx context.Context, agent domain.Agent) (domain.Agent, error) {
	if strings.TrimSpace(agent.Name) == "" || strings.TrimSpace(agent.Type) == "" {
		return domain.Agent{}, errors.ErrEmptyName
	}
	return s.agents.Create(ctx, agent)
}

func (s *AgentService) UpdateAgent(ctx context.Context, id int64, patch domain.AgentPatch) (domain.Agent, error) {
	return s.agents.Update(ctx, id, patch)
}

func (s *AgentService) DeleteAgent(ctx context.Context, id int64) error {
	return s.agents.Delete(ctx, id)
}
