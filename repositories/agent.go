package repositories

import (
	"context"

	"slingshot/domain"
)

type IAgentRepository interface {
	// List returns agents, optionally filtered to one project; the unfiltered
	// listing is ordered by most recent update.
	List(ctx context.Context, projectID *int64) ([]domain.Agent, error)
	Create(ctx context.Context, agent domain.Agent) (domain.Agent, error)
	Update(ctx context.Context, id int64, patch domain.AgentPatch) (domain.Agent, error)
	Delete(ctx context.Context, id int64) error
}
