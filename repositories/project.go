package repositories

import (
	"context"

	"slingshot/domain"
)

type IProjectRepository interface {
	// List returns the owner's projects, most recently updated first.
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	// Update applies a partial patch and fails with ErrNotFound on unknown ids.
	Update(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error)
	// Delete is idempotent.
	Delete(ctx context.Context, id int64) error
}
