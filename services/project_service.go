package services

import (
	"context"
	"strings"

	"slingshot/domain"
	"slingshot/errors"
	"slingshot/repositories"
)

type IProjectService interface {
	ListProjects(ctx context.Context, ownerID string) ([]domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type ProjectService struct {
	projects repositories.IProjectRepository
}

func NewProjectService(projects repositories.IProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) ListProjects(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return s.projects.List(ctx, ownerID)
}

func (s *ProjectService) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	if strings.TrimSpace(project.Name) == "" {
		return domain.Project{}, errors.ErrEmptyName
	}
	return s.projects.Create(ctx, project)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error) {
	return s.projects.Update(ctx, id, patch)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.projects.Delete(ctx, id)
}
