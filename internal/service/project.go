package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// ProjectService manages portfolio projects.
type ProjectService struct {
	projects repository.ProjectRepository
	log      *zap.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(projects repository.ProjectRepository, log *zap.Logger) *ProjectService {
	return &ProjectService{projects: projects, log: log}
}

// List returns projects, optionally restricted to visible ones.
func (s *ProjectService) List(ctx context.Context, visibleOnly bool) ([]domain.Project, error) {
	return s.projects.List(ctx, visibleOnly)
}

// Get returns one project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.projects.Get(ctx, oid)
}

// Create stores a new project.
func (s *ProjectService) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	return s.projects.Insert(ctx, project)
}

// Update replaces an existing project.
func (s *ProjectService) Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.projects.Update(ctx, oid, project)
}

// Delete removes a project. Analytics events referencing it are kept; the
// dashboard excludes references that no longer resolve.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.projects.Delete(ctx, oid)
}
