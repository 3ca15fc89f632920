package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/orgchart/orgchart-backend/internal/database/gensql"
)

type ProjectRepo interface {
	ListProjects(ctx context.Context, orgID *int64) ([]*gensql.Project, error)
	GetProject(ctx context.Context, id int64) (*gensql.Project, error)
	CreateProject(ctx context.Context, arg gensql.CreateProjectParams) (*gensql.Project, error)
	UpdateProject(ctx context.Context, arg gensql.UpdateProjectParams) (*gensql.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

func (r *repo) ListProjects(ctx context.Context, orgID *int64) ([]*gensql.Project, error) {
	projects, err := r.querier.ListProjects(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return nonNil(projects), nil
}

func (r *repo) GetProject(ctx context.Context, id int64) (*gensql.Project, error) {
	project, err := r.querier.GetProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting project %d: %w", id, mapError(err))
	}
	return project, nil
}

func (r *repo) CreateProject(ctx context.Context, arg gensql.CreateProjectParams) (*gensql.Project, error) {
	if arg.ProjectType == "" {
		arg.ProjectType = gensql.ProjectTypeProject
	}

	if _, err := r.querier.GetOrganization(ctx, arg.OrganizationID); err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return nil, ErrInvalidOrganization
		}
		return nil, fmt.Errorf("getting organization %d: %w", arg.OrganizationID, err)
	}

	if err := r.checkMember(ctx, arg.OrganizationID, arg.EpcContactPersonID); err != nil {
		return nil, err
	}

	project, err := r.querier.CreateProject(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("creating project %q: %w", arg.Name, mapError(err))
	}
	return project, nil
}

func (r *repo) UpdateProject(ctx context.Context, arg gensql.UpdateProjectParams) (*gensql.Project, error) {
	existing, err := r.GetProject(ctx, arg.ID)
	if err != nil {
		return nil, err
	}

	if arg.ProjectType == "" {
		arg.ProjectType = existing.ProjectType
	}

	if err := r.checkMember(ctx, existing.OrganizationID, arg.EpcContactPersonID); err != nil {
		return nil, err
	}

	project, err := r.querier.UpdateProject(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("updating project %d: %w", arg.ID, mapError(err))
	}
	return project, nil
}

func (r *repo) DeleteProject(ctx context.Context, id int64) error {
	n, err := r.querier.DeleteProject(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting project %d: %w", id, mapError(err))
	}
	if n == 0 {
		return fmt.Errorf("deleting project %d: %w", id, ErrNotFound)
	}
	return nil
}

// checkMember returns ErrInvalidPerson unless personID is nil or a person in the organization
func (r *repo) checkMember(ctx context.Context, orgID int64, personID *int64) error {
	if personID == nil {
		return nil
	}

	person, err := r.querier.GetPerson(ctx, *personID)
	if err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return ErrInvalidPerson
		}
		return fmt.Errorf("getting person %d: %w", *personID, err)
	}
	if person.OrganizationID != orgID {
		return ErrInvalidPerson
	}
	return nil
}
