package database

import (
	"context"
	"fmt"

	"github.com/orgchart/orgchart-backend/internal/database/gensql"
)

type AssignmentRepo interface {
	ListAssignments(ctx context.Context, projectID int64) ([]*gensql.ListAssignmentsRow, error)
	CreateAssignment(ctx context.Context, arg gensql.CreateAssignmentParams) (*gensql.ProjectAssignment, error)
	DeleteAssignment(ctx context.Context, projectID, id int64) error
}

func (r *repo) ListAssignments(ctx context.Context, projectID int64) ([]*gensql.ListAssignmentsRow, error) {
	if _, err := r.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	assignments, err := r.querier.ListAssignments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments for project %d: %w", projectID, err)
	}
	return nonNil(assignments), nil
}

func (r *repo) CreateAssignment(ctx context.Context, arg gensql.CreateAssignmentParams) (*gensql.ProjectAssignment, error) {
	project, err := r.GetProject(ctx, arg.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := r.checkMember(ctx, project.OrganizationID, &arg.PersonID); err != nil {
		return nil, err
	}

	assignment, err := r.querier.CreateAssignment(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("assigning person %d to project %d: %w", arg.PersonID, arg.ProjectID, mapError(err))
	}
	return assignment, nil
}

func (r *repo) DeleteAssignment(ctx context.Context, projectID, id int64) error {
	n, err := r.querier.DeleteAssignment(ctx, gensql.DeleteAssignmentParams{
		ProjectID: projectID,
		ID:        id,
	})
	if err != nil {
		return fmt.Errorf("deleting assignment %d: %w", id, mapError(err))
	}
	if n == 0 {
		return fmt.Errorf("deleting assignment %d: %w", id, ErrNotFound)
	}
	return nil
}
