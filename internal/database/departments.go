package database

import (
	"context"
	"fmt"

	"github.com/orgchart/orgchart-backend/internal/database/gensql"
)

type DepartmentRepo interface {
	ListDepartments(ctx context.Context, orgID int64) ([]*gensql.Department, error)
	CreateDepartment(ctx context.Context, arg gensql.CreateDepartmentParams) (*gensql.Department, error)
}

func (r *repo) ListDepartments(ctx context.Context, orgID int64) ([]*gensql.Department, error) {
	if _, err := r.GetOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	departments, err := r.querier.ListDepartments(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing departments for organization %d: %w", orgID, err)
	}
	return nonNil(departments), nil
}

func (r *repo) CreateDepartment(ctx context.Context, arg gensql.CreateDepartmentParams) (*gensql.Department, error) {
	if _, err := r.GetOrganization(ctx, arg.OrganizationID); err != nil {
		return nil, err
	}

	department, err := r.querier.CreateDepartment(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("creating department %q: %w", arg.Name, mapError(err))
	}
	return department, nil
}
