package database

import (
	"context"
	"fmt"
	"time"

	"github.com/orgchart/orgchart-backend/internal/database/gensql"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
)

type OrganizationRepo interface {
	ListOrganizations(ctx context.Context) ([]*gensql.Organization, error)
	GetOrganization(ctx context.Context, id int64) (*gensql.Organization, error)
	CreateOrganization(ctx context.Context, arg gensql.CreateOrganizationParams) (*gensql.Organization, error)
	UpdateOrganization(ctx context.Context, arg gensql.UpdateOrganizationParams) (*gensql.Organization, error)
	DeleteOrganization(ctx context.Context, id int64) error
	ExportOrganization(ctx context.Context, id int64) (*Export, error)
}

// Export is the account brief of an organization
type Export struct {
	Organization *gensql.Organization `json:"organization"`
	Departments  []*gensql.Department `json:"departments"`
	People       []*gensql.Person     `json:"people"`
	Projects     []*gensql.Project    `json:"projects"`
	Hierarchy    []orgchart.OrgNode   `json:"hierarchy"`
	ExportedAt   time.Time            `json:"exportedAt"`
}

func (r *repo) ListOrganizations(ctx context.Context) ([]*gensql.Organization, error) {
	orgs, err := r.querier.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return nonNil(orgs), nil
}

func (r *repo) GetOrganization(ctx context.Context, id int64) (*gensql.Organization, error) {
	org, err := r.querier.GetOrganization(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting organization %d: %w", id, mapError(err))
	}
	return org, nil
}

func (r *repo) CreateOrganization(ctx context.Context, arg gensql.CreateOrganizationParams) (*gensql.Organization, error) {
	org, err := r.querier.CreateOrganization(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("creating organization %q: %w", arg.Name, mapError(err))
	}
	return org, nil
}

func (r *repo) UpdateOrganization(ctx context.Context, arg gensql.UpdateOrganizationParams) (*gensql.Organization, error) {
	org, err := r.querier.UpdateOrganization(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("updating organization %d: %w", arg.ID, mapError(err))
	}
	return org, nil
}

func (r *repo) DeleteOrganization(ctx context.Context, id int64) error {
	n, err := r.querier.DeleteOrganization(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting organization %d: %w", id, mapError(err))
	}
	if n == 0 {
		return fmt.Errorf("deleting organization %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *repo) ExportOrganization(ctx context.Context, id int64) (*Export, error) {
	var export *Export
	err := r.TxFunc(ctx, func(tx Repo) error {
		org, err := tx.GetOrganization(ctx, id)
		if err != nil {
			return err
		}

		departments, err := tx.ListDepartments(ctx, id)
		if err != nil {
			return err
		}

		people, _, err := tx.ListPeople(ctx, PeopleFilter{OrganizationID: &id})
		if err != nil {
			return err
		}

		projects, err := tx.ListProjects(ctx, &id)
		if err != nil {
			return err
		}

		snapshot := make([]orgchart.Person, 0, len(people))
		for _, p := range people {
			snapshot = append(snapshot, toOrgchartPerson(p))
		}

		export = &Export{
			Organization: org,
			Departments:  departments,
			People:       people,
			Projects:     projects,
			Hierarchy:    orgchart.BuildTree(snapshot, nil),
			ExportedAt:   time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return export, nil
}

// nonNil returns an empty slice instead of nil so that lists encode as []
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
