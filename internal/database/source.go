package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/orgchart/orgchart-backend/internal/database/gensql"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
)

var _ orgchart.Source = (*repo)(nil)

func (r *repo) Organization(ctx context.Context, orgID int64) (*orgchart.Organization, error) {
	org, err := r.querier.GetOrganization(ctx, orgID)
	if err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &orgchart.Organization{ID: org.ID, Name: org.Name}, nil
}

func (r *repo) Project(ctx context.Context, projectID int64) (*orgchart.Project, error) {
	project, err := r.querier.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &orgchart.Project{ID: project.ID, OrganizationID: project.OrganizationID}, nil
}

func (r *repo) People(ctx context.Context, orgID int64) ([]orgchart.Person, error) {
	people, err := r.querier.ListOrganizationPeople(ctx, orgID)
	if err != nil {
		return nil, err
	}

	ret := make([]orgchart.Person, 0, len(people))
	for _, p := range people {
		ret = append(ret, toOrgchartPerson(p))
	}
	return ret, nil
}

func (r *repo) ProjectParticipantIDs(ctx context.Context, projectID int64) ([]int64, error) {
	ids, err := r.querier.ProjectParticipantIDs(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	return nonNil(ids), nil
}

func toOrgchartPerson(p *gensql.Person) orgchart.Person {
	return orgchart.Person{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		FullName:       p.FullName,
		Title:          p.Title,
		ManagerID:      p.ManagerID,
		IsEpcContact:   p.IsEpcContact,
	}
}
