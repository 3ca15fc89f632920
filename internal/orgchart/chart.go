package orgchart

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrProjectNotFound      = errors.New("project not found")
)

// Organization identifies the organization a chart was built for
type Organization struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Project is the part of a project the chart service needs to scope a chart
type Project struct {
	ID             int64
	OrganizationID int64
}

// Source provides snapshots of the stored data. Lookups of missing organizations and projects return nil without
// an error.
type Source interface {
	Organization(ctx context.Context, orgID int64) (*Organization, error)
	Project(ctx context.Context, projectID int64) (*Project, error)
	People(ctx context.Context, orgID int64) ([]Person, error)
	ProjectParticipantIDs(ctx context.Context, projectID int64) ([]int64, error)
}

// ChartNode is an OrgNode decorated with data the tree builder does not know about
type ChartNode struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Title        *string     `json:"title"`
	IsEpcContact bool        `json:"isEpcContact"`
	Children     []ChartNode `json:"children"`
}

type Chart struct {
	Organization Organization `json:"organization"`
	Tree         []ChartNode  `json:"tree"`
}

type Service struct {
	source Source
	log    logrus.FieldLogger
}

func NewService(source Source, log logrus.FieldLogger) *Service {
	return &Service{
		source: source,
		log:    log,
	}
}

// Chart returns the reporting tree of an organization, optionally limited to the participants of a project
func (s *Service) Chart(ctx context.Context, orgID int64, projectID *int64) (*Chart, error) {
	org, err := s.organization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	var participants map[int64]struct{}
	if projectID != nil {
		participants, err = s.participants(ctx, orgID, *projectID)
		if err != nil {
			return nil, err
		}
	}

	people, err := s.source.People(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("getting people for organization %d: %w", orgID, err)
	}

	tree := BuildTree(people, participants)

	log := s.log.WithFields(logrus.Fields{
		"organization_id": orgID,
		"people":          len(people),
		"visible":         countNodes(tree),
	})
	if projectID != nil {
		log = log.WithField("project_id", *projectID)
	}
	log.Debugf("built org chart with %d root(s)", len(tree))

	epc := make(map[int64]bool, len(people))
	for _, p := range people {
		epc[p.ID] = p.IsEpcContact
	}

	return &Chart{
		Organization: *org,
		Tree:         decorate(tree, epc),
	}, nil
}

// Flat returns every person of an organization without nesting
func (s *Service) Flat(ctx context.Context, orgID int64) ([]FlatNode, error) {
	if _, err := s.organization(ctx, orgID); err != nil {
		return nil, err
	}

	people, err := s.source.People(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("getting people for organization %d: %w", orgID, err)
	}

	return Flatten(people), nil
}

func (s *Service) organization(ctx context.Context, orgID int64) (*Organization, error) {
	org, err := s.source.Organization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("getting organization %d: %w", orgID, err)
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (s *Service) participants(ctx context.Context, orgID, projectID int64) (map[int64]struct{}, error) {
	project, err := s.source.Project(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("getting project %d: %w", projectID, err)
	}
	if project == nil || project.OrganizationID != orgID {
		return nil, ErrProjectNotFound
	}

	ids, err := s.source.ProjectParticipantIDs(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("getting participants for project %d: %w", projectID, err)
	}

	ret := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		ret[id] = struct{}{}
	}
	return ret, nil
}

func countNodes(nodes []OrgNode) int {
	n := len(nodes)
	for _, node := range nodes {
		n += countNodes(node.Children)
	}
	return n
}

func decorate(nodes []OrgNode, epc map[int64]bool) []ChartNode {
	ret := make([]ChartNode, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, ChartNode{
			ID:           n.ID,
			Name:         n.Name,
			Title:        n.Title,
			IsEpcContact: epc[n.ID],
			Children:     decorate(n.Children, epc),
		})
	}
	return ret
}
