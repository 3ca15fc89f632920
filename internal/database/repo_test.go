package database

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRepo(t *testing.T) (*repo, *MockQuerier) {
	querier := NewMockQuerier(t)
	log, _ := test.NewNullLogger()
	return &repo{querier: querier, log: log}, querier
}

func ptr[T any](v T) *T {
	return &v
}

func TestMapError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, mapError(nil))
	})

	t.Run("no rows", func(t *testing.T) {
		assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)
	})

	t.Run("unique violation", func(t *testing.T) {
		err := mapError(&pgconn.PgError{Code: "23505", ConstraintName: "people_organization_id_email_key"})
		assert.ErrorIs(t, err, ErrConflict)
		assert.EqualError(t, err, "conflict: people_organization_id_email_key")
	})

	t.Run("other database error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		assert.Equal(t, pgErr, mapError(pgErr))
	})
}

func TestContainsID(t *testing.T) {
	assert.True(t, containsID([]int64{1, 2, 3}, 2))
	assert.False(t, containsID([]int64{1, 2, 3}, 4))
	assert.False(t, containsID(nil, 1))
}

func TestImportErrorMessage(t *testing.T) {
	assert.Equal(t, "a person with this email already exists in the organization", importErrorMessage(ErrConflict))
	assert.Equal(t, "database error", importErrorMessage(errors.Join(errors.New("person"), &pgconn.PgError{Code: "08006"})))
	assert.Equal(t, "some error", importErrorMessage(errors.New("some error")))
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))
	assert.Equal(t, "x", *optional("x"))
}

func TestRepo_Source(t *testing.T) {
	ctx := context.Background()

	t.Run("missing organization", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(nil, pgx.ErrNoRows)

		org, err := r.Organization(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, org)
	})

	t.Run("organization lookup fails", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(nil, errors.New("boom"))

		org, err := r.Organization(ctx, 1)
		assert.EqualError(t, err, "boom")
		assert.Nil(t, org)
	})

	t.Run("project", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetProject(ctx, int64(3)).Return(&gensql.Project{ID: 3, OrganizationID: 1}, nil)

		project, err := r.Project(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, &orgchart.Project{ID: 3, OrganizationID: 1}, project)
	})

	t.Run("people", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().ListOrganizationPeople(ctx, int64(1)).Return([]*gensql.Person{
			{ID: 1, OrganizationID: 1, FullName: "Ada", Title: ptr("CEO"), Email: ptr("ada@example.com")},
			{ID: 2, OrganizationID: 1, FullName: "Bob", ManagerID: ptr(int64(1)), IsEpcContact: true},
		}, nil)

		people, err := r.People(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, []orgchart.Person{
			{ID: 1, OrganizationID: 1, FullName: "Ada", Title: ptr("CEO")},
			{ID: 2, OrganizationID: 1, FullName: "Bob", ManagerID: ptr(int64(1)), IsEpcContact: true},
		}, people)
	})

	t.Run("no participants", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().ProjectParticipantIDs(ctx, int64(3)).Return(nil, nil)

		ids, err := r.ProjectParticipantIDs(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, []int64{}, ids)
	})
}

func TestRepo_CreatePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown organization", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(nil, pgx.ErrNoRows)

		_, err := r.CreatePerson(ctx, gensql.CreatePersonParams{OrganizationID: 1, FullName: "Ada"})
		assert.ErrorIs(t, err, ErrInvalidOrganization)
	})

	t.Run("department in another organization", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(&gensql.Organization{ID: 1}, nil)
		querier.EXPECT().GetDepartment(ctx, int64(5)).Return(&gensql.Department{ID: 5, OrganizationID: 2}, nil)

		_, err := r.CreatePerson(ctx, gensql.CreatePersonParams{OrganizationID: 1, FullName: "Ada", DepartmentID: ptr(int64(5))})
		assert.ErrorIs(t, err, ErrInvalidDepartment)
	})

	t.Run("unknown manager", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(&gensql.Organization{ID: 1}, nil)
		querier.EXPECT().GetPerson(ctx, int64(9)).Return(nil, pgx.ErrNoRows)

		_, err := r.CreatePerson(ctx, gensql.CreatePersonParams{OrganizationID: 1, FullName: "Ada", ManagerID: ptr(int64(9))})
		assert.ErrorIs(t, err, ErrInvalidManager)
	})

	t.Run("manager in another organization", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(&gensql.Organization{ID: 1}, nil)
		querier.EXPECT().GetPerson(ctx, int64(9)).Return(&gensql.Person{ID: 9, OrganizationID: 2}, nil)

		_, err := r.CreatePerson(ctx, gensql.CreatePersonParams{OrganizationID: 1, FullName: "Ada", ManagerID: ptr(int64(9))})
		assert.ErrorIs(t, err, ErrInvalidManager)
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(&gensql.Organization{ID: 1}, nil)
		querier.EXPECT().CreatePerson(ctx, mock.Anything).Return(nil, &pgconn.PgError{Code: "23505"})

		_, err := r.CreatePerson(ctx, gensql.CreatePersonParams{OrganizationID: 1, FullName: "Ada", Email: ptr("ada@example.com")})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("created", func(t *testing.T) {
		r, querier := newTestRepo(t)
		arg := gensql.CreatePersonParams{OrganizationID: 1, FullName: "Bob", ManagerID: ptr(int64(9))}
		querier.EXPECT().GetOrganization(ctx, int64(1)).Return(&gensql.Organization{ID: 1}, nil)
		querier.EXPECT().GetPerson(ctx, int64(9)).Return(&gensql.Person{ID: 9, OrganizationID: 1}, nil)
		querier.EXPECT().CreatePerson(ctx, arg).Return(&gensql.Person{ID: 10, OrganizationID: 1, FullName: "Bob", ManagerID: ptr(int64(9))}, nil)

		person, err := r.CreatePerson(ctx, arg)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), person.ID)
	})
}

func TestRepo_ListPeople(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		filter        PeopleFilter
		limit, offset int32
	}{
		{name: "all", filter: PeopleFilter{}, limit: math.MaxInt32, offset: 0},
		{name: "page", filter: PeopleFilter{Limit: 10, Offset: 20}, limit: 10, offset: 20},
		{name: "offset past int32 stays past the end", filter: PeopleFilter{Limit: 10, Offset: 3_000_000_000}, limit: 10, offset: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, querier := newTestRepo(t)
			querier.EXPECT().ListPeople(ctx, gensql.ListPeopleParams{LimitRows: tt.limit, OffsetRows: tt.offset}).Return(nil, nil)
			querier.EXPECT().CountPeople(ctx, gensql.CountPeopleParams{}).Return(int64(4), nil)

			people, total, err := r.ListPeople(ctx, tt.filter)
			assert.NoError(t, err)
			assert.Empty(t, people)
			assert.NotNil(t, people)
			assert.Equal(t, int64(4), total)
		})
	}
}

func TestRepo_checkPersonReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("manager reports to the person", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetPerson(ctx, int64(3)).Return(&gensql.Person{ID: 3, OrganizationID: 1}, nil)
		querier.EXPECT().ManagerChain(ctx, int64(3)).Return([]int64{3, 2, 1}, nil)

		err := r.checkPersonReferences(ctx, 1, ptr(int64(1)), nil, ptr(int64(3)))
		assert.ErrorIs(t, err, ErrManagerCycle)
	})

	t.Run("self as manager", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetPerson(ctx, int64(1)).Return(&gensql.Person{ID: 1, OrganizationID: 1}, nil)
		querier.EXPECT().ManagerChain(ctx, int64(1)).Return([]int64{1}, nil)

		err := r.checkPersonReferences(ctx, 1, ptr(int64(1)), nil, ptr(int64(1)))
		assert.ErrorIs(t, err, ErrManagerCycle)
	})

	t.Run("no cycle", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetPerson(ctx, int64(2)).Return(&gensql.Person{ID: 2, OrganizationID: 1}, nil)
		querier.EXPECT().ManagerChain(ctx, int64(2)).Return([]int64{2, 1}, nil)

		assert.NoError(t, r.checkPersonReferences(ctx, 1, ptr(int64(3)), nil, ptr(int64(2))))
	})
}

func TestRepo_Deletes(t *testing.T) {
	ctx := context.Background()

	t.Run("missing organization", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().DeleteOrganization(ctx, int64(1)).Return(0, nil)
		assert.ErrorIs(t, r.DeleteOrganization(ctx, 1), ErrNotFound)
	})

	t.Run("assignment in another project", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().DeleteAssignment(ctx, gensql.DeleteAssignmentParams{ProjectID: 1, ID: 7}).Return(0, nil)
		assert.ErrorIs(t, r.DeleteAssignment(ctx, 1, 7), ErrNotFound)
	})

	t.Run("deleted person", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().DeletePerson(ctx, int64(4)).Return(1, nil)
		assert.NoError(t, r.DeletePerson(ctx, 4))
	})
}

func TestRepo_CreateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("person in another organization", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetProject(ctx, int64(3)).Return(&gensql.Project{ID: 3, OrganizationID: 1}, nil)
		querier.EXPECT().GetPerson(ctx, int64(8)).Return(&gensql.Person{ID: 8, OrganizationID: 2}, nil)

		_, err := r.CreateAssignment(ctx, gensql.CreateAssignmentParams{ProjectID: 3, PersonID: 8})
		assert.ErrorIs(t, err, ErrInvalidPerson)
	})

	t.Run("missing project", func(t *testing.T) {
		r, querier := newTestRepo(t)
		querier.EXPECT().GetProject(ctx, int64(3)).Return(nil, pgx.ErrNoRows)

		_, err := r.CreateAssignment(ctx, gensql.CreateAssignmentParams{ProjectID: 3, PersonID: 8})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepo_CreateProject(t *testing.T) {
	ctx := context.Background()
	r, querier := newTestRepo(t)
	querier.EXPECT().GetOrganization(ctx, int64(1)).Return(&gensql.Organization{ID: 1}, nil)
	querier.EXPECT().CreateProject(ctx, gensql.CreateProjectParams{OrganizationID: 1, Name: "Apollo", ProjectType: gensql.ProjectTypeProject}).
		Return(&gensql.Project{ID: 3, OrganizationID: 1, Name: "Apollo", ProjectType: gensql.ProjectTypeProject}, nil)

	project, err := r.CreateProject(ctx, gensql.CreateProjectParams{OrganizationID: 1, Name: "Apollo"})
	assert.NoError(t, err)
	assert.Equal(t, gensql.ProjectTypeProject, project.ProjectType)
}
