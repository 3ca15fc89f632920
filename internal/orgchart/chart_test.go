package orgchart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Chart(t *testing.T) {
	ctx := context.Background()
	log, _ := test.NewNullLogger()
	acme := &orgchart.Organization{ID: 1, Name: "Acme"}
	people := []orgchart.Person{
		{ID: 1, OrganizationID: 1, FullName: "Alice", Title: strP("CEO")},
		{ID: 2, OrganizationID: 1, FullName: "Bob", Title: strP("VP"), ManagerID: int64P(1), IsEpcContact: true},
		{ID: 3, OrganizationID: 1, FullName: "Cara", Title: strP("VP"), ManagerID: int64P(1)},
		{ID: 4, OrganizationID: 1, FullName: "Dan", Title: strP("Engineer"), ManagerID: int64P(2)},
	}

	t.Run("unknown organization", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(9)).Return(nil, nil)

		chart, err := orgchart.NewService(source, log).Chart(ctx, 9, nil)
		assert.Nil(t, chart)
		assert.ErrorIs(t, err, orgchart.ErrOrganizationNotFound)
	})

	t.Run("source error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(nil, boom)

		_, err := orgchart.NewService(source, log).Chart(ctx, 1, nil)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, orgchart.ErrOrganizationNotFound)
	})

	t.Run("whole organization", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(acme, nil)
		source.EXPECT().People(ctx, int64(1)).Return(people, nil)

		chart, err := orgchart.NewService(source, log).Chart(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, orgchart.Organization{ID: 1, Name: "Acme"}, chart.Organization)
		require.Len(t, chart.Tree, 1)

		root := chart.Tree[0]
		assert.Equal(t, "Alice", root.Name)
		assert.False(t, root.IsEpcContact)
		require.Len(t, root.Children, 2)
		assert.Equal(t, "Bob", root.Children[0].Name)
		assert.True(t, root.Children[0].IsEpcContact)
		require.Len(t, root.Children[0].Children, 1)
		assert.Equal(t, "Dan", root.Children[0].Children[0].Name)
		assert.NotNil(t, root.Children[0].Children[0].Children)
	})

	t.Run("project in another organization", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(acme, nil)
		source.EXPECT().Project(ctx, int64(5)).Return(&orgchart.Project{ID: 5, OrganizationID: 2}, nil)

		_, err := orgchart.NewService(source, log).Chart(ctx, 1, int64P(5))
		assert.ErrorIs(t, err, orgchart.ErrProjectNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(acme, nil)
		source.EXPECT().Project(ctx, int64(5)).Return(nil, nil)

		_, err := orgchart.NewService(source, log).Chart(ctx, 1, int64P(5))
		assert.ErrorIs(t, err, orgchart.ErrProjectNotFound)
	})

	t.Run("project scoped chart", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(acme, nil)
		source.EXPECT().Project(ctx, int64(5)).Return(&orgchart.Project{ID: 5, OrganizationID: 1}, nil)
		source.EXPECT().ProjectParticipantIDs(ctx, int64(5)).Return([]int64{4}, nil)
		source.EXPECT().People(ctx, int64(1)).Return(people, nil)

		chart, err := orgchart.NewService(source, log).Chart(ctx, 1, int64P(5))
		require.NoError(t, err)
		require.Len(t, chart.Tree, 1)
		require.Len(t, chart.Tree[0].Children, 1)
		assert.Equal(t, int64(2), chart.Tree[0].Children[0].ID)
	})

	t.Run("project without participants", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(acme, nil)
		source.EXPECT().Project(ctx, int64(5)).Return(&orgchart.Project{ID: 5, OrganizationID: 1}, nil)
		source.EXPECT().ProjectParticipantIDs(ctx, int64(5)).Return(nil, nil)
		source.EXPECT().People(ctx, int64(1)).Return(people, nil)

		chart, err := orgchart.NewService(source, log).Chart(ctx, 1, int64P(5))
		require.NoError(t, err)
		assert.NotNil(t, chart.Tree)
		assert.Empty(t, chart.Tree)
	})

	t.Run("logs the build at debug level", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(acme, nil)
		source.EXPECT().People(ctx, int64(1)).Return(people, nil)

		_, err := orgchart.NewService(source, logger).Chart(ctx, 1, nil)
		require.NoError(t, err)
		require.Len(t, hook.Entries, 1)
		assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
		assert.Equal(t, int64(1), hook.LastEntry().Data["organization_id"])
	})
}

func TestService_Flat(t *testing.T) {
	ctx := context.Background()
	log, _ := test.NewNullLogger()

	t.Run("unknown organization", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(3)).Return(nil, nil)

		_, err := orgchart.NewService(source, log).Flat(ctx, 3)
		assert.ErrorIs(t, err, orgchart.ErrOrganizationNotFound)
	})

	t.Run("flat list", func(t *testing.T) {
		source := orgchart.NewMockSource(t)
		source.EXPECT().Organization(ctx, int64(1)).Return(&orgchart.Organization{ID: 1, Name: "Acme"}, nil)
		source.EXPECT().People(ctx, int64(1)).Return([]orgchart.Person{
			{ID: 1, FullName: "Alice"},
			{ID: 2, FullName: "Bob", ManagerID: int64P(1)},
		}, nil)

		flat, err := orgchart.NewService(source, log).Flat(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []orgchart.FlatNode{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob", ManagerID: int64P(1)},
		}, flat)
	})
}
