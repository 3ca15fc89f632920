package orgchart_test

import (
	"testing"

	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	alice := person(1, "Alice", strP("CEO"), nil)
	bob := person(2, "Bob", strP("VP"), int64P(1))
	cara := person(3, "Cara", strP("VP"), int64P(1))
	dan := person(4, "Dan", strP("Engineer"), int64P(2))

	t.Run("empty input", func(t *testing.T) {
		tree := orgchart.BuildTree(nil, nil)
		assert.NotNil(t, tree)
		assert.Empty(t, tree)
	})

	t.Run("single root with sorted reports", func(t *testing.T) {
		tree := orgchart.BuildTree([]orgchart.Person{cara, alice, bob}, nil)
		expected := []orgchart.OrgNode{
			{
				ID: 1, Name: "Alice", Title: strP("CEO"),
				Children: []orgchart.OrgNode{
					{ID: 2, Name: "Bob", Title: strP("VP"), Children: []orgchart.OrgNode{}},
					{ID: 3, Name: "Cara", Title: strP("VP"), Children: []orgchart.OrgNode{}},
				},
			},
		}
		assert.Equal(t, expected, tree)
	})

	t.Run("project filter keeps the chain of command", func(t *testing.T) {
		tree := orgchart.BuildTree([]orgchart.Person{alice, bob, cara, dan}, ids(4))
		require.Len(t, tree, 1)
		assert.Equal(t, int64(1), tree[0].ID)
		require.Len(t, tree[0].Children, 1)
		assert.Equal(t, int64(2), tree[0].Children[0].ID)
		require.Len(t, tree[0].Children[0].Children, 1)
		assert.Equal(t, int64(4), tree[0].Children[0].Children[0].ID)
		assert.Empty(t, tree[0].Children[0].Children[0].Children)
		assert.NotContains(t, collectIDs(tree), int64(3))
	})

	t.Run("deep chain is pulled in", func(t *testing.T) {
		people := []orgchart.Person{
			person(1, "Root", nil, nil),
			person(2, "M2", nil, int64P(1)),
			person(3, "M1", nil, int64P(2)),
			person(4, "P", nil, int64P(3)),
			person(5, "Other", nil, int64P(1)),
		}
		tree := orgchart.BuildTree(people, ids(4))
		assert.ElementsMatch(t, []int64{1, 2, 3, 4}, collectIDs(tree))
		require.Len(t, tree, 1)
		assert.Equal(t, []int64{1, 2, 3, 4}, path(tree[0]))
	})

	t.Run("empty participant set yields an empty forest", func(t *testing.T) {
		tree := orgchart.BuildTree([]orgchart.Person{alice, bob}, map[int64]struct{}{})
		assert.NotNil(t, tree)
		assert.Empty(t, tree)
	})

	t.Run("participants outside the organization are ignored", func(t *testing.T) {
		tree := orgchart.BuildTree([]orgchart.Person{alice, bob}, ids(2, 99))
		assert.ElementsMatch(t, []int64{1, 2}, collectIDs(tree))
	})

	t.Run("dangling manager becomes a root", func(t *testing.T) {
		orphan := person(5, "Orphan", strP("Analyst"), int64P(42))
		tree := orgchart.BuildTree([]orgchart.Person{alice, orphan}, nil)
		require.Len(t, tree, 2)
		assert.Equal(t, int64(5), tree[0].ID, "Analyst sorts before CEO")
		assert.Equal(t, int64(1), tree[1].ID)
	})

	t.Run("dangling manager while filtering", func(t *testing.T) {
		orphan := person(5, "Orphan", nil, int64P(42))
		tree := orgchart.BuildTree([]orgchart.Person{alice, orphan}, ids(5))
		require.Len(t, tree, 1)
		assert.Equal(t, int64(5), tree[0].ID)
	})

	t.Run("two person cycle", func(t *testing.T) {
		a := person(10, "A", nil, int64P(11))
		b := person(11, "B", nil, int64P(10))
		tree := orgchart.BuildTree([]orgchart.Person{b, a}, nil)
		require.Len(t, tree, 1)
		assert.Equal(t, int64(10), tree[0].ID)
		require.Len(t, tree[0].Children, 1)
		assert.Equal(t, int64(11), tree[0].Children[0].ID)
		assert.Empty(t, tree[0].Children[0].Children)
	})

	t.Run("cycle below a root does not loop", func(t *testing.T) {
		a := person(10, "A", nil, int64P(11))
		b := person(11, "B", nil, int64P(10))
		tree := orgchart.BuildTree([]orgchart.Person{alice, bob, a, b}, nil)
		all := collectIDs(tree)
		assert.Len(t, all, 4)
		assert.ElementsMatch(t, []int64{1, 2, 10, 11}, all)
	})

	t.Run("cycle with project filter terminates", func(t *testing.T) {
		a := person(10, "A", nil, int64P(11))
		b := person(11, "B", nil, int64P(12))
		c := person(12, "C", nil, int64P(10))
		tree := orgchart.BuildTree([]orgchart.Person{a, b, c}, ids(10))
		assert.ElementsMatch(t, []int64{10, 11, 12}, collectIDs(tree))
		require.Len(t, tree, 1)
	})

	t.Run("self managed person", func(t *testing.T) {
		self := person(7, "Self", nil, int64P(7))
		tree := orgchart.BuildTree([]orgchart.Person{self}, nil)
		require.Len(t, tree, 1)
		assert.Equal(t, int64(7), tree[0].ID)
		assert.Empty(t, tree[0].Children)
	})

	t.Run("missing title sorts first and ties keep input order", func(t *testing.T) {
		people := []orgchart.Person{
			person(1, "Boss", nil, nil),
			person(2, "Zed", strP("Engineer"), int64P(1)),
			person(3, "Sam", strP("Engineer"), int64P(1)),
			person(4, "Sam", strP("Engineer"), int64P(1)),
			person(5, "Yan", nil, int64P(1)),
			person(6, "Amy", strP(""), int64P(1)),
		}
		tree := orgchart.BuildTree(people, nil)
		require.Len(t, tree, 1)
		got := []int64{}
		for _, c := range tree[0].Children {
			got = append(got, c.ID)
		}
		assert.Equal(t, []int64{6, 5, 3, 4, 2}, got)
	})

	t.Run("every visible person appears exactly once", func(t *testing.T) {
		people := []orgchart.Person{
			alice, bob, cara, dan,
			person(5, "E", nil, int64P(3)),
			person(6, "F", nil, int64P(99)),
			person(7, "G", nil, int64P(8)),
			person(8, "H", nil, int64P(7)),
			person(9, "I", nil, int64P(8)),
		}
		tree := orgchart.BuildTree(people, nil)
		all := collectIDs(tree)
		assert.Len(t, all, len(people))
		assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, all)
		assert.Equal(t, []int64{6, 1, 7}, rootIDs(tree))
		assert.Equal(t, []int64{7, 8, 9}, path(tree[2]))
	})

	t.Run("report of a cycle stays below its manager", func(t *testing.T) {
		people := []orgchart.Person{
			person(7, "G", nil, int64P(8)),
			person(8, "H", nil, int64P(7)),
			person(9, "Aaron", nil, int64P(8)),
		}
		expected := []orgchart.OrgNode{
			{
				ID: 7, Name: "G",
				Children: []orgchart.OrgNode{
					{
						ID: 8, Name: "H",
						Children: []orgchart.OrgNode{
							{ID: 9, Name: "Aaron", Children: []orgchart.OrgNode{}},
						},
					},
				},
			},
		}
		assert.Equal(t, expected, orgchart.BuildTree(people, nil))
		assert.Equal(t, expected, orgchart.BuildTree(people, ids(9)))
	})

	t.Run("chain below a cycle", func(t *testing.T) {
		people := []orgchart.Person{
			person(1, "Zoe", nil, int64P(2)),
			person(2, "Yan", nil, int64P(1)),
			person(3, "Bea", nil, int64P(2)),
			person(4, "Abe", nil, int64P(3)),
		}
		tree := orgchart.BuildTree(people, nil)
		require.Len(t, tree, 1)
		assert.Equal(t, int64(2), tree[0].ID)
		assert.Equal(t, []int64{2, 3, 4}, path(tree[0]))
		assert.ElementsMatch(t, []int64{1, 2, 3, 4}, collectIDs(tree))
	})

	t.Run("separate cycles get a root each", func(t *testing.T) {
		people := []orgchart.Person{
			person(1, "Cy", nil, int64P(2)),
			person(2, "Di", nil, int64P(1)),
			person(3, "Al", nil, int64P(2)),
			person(4, "Ed", nil, int64P(5)),
			person(5, "Fa", nil, int64P(4)),
			person(6, "Bo", nil, int64P(5)),
		}
		tree := orgchart.BuildTree(people, nil)
		assert.Equal(t, []int64{1, 4}, rootIDs(tree))
		assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6}, collectIDs(tree))
	})

	t.Run("building twice gives the same tree", func(t *testing.T) {
		people := []orgchart.Person{dan, cara, bob, alice}
		assert.Equal(t, orgchart.BuildTree(people, ids(4)), orgchart.BuildTree(people, ids(4)))
		assert.Equal(t, orgchart.BuildTree(people, nil), orgchart.BuildTree(people, nil))
	})

	t.Run("input is not modified", func(t *testing.T) {
		people := []orgchart.Person{cara, bob, alice}
		orgchart.BuildTree(people, nil)
		assert.Equal(t, []orgchart.Person{cara, bob, alice}, people)
	})
}

func TestFlatten(t *testing.T) {
	t.Run("no people", func(t *testing.T) {
		flat := orgchart.Flatten(nil)
		assert.NotNil(t, flat)
		assert.Empty(t, flat)
	})

	t.Run("keeps input order and manager ids", func(t *testing.T) {
		flat := orgchart.Flatten([]orgchart.Person{
			person(2, "Bob", strP("VP"), int64P(1)),
			person(1, "Alice", nil, nil),
			person(3, "Orphan", nil, int64P(42)),
		})
		assert.Equal(t, []orgchart.FlatNode{
			{ID: 2, Name: "Bob", Title: strP("VP"), ManagerID: int64P(1)},
			{ID: 1, Name: "Alice"},
			{ID: 3, Name: "Orphan", ManagerID: int64P(42)},
		}, flat)
	})
}

func person(id int64, name string, title *string, managerID *int64) orgchart.Person {
	return orgchart.Person{ID: id, OrganizationID: 1, FullName: name, Title: title, ManagerID: managerID}
}

func ids(v ...int64) map[int64]struct{} {
	ret := make(map[int64]struct{}, len(v))
	for _, id := range v {
		ret[id] = struct{}{}
	}
	return ret
}

func collectIDs(nodes []orgchart.OrgNode) []int64 {
	ret := []int64{}
	for _, n := range nodes {
		ret = append(ret, n.ID)
		ret = append(ret, collectIDs(n.Children)...)
	}
	return ret
}

func rootIDs(nodes []orgchart.OrgNode) []int64 {
	ret := []int64{}
	for _, n := range nodes {
		ret = append(ret, n.ID)
	}
	return ret
}

// path follows the first child at every level
func path(n orgchart.OrgNode) []int64 {
	ret := []int64{n.ID}
	for len(n.Children) > 0 {
		n = n.Children[0]
		ret = append(ret, n.ID)
	}
	return ret
}

func strP(s string) *string {
	return &s
}

func int64P(i int64) *int64 {
	return &i
}
