package orgchart

import "sort"

// Person is the read-only view of a person the tree builder works on
type Person struct {
	ID             int64
	OrganizationID int64
	FullName       string
	Title          *string
	ManagerID      *int64
	IsEpcContact   bool
}

// OrgNode is a person placed in the reporting tree
type OrgNode struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Title    *string   `json:"title"`
	Children []OrgNode `json:"children"`
}

// FlatNode is a person without nesting, for alternate renderings
type FlatNode struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Title     *string `json:"title"`
	ManagerID *int64  `json:"managerId"`
}

// BuildTree builds the reporting forest for people. When participants is non-nil only those people and every
// manager on their chain up to a root are included. Dangling manager references make a person a root, and manager
// cycles are cut so that every visible person appears exactly once.
func BuildTree(people []Person, participants map[int64]struct{}) []OrgNode {
	visible := people
	if participants != nil {
		visible = withChainOfCommand(people, participants)
	}

	ids := make(map[int64]struct{}, len(visible))
	for _, p := range visible {
		ids[p.ID] = struct{}{}
	}

	roots := make([]Person, 0)
	byManager := make(map[int64][]Person, len(visible))
	for _, p := range visible {
		if p.ManagerID == nil {
			roots = append(roots, p)
			continue
		}
		if _, ok := ids[*p.ManagerID]; !ok {
			roots = append(roots, p)
			continue
		}
		byManager[*p.ManagerID] = append(byManager[*p.ManagerID], p)
	}

	for id := range byManager {
		sortSiblings(byManager[id])
	}
	sortSiblings(roots)

	// each person has a single manager, so visited also holds every id on the current path
	visited := make(map[int64]struct{}, len(visible))
	var build func(p Person) OrgNode
	build = func(p Person) OrgNode {
		visited[p.ID] = struct{}{}
		node := OrgNode{
			ID:       p.ID,
			Name:     p.FullName,
			Title:    p.Title,
			Children: make([]OrgNode, 0, len(byManager[p.ID])),
		}
		for _, child := range byManager[p.ID] {
			if _, ok := visited[child.ID]; ok {
				continue
			}
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	tree := make([]OrgNode, 0, len(roots))
	for _, r := range roots {
		tree = append(tree, build(r))
	}

	if len(visited) == len(ids) {
		return tree
	}

	// whatever is left hangs off a manager cycle. Each cycle gets its first member in sibling order as an extra root,
	// and people reporting into a cycle stay below their manager.
	remaining := make([]Person, 0, len(ids)-len(visited))
	managerOf := make(map[int64]int64, len(ids)-len(visited))
	for _, p := range visible {
		if _, ok := visited[p.ID]; !ok {
			remaining = append(remaining, p)
			managerOf[p.ID] = *p.ManagerID
		}
	}
	sortSiblings(remaining)
	for _, p := range remaining {
		if _, ok := visited[p.ID]; ok {
			continue
		}
		if !onCycle(p.ID, managerOf) {
			continue
		}
		tree = append(tree, build(p))
	}

	return tree
}

// onCycle reports whether following managers from id leads back to id
func onCycle(id int64, managerOf map[int64]int64) bool {
	seen := map[int64]struct{}{}
	cur := id
	for {
		next, ok := managerOf[cur]
		if !ok {
			return false
		}
		if next == id {
			return true
		}
		if _, loop := seen[next]; loop {
			return false
		}
		seen[next] = struct{}{}
		cur = next
	}
}

// Flatten returns people as flat nodes in input order
func Flatten(people []Person) []FlatNode {
	ret := make([]FlatNode, 0, len(people))
	for _, p := range people {
		ret = append(ret, FlatNode{
			ID:        p.ID,
			Name:      p.FullName,
			Title:     p.Title,
			ManagerID: p.ManagerID,
		})
	}
	return ret
}

// withChainOfCommand returns the people in participants together with all their managers
func withChainOfCommand(people []Person, participants map[int64]struct{}) []Person {
	byID := make(map[int64]Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	allowed := make(map[int64]struct{}, len(participants))
	for id := range participants {
		allowed[id] = struct{}{}
	}

	for id := range participants {
		seen := map[int64]struct{}{id: {}}
		cur, ok := byID[id]
		for ok && cur.ManagerID != nil {
			managerID := *cur.ManagerID
			if _, done := allowed[managerID]; done {
				break
			}
			if _, loop := seen[managerID]; loop {
				break
			}
			manager, known := byID[managerID]
			if !known {
				break
			}
			seen[managerID] = struct{}{}
			allowed[managerID] = struct{}{}
			cur = manager
		}
	}

	ret := make([]Person, 0, len(allowed))
	for _, p := range people {
		if _, ok := allowed[p.ID]; ok {
			ret = append(ret, p)
		}
	}
	return ret
}

func sortSiblings(siblings []Person) {
	sort.SliceStable(siblings, func(i, j int) bool {
		ti, tj := titleOf(siblings[i]), titleOf(siblings[j])
		if ti != tj {
			return ti < tj
		}
		return siblings[i].FullName < siblings[j].FullName
	})
}

func titleOf(p Person) string {
	if p.Title == nil {
		return ""
	}
	return *p.Title
}
