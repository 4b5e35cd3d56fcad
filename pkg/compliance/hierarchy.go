package compliance

import (
	"fmt"
	"sort"

	"github.com/complymap/complymap/pkg/model"
)

// HierarchyIndex is an adjacency index over the tenant tree, built once
// per computation from a full tenant scan. All traversals carry a visited
// set; the stored data does not enforce acyclicity, so a revisited tenant
// fails with ErrCycleDetected instead of recursing unboundedly.
type HierarchyIndex struct {
	tenants  map[int64]model.Tenant
	children map[int64][]int64
}

func NewHierarchyIndex(tenants []model.Tenant) *HierarchyIndex {
	idx := &HierarchyIndex{
		tenants:  make(map[int64]model.Tenant, len(tenants)),
		children: map[int64][]int64{},
	}
	for _, t := range tenants {
		idx.tenants[t.ID] = t
		if t.ParentID != nil {
			idx.children[*t.ParentID] = append(idx.children[*t.ParentID], t.ID)
		}
	}
	for _, ids := range idx.children {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return idx
}

// Tenant returns the indexed tenant by ID.
func (x *HierarchyIndex) Tenant(id int64) (model.Tenant, bool) {
	t, ok := x.tenants[id]
	return t, ok
}

// Children returns the direct children of a tenant in ascending ID order.
func (x *HierarchyIndex) Children(id int64) []model.Tenant {
	ids := x.children[id]
	out := make([]model.Tenant, 0, len(ids))
	for _, cid := range ids {
		out = append(out, x.tenants[cid])
	}
	return out
}

// Ancestors returns the chain of parents from the immediate parent up to
// the root. A tenant with no parent yields an empty chain.
func (x *HierarchyIndex) Ancestors(id int64) ([]model.Tenant, error) {
	t, ok := x.tenants[id]
	if !ok {
		return nil, fmt.Errorf("tenant %d not in hierarchy index", id)
	}

	visited := map[int64]bool{t.ID: true}
	var chain []model.Tenant
	for t.ParentID != nil {
		parent, ok := x.tenants[*t.ParentID]
		if !ok {
			break
		}
		if visited[parent.ID] {
			return nil, fmt.Errorf("ancestors of tenant %d: %w", id, ErrCycleDetected)
		}
		visited[parent.ID] = true
		chain = append(chain, parent)
		t = parent
	}
	return chain, nil
}

// Subsidiaries returns the full descendant set of a tenant, all levels,
// in depth-first pre-order with siblings in ascending ID order. A tenant
// with no children yields an empty set.
func (x *HierarchyIndex) Subsidiaries(id int64) ([]model.Tenant, error) {
	if _, ok := x.tenants[id]; !ok {
		return nil, fmt.Errorf("tenant %d not in hierarchy index", id)
	}

	visited := map[int64]bool{id: true}
	var out []model.Tenant
	var walk func(parentID int64) error
	walk = func(parentID int64) error {
		for _, childID := range x.children[parentID] {
			if visited[childID] {
				return fmt.Errorf("subsidiaries of tenant %d: %w", id, ErrCycleDetected)
			}
			visited[childID] = true
			out = append(out, x.tenants[childID])
			if err := walk(childID); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(id); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateReparent reports whether assigning newParent as the parent of
// tenant would keep the hierarchy acyclic. It walks up from newParent; if
// the walk reaches tenant, the edit would close a cycle.
func (x *HierarchyIndex) ValidateReparent(tenantID int64, newParentID int64) error {
	if tenantID == newParentID {
		return fmt.Errorf("tenant %d cannot be its own parent: %w", tenantID, ErrCycleDetected)
	}

	visited := map[int64]bool{}
	current := newParentID
	for {
		if current == tenantID {
			return fmt.Errorf("parent %d is a descendant of tenant %d: %w", newParentID, tenantID, ErrCycleDetected)
		}
		if visited[current] {
			return fmt.Errorf("existing cycle above parent %d: %w", newParentID, ErrCycleDetected)
		}
		visited[current] = true

		t, ok := x.tenants[current]
		if !ok || t.ParentID == nil {
			return nil
		}
		current = *t.ParentID
	}
}

// StructureNode is one entry of a subsidiary tree rendering, carrying the
// node's depth below the tree root and its resolved default governance
// model when one is configured.
type StructureNode struct {
	Tenant          model.Tenant           `json:"tenant"`
	Depth           int                    `json:"depth"`
	GovernanceModel *model.GovernanceModel `json:"governance_model,omitempty"`
	Children        []*StructureNode       `json:"children"`
}

// StructureTree renders the subsidiary tree rooted at a tenant. The
// resolver supplies each node's default governance model; nodes without
// any configured rule carry none.
func (x *HierarchyIndex) StructureTree(id int64, resolver *GovernanceResolver) (*StructureNode, error) {
	root, ok := x.tenants[id]
	if !ok {
		return nil, fmt.Errorf("tenant %d not in hierarchy index", id)
	}

	visited := map[int64]bool{}
	var build func(t model.Tenant, depth int) (*StructureNode, error)
	build = func(t model.Tenant, depth int) (*StructureNode, error) {
		if visited[t.ID] {
			return nil, fmt.Errorf("structure tree of tenant %d: %w", id, ErrCycleDetected)
		}
		visited[t.ID] = true

		node := &StructureNode{Tenant: t, Depth: depth, Children: []*StructureNode{}}
		if rule, err := resolver.Resolve(t.ID, model.ScopeDefault, nil); err == nil {
			m := rule.GovernanceModel
			node.GovernanceModel = &m
		}
		for _, childID := range x.children[t.ID] {
			child, err := build(x.tenants[childID], depth+1)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil
	}
	return build(root, 0)
}
