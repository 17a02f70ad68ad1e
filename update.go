package scenelink

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// GroupReplacement pairs a connected link set member with the freshly built
// subtree that should replace it after a synchronization pass.
type GroupReplacement struct {
	// Original is the existing member to be swapped out of the tree.
	Original *GroupNode

	// Replacement is a fresh group node carrying the synchronized children.
	// It shares the source group's link set but is not yet connected; the
	// caller connects it when it swaps it into the tree.
	Replacement *GroupNode
}

// UpdateLinkedGroups recomputes every other connected member of this group's
// link set from this group's current children. For each such member it
// produces a replacement subtree: this group's children cloned, transformed
// by the member's placement relative to this group's placement, merged with
// the member's preserved entity properties, and attached to a shallow clone
// of the member.
//
// The caller is responsible for swapping each original member for its
// replacement and reconnecting the replacement; this method does not mutate
// the live tree.
//
// If any transformed node falls outside worldBounds, any solid-geometry
// transform fails, or this group's placement transform is not invertible,
// the whole call aborts with an UpdateError and no replacements. Panics if
// this group is not connected to its link set.
func (n *GroupNode) UpdateLinkedGroups(worldBounds BBox3) ([]GroupReplacement, error) {
	if !n.Linked() {
		panic("scenelink: UpdateLinkedGroups requires a group that is connected to its link set")
	}

	inverted, ok := invertMat4(n.group.Transformation())
	if !ok {
		return nil, UpdateError{"Group transformation is not invertible"}
	}

	result := make([]GroupReplacement, 0, len(n.links.members))
	for _, member := range n.links.members {
		if member == n {
			continue
		}

		transformation := member.group.Transformation().Mul4(inverted)
		newChildren, err := cloneAndTransformChildren(n, worldBounds, transformation)
		if err != nil {
			return nil, err
		}

		preserveDescendantEntityProperties(newChildren, member.Children())

		replacement := member.Clone(worldBounds).(*GroupNode)
		n.AddToLinkSet(replacement)
		for _, child := range newChildren {
			replacement.AddChild(child)
		}

		result = append(result, GroupReplacement{Original: member, Replacement: replacement})
	}
	return result, nil
}

// cloneAndTransformChildren produces fresh, independently owned copies of
// node's children with transformation applied to every descendant, depth
// first in original child order. The first failure anywhere in the subtree
// aborts the whole call; there is no partial result.
func cloneAndTransformChildren(node Node, worldBounds BBox3, transformation mgl64.Mat4) ([]Node, error) {
	newChildren := make([]Node, 0, node.ChildCount())

	for _, child := range node.Children() {
		var newChild Node
		switch child := child.(type) {
		case *WorldNode:
			return nil, UpdateError{"Visited world node while updating linked groups"}
		case *LayerNode:
			return nil, UpdateError{"Visited layer node while updating linked groups"}
		case *GroupNode:
			group := child.Group()
			group.Transform(transformation)
			newChild = NewGroupNode(group)
		case *EntityNode:
			entity := child.Entity()
			entity.Transform(transformation)
			newChild = NewEntityNode(entity)
		case *BrushNode:
			brush, err := child.Brush().Transform(worldBounds, transformation)
			if err != nil {
				return nil, UpdateError{err.Error()}
			}
			newChild = NewBrushNode(brush)
		}

		if !worldBounds.Contains(newChild.LogicalBounds()) {
			return nil, UpdateError{"Linked node exceeds world bounds"}
		}

		grandchildren, err := cloneAndTransformChildren(child, worldBounds, transformation)
		if err != nil {
			return nil, err
		}
		for _, grandchild := range grandchildren {
			newChild.AddChild(grandchild)
		}

		newChildren = append(newChildren, newChild)
	}

	return newChildren, nil
}

// preserveDescendantEntityProperties walks the cloned children and the
// children of the node they are about to replace in lock step by position,
// merging preserved entity properties for each entity pair and recursing
// into nested group pairs. If the two sides have diverged structurally, the
// walk truncates to the shorter sequence and skips pairs whose kinds do not
// match; divergent tails keep whatever the clone produced.
func preserveDescendantEntityProperties(clonedNodes, correspondingNodes []Node) {
	count := min(len(clonedNodes), len(correspondingNodes))
	for i := 0; i < count; i++ {
		switch cloned := clonedNodes[i].(type) {
		case *GroupNode:
			if corresponding, ok := correspondingNodes[i].(*GroupNode); ok {
				preserveDescendantEntityProperties(cloned.Children(), corresponding.Children())
			}
		case *EntityNode:
			if corresponding, ok := correspondingNodes[i].(*EntityNode); ok {
				preserveEntityProperties(cloned, corresponding)
			}
		}
	}
}

// preserveEntityProperties merges the properties of a freshly cloned entity
// with those of the entity it is about to replace. For every key base that
// either side preserves, the replaced entity's current value and numbered
// family win over the clone's; every other key keeps the clone's state,
// including additions and removals. The merged entity adopts the replaced
// entity's preserved key set.
func preserveEntityProperties(clonedNode, correspondingNode *EntityNode) {
	// Fast path: nothing is preserved on either side.
	if len(clonedNode.entity.preservedKeys) == 0 && len(correspondingNode.entity.preservedKeys) == 0 {
		return
	}

	cloned := clonedNode.Entity()
	corresponding := correspondingNode.Entity()

	allPreserved := sortedUnion(cloned.PreservedKeys(), corresponding.PreservedKeys())
	cloned.SetPreservedKeys(corresponding.PreservedKeys())

	for _, key := range allPreserved {
		cloned.RemoveProperty(key)
		if value, ok := corresponding.Property(key); ok {
			cloned.AddOrUpdateProperty(key, value)
		}

		cloned.RemoveNumberedProperties(key)
		for _, p := range corresponding.NumberedProperties(key) {
			cloned.AddOrUpdateProperty(p.Key, p.Value)
		}
	}

	clonedNode.SetEntity(cloned)
}

// sortedUnion merges two key slices into a sorted slice without duplicates.
func sortedUnion(a, b []string) []string {
	merged := append(append([]string(nil), a...), b...)
	sort.Strings(merged)
	unique := merged[:0]
	for i, key := range merged {
		if i == 0 || key != merged[i-1] {
			unique = append(unique, key)
		}
	}
	return unique
}
