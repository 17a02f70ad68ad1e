package scenelink

// Node is the common interface of the five scene node kinds: *WorldNode,
// *LayerNode, *GroupNode, *EntityNode and *BrushNode. The kind set is closed
// (the interface carries unexported methods); the algorithms in this package
// dispatch on it with type switches, so adding a kind forces a review of
// every switch.
//
// A node exclusively owns its children. Cloning never shares node identity:
// Clone and CloneRecursively always produce fresh, independently owned nodes.
type Node interface {
	// Name returns a human-readable name for the node. Group and layer
	// names come from their placements; entities report their classname
	// property if they have one.
	Name() string

	// Parent returns the node's parent, or nil for a detached node.
	Parent() Node

	// Children returns the node's children in order. The returned slice is
	// the node's own storage and must not be modified by the caller.
	Children() []Node

	// ChildCount returns the number of children.
	ChildCount() int

	// AddChild appends child to the node's children and sets its parent.
	// It panics if the child kind is not acceptable here or if the child
	// already has a parent.
	AddChild(child Node)

	// RemoveChild detaches child from the node. It panics if child is not
	// currently a child of this node.
	RemoveChild(child Node)

	// LogicalBounds returns the node's selection bounds.
	LogicalBounds() BBox3

	// PhysicalBounds returns the node's rendered bounds.
	PhysicalBounds() BBox3

	// Clone returns a shallow copy of the node without children. A cloned
	// group starts with a fresh private link set.
	Clone(worldBounds BBox3) Node

	// CloneRecursively returns a deep copy of the node and its subtree.
	CloneRecursively(worldBounds BBox3) Node

	acceptsChild(child Node) bool
	base() *nodeBase
}

// nodeBase carries the tree plumbing shared by every node kind: the parent
// pointer, ordered child storage and the bounds invalidation walk. Each
// concrete kind embeds it and registers itself via init, mirroring how node
// containers keep a back-reference to their owner.
type nodeBase struct {
	self     Node
	parent   Node
	children []Node
}

func (b *nodeBase) init(self Node) {
	b.self = self
}

func (b *nodeBase) base() *nodeBase {
	return b
}

// Parent returns the node's parent, or nil.
func (b *nodeBase) Parent() Node {
	return b.parent
}

// Children returns the node's children in order.
func (b *nodeBase) Children() []Node {
	return b.children
}

// ChildCount returns the number of children.
func (b *nodeBase) ChildCount() int {
	return len(b.children)
}

// AddChild appends child and takes ownership of it.
func (b *nodeBase) AddChild(child Node) {
	if !b.self.acceptsChild(child) {
		panic("scenelink: node kind cannot be added as a child here")
	}
	if child.Parent() != nil {
		panic("scenelink: child already has a parent")
	}
	b.children = append(b.children, child)
	child.base().parent = b.self
	b.invalidateAncestorBounds()
}

// RemoveChild detaches child from this node.
func (b *nodeBase) RemoveChild(child Node) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.base().parent = nil
			b.invalidateAncestorBounds()
			return
		}
	}
	panic("scenelink: node is not a child of this node")
}

// CloneRecursively clones the node and recursively clones its subtree into
// the copy.
func (b *nodeBase) CloneRecursively(worldBounds BBox3) Node {
	clone := b.self.Clone(worldBounds)
	for _, child := range b.children {
		clone.AddChild(child.CloneRecursively(worldBounds))
	}
	return clone
}

// invalidateAncestorBounds drops the cached bounds of this node and of every
// group on its ancestor chain. Bounds are recomputed lazily on the next read.
func (b *nodeBase) invalidateAncestorBounds() {
	for n := b.self; n != nil; n = n.Parent() {
		if g, ok := n.(*GroupNode); ok {
			g.boundsValid = false
		}
	}
}

// childLogicalBounds merges the logical bounds of the given children.
func childLogicalBounds(children []Node) BBox3 {
	boxes := make([]BBox3, len(children))
	for i, c := range children {
		boxes[i] = c.LogicalBounds()
	}
	return mergedBounds(boxes)
}

// childPhysicalBounds merges the physical bounds of the given children.
func childPhysicalBounds(children []Node) BBox3 {
	boxes := make([]BBox3, len(children))
	for i, c := range children {
		boxes[i] = c.PhysicalBounds()
	}
	return mergedBounds(boxes)
}

// WorldNode is the root of a scene tree. It holds layers and must never
// appear inside a group's subtree.
type WorldNode struct {
	nodeBase
}

// NewWorldNode creates an empty world node.
func NewWorldNode() *WorldNode {
	n := &WorldNode{}
	n.init(n)
	return n
}

// Name returns "world".
func (n *WorldNode) Name() string {
	return "world"
}

// LogicalBounds returns the merged logical bounds of the world's layers.
func (n *WorldNode) LogicalBounds() BBox3 {
	return childLogicalBounds(n.children)
}

// PhysicalBounds returns the merged physical bounds of the world's layers.
func (n *WorldNode) PhysicalBounds() BBox3 {
	return childPhysicalBounds(n.children)
}

// Clone returns a fresh empty world node.
func (n *WorldNode) Clone(worldBounds BBox3) Node {
	return NewWorldNode()
}

func (n *WorldNode) acceptsChild(child Node) bool {
	_, ok := child.(*LayerNode)
	return ok
}

// LayerNode is a named top-level container directly below the world. Like
// the world itself it must never appear inside a group's subtree.
type LayerNode struct {
	nodeBase
	name string
}

// NewLayerNode creates an empty layer with the given name.
func NewLayerNode(name string) *LayerNode {
	n := &LayerNode{name: name}
	n.init(n)
	return n
}

// Name returns the layer's name.
func (n *LayerNode) Name() string {
	return n.name
}

// LogicalBounds returns the merged logical bounds of the layer's children.
func (n *LayerNode) LogicalBounds() BBox3 {
	return childLogicalBounds(n.children)
}

// PhysicalBounds returns the merged physical bounds of the layer's children.
func (n *LayerNode) PhysicalBounds() BBox3 {
	return childPhysicalBounds(n.children)
}

// Clone returns a fresh empty layer with the same name.
func (n *LayerNode) Clone(worldBounds BBox3) Node {
	return NewLayerNode(n.name)
}

func (n *LayerNode) acceptsChild(child Node) bool {
	switch child.(type) {
	case *GroupNode, *EntityNode, *BrushNode:
		return true
	default:
		return false
	}
}
