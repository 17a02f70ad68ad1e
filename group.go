package scenelink

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Group is the placement of a group node: a name plus the accumulated
// transform of the group relative to its parent. Children of a group are
// stored in world space; the transform records the group's placement history
// so that edits can be replayed into linked copies.
type Group struct {
	name           string
	transformation mgl64.Mat4
}

// NewGroup creates a placement with the given name and an identity
// transform.
func NewGroup(name string) Group {
	return Group{name: name, transformation: mgl64.Ident4()}
}

// Name returns the group's name.
func (g Group) Name() string {
	return g.name
}

// SetName renames the group.
func (g *Group) SetName(name string) {
	g.name = name
}

// Transformation returns the group's accumulated transform.
func (g Group) Transformation() mgl64.Mat4 {
	return g.transformation
}

// Transform composes m onto the group's accumulated transform, so that the
// most recent transform is applied last.
func (g *Group) Transform(m mgl64.Mat4) {
	g.transformation = m.Mul4(g.transformation)
}

// EditState describes whether a group is currently being edited. At most one
// group in an ancestor chain may be open; all of its strict group ancestors
// are descendant-open and every other group is closed. This is a tree-wide
// invariant maintained by Open and Close, not enforced per node.
type EditState int

const (
	// EditStateClosed is the initial state: the group is not being edited.
	EditStateClosed EditState = iota

	// EditStateOpen marks the group whose children are being edited.
	EditStateOpen

	// EditStateDescendantOpen marks a strict ancestor of an open group.
	EditStateDescendantOpen
)

// GroupNode is a node that groups other nodes to make them editable as one.
// Multiple group nodes can form a link set: a set of groups such that
// changes to the children of one connected member can be propagated to the
// other connected members via UpdateLinkedGroups.
//
// A group is in one of three sharing states: singleton (alone in its private
// link set), linkable (associated with a shared link set but disconnected,
// so changes flow neither way), and linked (connected, so changes flow both
// ways). Every group node references a link set at all times; a fresh group
// owns a private one with no connected members.
type GroupNode struct {
	nodeBase

	group     Group
	links     *linkSet
	editState EditState

	// persistentID is assigned by the serialization layer; it is local to
	// this node, unlike the link set's shared persistent ID.
	persistentID *uuid.UUID

	logicalBounds  BBox3
	physicalBounds BBox3
	boundsValid    bool
}

// NewGroupNode creates a closed group node with the given placement and a
// fresh private link set.
func NewGroupNode(group Group) *GroupNode {
	n := &GroupNode{
		group: group,
		links: newLinkSet(),
	}
	n.init(n)
	return n
}

// Name returns the name of the node's placement.
func (n *GroupNode) Name() string {
	return n.group.name
}

// Group returns the node's placement.
func (n *GroupNode) Group() Group {
	return n.group
}

// SetGroup replaces the node's placement and returns the previous one.
func (n *GroupNode) SetGroup(group Group) Group {
	old := n.group
	n.group = group
	return old
}

// Opened reports whether this group is currently open for editing.
func (n *GroupNode) Opened() bool {
	return n.editState == EditStateOpen
}

// HasOpenedDescendant reports whether a descendant group is currently open.
func (n *GroupNode) HasOpenedDescendant() bool {
	return n.editState == EditStateDescendantOpen
}

// Closed reports whether this group is closed.
func (n *GroupNode) Closed() bool {
	return n.editState == EditStateClosed
}

// Open transitions the group from closed to open and marks every group on
// its ancestor chain descendant-open. Callers must not open two groups in
// the same ancestor chain. Panics if the group is not closed.
func (n *GroupNode) Open() {
	if n.editState != EditStateClosed {
		panic("scenelink: cannot open a group that is not closed")
	}
	n.editState = EditStateOpen
	n.setAncestorEditState(EditStateDescendantOpen)
}

// Close transitions the group from open to closed and resets every group on
// its ancestor chain to closed. Panics if the group is not open.
func (n *GroupNode) Close() {
	if n.editState != EditStateOpen {
		panic("scenelink: cannot close a group that is not open")
	}
	n.editState = EditStateClosed
	n.setAncestorEditState(EditStateClosed)
}

// setAncestorEditState walks the parent chain, retargeting every group node
// it passes. Non-group ancestors are passed through transparently.
func (n *GroupNode) setAncestorEditState(state EditState) {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if g, ok := p.(*GroupNode); ok {
			g.editState = state
		}
	}
}

// PersistentID returns the node's serialization identifier, if one has been
// assigned.
func (n *GroupNode) PersistentID() (uuid.UUID, bool) {
	if n.persistentID == nil {
		return uuid.UUID{}, false
	}
	return *n.persistentID, true
}

// SetPersistentID assigns the node's serialization identifier. The first
// identifier assigned to any member of a link set also becomes the link
// set's shared persistent identifier.
func (n *GroupNode) SetPersistentID(id uuid.UUID) {
	local := id
	n.persistentID = &local
	if n.links.persistentID == nil {
		shared := id
		n.links.persistentID = &shared
	}
}

// SharedPersistentID returns the identifier shared by every group ever
// associated with this node's link set, if one has been assigned.
func (n *GroupNode) SharedPersistentID() (uuid.UUID, bool) {
	if n.links.persistentID == nil {
		return uuid.UUID{}, false
	}
	return *n.links.persistentID, true
}

// LinkedGroups returns a snapshot of the connected members of this node's
// link set, in connection order. If this group is itself disconnected it is
// simply absent from the result. The returned slice is an independent copy.
func (n *GroupNode) LinkedGroups() []*GroupNode {
	return append([]*GroupNode(nil), n.links.members...)
}

// InLinkSetWith reports whether this node and other share a link set.
func (n *GroupNode) InLinkSetWith(other *GroupNode) bool {
	return n.links == other.links
}

// AddToLinkSet associates other with this node's link set. The adopted group
// is not connected by this call; use Link on it afterwards to connect it.
// Panics if other is currently connected to its own link set, since adopting
// it then would leave a dangling connected entry behind.
func (n *GroupNode) AddToLinkSet(other *GroupNode) {
	if other.Linked() {
		panic("scenelink: cannot adopt a group that is connected to its link set")
	}
	other.links = n.links
}

// Linked reports whether this group is connected to its link set.
func (n *GroupNode) Linked() bool {
	return n.links.contains(n)
}

// Link connects this group to its link set. Panics if already connected.
func (n *GroupNode) Link() {
	if n.Linked() {
		panic("scenelink: group is already connected to its link set")
	}
	n.links.add(n)
}

// Unlink disconnects this group from its link set. Panics if not connected.
func (n *GroupNode) Unlink() {
	if !n.Linked() {
		panic("scenelink: group is not connected to its link set")
	}
	n.links.remove(n)
}

// LogicalBounds returns the merged logical bounds of the group's children,
// cached until a child's bounds change.
func (n *GroupNode) LogicalBounds() BBox3 {
	if !n.boundsValid {
		n.validateBounds()
	}
	return n.logicalBounds
}

// PhysicalBounds returns the merged physical bounds of the group's children,
// cached until a child's bounds change.
func (n *GroupNode) PhysicalBounds() BBox3 {
	if !n.boundsValid {
		n.validateBounds()
	}
	return n.physicalBounds
}

func (n *GroupNode) validateBounds() {
	n.logicalBounds = childLogicalBounds(n.children)
	n.physicalBounds = childPhysicalBounds(n.children)
	n.boundsValid = true
}

// Clone returns a closed copy of this node without children. The copy starts
// in its own private link set and carries no persistent identifier.
func (n *GroupNode) Clone(worldBounds BBox3) Node {
	return NewGroupNode(n.group)
}

func (n *GroupNode) acceptsChild(child Node) bool {
	switch child.(type) {
	case *GroupNode, *EntityNode, *BrushNode:
		return true
	default:
		return false
	}
}
