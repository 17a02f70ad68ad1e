package scenelink

import "github.com/go-gl/mathgl/mgl64"

// Brush is the solid-geometry representation carried by a BrushNode. The
// concrete representation (faces, planes, validation) lives outside this
// package; implementations are treated as immutable values, so Transform
// returns a fresh representation instead of mutating in place.
//
// Transform may fail, for example when the transformed geometry degenerates
// or leaves the world bounds during face recomputation. The returned error's
// text is surfaced verbatim as an UpdateError during synchronization.
type Brush interface {
	// Bounds returns the geometry's axis-aligned bounds.
	Bounds() BBox3

	// Transform returns the representation mapped through m, or an error if
	// the result would be invalid.
	Transform(worldBounds BBox3, m mgl64.Mat4) (Brush, error)
}

// BrushNode is a solid-geometry leaf in the scene tree.
type BrushNode struct {
	nodeBase
	brush Brush
}

// NewBrushNode creates a node holding the given geometry representation.
func NewBrushNode(brush Brush) *BrushNode {
	n := &BrushNode{brush: brush}
	n.init(n)
	return n
}

// Brush returns the node's geometry representation.
func (n *BrushNode) Brush() Brush {
	return n.brush
}

// SetBrush replaces the node's geometry representation and marks the node's
// bounds dirty.
func (n *BrushNode) SetBrush(brush Brush) {
	n.brush = brush
	n.invalidateAncestorBounds()
}

// Name returns the empty string; brushes are anonymous.
func (n *BrushNode) Name() string {
	return ""
}

// LogicalBounds returns the geometry's bounds.
func (n *BrushNode) LogicalBounds() BBox3 {
	return n.brush.Bounds()
}

// PhysicalBounds returns the geometry's bounds.
func (n *BrushNode) PhysicalBounds() BBox3 {
	return n.brush.Bounds()
}

// Clone returns a fresh node sharing the immutable geometry representation.
func (n *BrushNode) Clone(worldBounds BBox3) Node {
	return NewBrushNode(n.brush)
}

func (n *BrushNode) acceptsChild(child Node) bool {
	return false
}
