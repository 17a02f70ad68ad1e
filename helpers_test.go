package scenelink

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const testWorldHalfExtent = 8192.0

func testWorldBounds() BBox3 {
	return CubeBBox3(testWorldHalfExtent)
}

// transformSubtree applies m to a subtree the way an editor command would:
// groups record the transform, entities and brushes move.
func transformSubtree(t *testing.T, node Node, m mgl64.Mat4, worldBounds BBox3) {
	t.Helper()

	switch n := node.(type) {
	case *GroupNode:
		group := n.Group()
		group.Transform(m)
		n.SetGroup(group)
		for _, child := range n.Children() {
			transformSubtree(t, child, m, worldBounds)
		}
	case *EntityNode:
		entity := n.Entity()
		entity.Transform(m)
		n.SetEntity(entity)
		for _, child := range n.Children() {
			transformSubtree(t, child, m, worldBounds)
		}
	case *BrushNode:
		brush, err := n.Brush().Transform(worldBounds, m)
		require.NoError(t, err)
		n.SetBrush(brush)
	}
}

// cuboidBrush is a minimal solid-geometry representation for tests: an
// axis-aligned box that refits itself under transforms.
type cuboidBrush struct {
	bounds BBox3
}

func newCuboidBrush(halfExtent float64) cuboidBrush {
	return cuboidBrush{bounds: CubeBBox3(halfExtent)}
}

func (b cuboidBrush) Bounds() BBox3 {
	return b.bounds
}

func (b cuboidBrush) Transform(worldBounds BBox3, m mgl64.Mat4) (Brush, error) {
	transformed := b.bounds.Transform(m)
	if !worldBounds.Contains(transformed) {
		return nil, errors.New("brush is out of world bounds")
	}
	return cuboidBrush{bounds: transformed}, nil
}

// failingBrush rejects every transform with a fixed geometric error.
type failingBrush struct {
	bounds BBox3
}

func (b failingBrush) Bounds() BBox3 {
	return b.bounds
}

func (b failingBrush) Transform(worldBounds BBox3, m mgl64.Mat4) (Brush, error) {
	return nil, errors.New("brush geometry degenerated")
}

func requireBBoxApprox(t *testing.T, want, got BBox3) {
	t.Helper()
	const delta = 1e-9
	for i := 0; i < 3; i++ {
		require.InDelta(t, want.Min[i], got.Min[i], delta)
		require.InDelta(t, want.Max[i], got.Max[i], delta)
	}
}
