package scenelink

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBBox3Contains(t *testing.T) {
	world := CubeBBox3(8192)

	tests := []struct {
		name string
		box  BBox3
		want bool
	}{
		{"well_inside", CubeBBox3(16), true},
		{"touching_max_face", NewBBox3(mgl64.Vec3{8176, -8, -8}, mgl64.Vec3{8192, 8, 8}), true},
		{"touching_min_face", NewBBox3(mgl64.Vec3{-8192, -8, -8}, mgl64.Vec3{-8176, 8, 8}), true},
		{"equal_to_world", CubeBBox3(8192), true},
		{"past_max_face", NewBBox3(mgl64.Vec3{8177, -8, -8}, mgl64.Vec3{8193, 8, 8}), false},
		{"past_min_face", NewBBox3(mgl64.Vec3{-8193, -8, -8}, mgl64.Vec3{-8177, 8, 8}), false},
		{"larger_than_world", CubeBBox3(9000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, world.Contains(tt.box))
		})
	}
}

func TestBBox3ContainsPoint(t *testing.T) {
	box := CubeBBox3(8)

	assert.True(t, box.ContainsPoint(mgl64.Vec3{0, 0, 0}))
	assert.True(t, box.ContainsPoint(mgl64.Vec3{8, 8, 8}))
	assert.True(t, box.ContainsPoint(mgl64.Vec3{-8, 0, 8}))
	assert.False(t, box.ContainsPoint(mgl64.Vec3{8.001, 0, 0}))
	assert.False(t, box.ContainsPoint(mgl64.Vec3{0, -9, 0}))
}

func TestBBox3Union(t *testing.T) {
	a := NewBBox3(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	b := NewBBox3(mgl64.Vec3{0, -4, 0}, mgl64.Vec3{2, 0, 3})

	want := NewBBox3(mgl64.Vec3{-1, -4, -1}, mgl64.Vec3{2, 1, 3})
	assert.Equal(t, want, a.Union(b))
	assert.Equal(t, want, b.Union(a))
}

func TestBBox3Translate(t *testing.T) {
	box := CubeBBox3(8).Translate(mgl64.Vec3{16, 0, -8})
	assert.Equal(t, NewBBox3(mgl64.Vec3{8, -8, -16}, mgl64.Vec3{24, 8, 0}), box)
	assert.Equal(t, mgl64.Vec3{16, 16, 16}, box.Size())
}

func TestBBox3Transform(t *testing.T) {
	box := NewBBox3(mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{1, 2, 3})

	t.Run("translation", func(t *testing.T) {
		got := box.Transform(mgl64.Translate3D(10, 0, 0))
		requireBBoxApprox(t, NewBBox3(mgl64.Vec3{9, -2, -3}, mgl64.Vec3{11, 2, 3}), got)
	})

	t.Run("rotation_refits", func(t *testing.T) {
		// 90 degrees about Z swaps the X and Y extents.
		got := box.Transform(mgl64.HomogRotate3DZ(math.Pi / 2))
		requireBBoxApprox(t, NewBBox3(mgl64.Vec3{-2, -1, -3}, mgl64.Vec3{2, 1, 3}), got)
	})

	t.Run("scale", func(t *testing.T) {
		got := box.Transform(mgl64.Scale3D(2, 1, 1))
		requireBBoxApprox(t, NewBBox3(mgl64.Vec3{-2, -2, -3}, mgl64.Vec3{2, 2, 3}), got)
	})
}

func TestInvertMat4(t *testing.T) {
	t.Run("invertible", func(t *testing.T) {
		m := mgl64.Translate3D(1, 2, 3)
		inv, ok := invertMat4(m)
		require.True(t, ok)
		assert.True(t, m.Mul4(inv).ApproxEqual(mgl64.Ident4()))
	})

	t.Run("singular", func(t *testing.T) {
		_, ok := invertMat4(mgl64.Scale3D(0, 1, 1))
		assert.False(t, ok)
	})
}

func TestMergedBounds(t *testing.T) {
	assert.Equal(t, BBox3{}, mergedBounds(nil))

	boxes := []BBox3{
		CubeBBox3(1).Translate(mgl64.Vec3{4, 0, 0}),
		CubeBBox3(2),
	}
	assert.Equal(t, NewBBox3(mgl64.Vec3{-2, -2, -2}, mgl64.Vec3{5, 2, 2}), mergedBounds(boxes))
}
