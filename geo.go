package scenelink

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BBox3 is an axis-aligned bounding box. The zero value is a degenerate box
// at the origin, which is what empty containers report as their bounds.
type BBox3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBBox3 creates a box from its minimal and maximal corners.
// Min must not exceed Max on any axis.
func NewBBox3(min, max mgl64.Vec3) BBox3 {
	return BBox3{Min: min, Max: max}
}

// CubeBBox3 creates a box centered on the origin extending halfExtent units
// along each axis in both directions.
func CubeBBox3(halfExtent float64) BBox3 {
	return BBox3{
		Min: mgl64.Vec3{-halfExtent, -halfExtent, -halfExtent},
		Max: mgl64.Vec3{halfExtent, halfExtent, halfExtent},
	}
}

// Contains reports whether other lies entirely within b.
// Boxes touching b's faces from the inside are contained.
func (b BBox3) Contains(other BBox3) bool {
	for i := 0; i < 3; i++ {
		if other.Min[i] < b.Min[i] || other.Max[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether the point lies within b, faces included.
func (b BBox3) ContainsPoint(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Union returns the smallest box enclosing both b and other.
func (b BBox3) Union(other BBox3) BBox3 {
	u := b
	for i := 0; i < 3; i++ {
		u.Min[i] = math.Min(u.Min[i], other.Min[i])
		u.Max[i] = math.Max(u.Max[i], other.Max[i])
	}
	return u
}

// Translate returns b shifted by the given offset.
func (b BBox3) Translate(offset mgl64.Vec3) BBox3 {
	return BBox3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Size returns the extent of b along each axis.
func (b BBox3) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Transform returns the axis-aligned box enclosing b's eight corners after
// mapping each through m. For non-rotating transforms this is exact; for
// rotations it is the usual conservative re-fit.
func (b BBox3) Transform(m mgl64.Mat4) BBox3 {
	var out BBox3
	first := true
	for _, x := range [2]float64{b.Min.X(), b.Max.X()} {
		for _, y := range [2]float64{b.Min.Y(), b.Max.Y()} {
			for _, z := range [2]float64{b.Min.Z(), b.Max.Z()} {
				p := transformPoint(m, mgl64.Vec3{x, y, z})
				if first {
					out = BBox3{Min: p, Max: p}
					first = false
					continue
				}
				for i := 0; i < 3; i++ {
					out.Min[i] = math.Min(out.Min[i], p[i])
					out.Max[i] = math.Max(out.Max[i], p[i])
				}
			}
		}
	}
	return out
}

// transformPoint maps a point through an affine transform.
func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// invertMat4 inverts m, reporting success explicitly instead of returning a
// zero matrix for singular input the way mgl64.Mat4.Inv does.
func invertMat4(m mgl64.Mat4) (mgl64.Mat4, bool) {
	if mgl64.FloatEqual(m.Det(), 0) {
		return mgl64.Mat4{}, false
	}
	return m.Inv(), true
}

// mergedBounds folds the given boxes into one. Empty input yields the
// degenerate box at the origin.
func mergedBounds(boxes []BBox3) BBox3 {
	if len(boxes) == 0 {
		return BBox3{}
	}
	merged := boxes[0]
	for _, b := range boxes[1:] {
		merged = merged.Union(b)
	}
	return merged
}
