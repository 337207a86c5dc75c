package core

import "math"

// Vec3 is a float64 3D vector used by the scene viewer.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the vector magnitude.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Camera is a look-at perspective camera.
type Camera struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3
	FOV    float64 // Vertical field of view in degrees
	Near   float64
	Far    float64
}

// Projected is a point mapped to screen cells.
type Projected struct {
	X, Y  int
	Depth float64 // Distance along the view direction
}

// Project maps a world point onto a w×h cell grid.
// aspect is the width/height ratio of the viewport in world terms; terminal
// cells are roughly twice as tall as wide, so callers usually pass w/(2h).
// ok is false when the point lies outside the [Near, Far] depth range.
func (c Camera) Project(p Vec3, w, h int, aspect float64) (Projected, bool) {
	forward := c.Target.Sub(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	rel := p.Sub(c.Eye)
	depth := rel.Dot(forward)
	if depth < c.Near || depth > c.Far {
		return Projected{}, false
	}
	if aspect <= 0 {
		aspect = 1
	}

	scale := 1 / math.Tan(c.FOV*math.Pi/360)
	ndcX := scale / aspect * rel.Dot(right) / depth
	ndcY := scale * rel.Dot(up) / depth

	return Projected{
		X:     int(math.Floor((ndcX + 1) / 2 * float64(w))),
		Y:     int(math.Floor((1 - ndcY) / 2 * float64(h))),
		Depth: depth,
	}, true
}
