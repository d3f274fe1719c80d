package grip

import "math"

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns the vector v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// distance returns the Euclidean distance between a and b.
func distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// angleBetween returns the angle in radians of the vector from b to a,
// measured with atan2 (positive Y downward-clockwise in screen space).
func angleBetween(a, b Vec2) float64 {
	return math.Atan2(a.Y-b.Y, a.X-b.X)
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// --- Affine helpers ---

// Affine is a 2D affine matrix in column-major [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// IdentityAffine is the identity transform.
var IdentityAffine = Affine{1, 0, 0, 1, 0, 0}

// ScaleRotateAbout builds the similarity transform that scales by s and
// rotates by r radians about the fixed point (cx, cy). Applying it to a
// host transform maps gesture output straight onto content:
//
//	m := grip.ScaleRotateAbout(ctx.Scale, ctx.Rotation, ctx.FocalX, ctx.FocalY)
//	x, y = m.Apply(x, y)
func ScaleRotateAbout(s, r, cx, cy float64) Affine {
	sin, cos := math.Sincos(r)
	a := s * cos
	b := s * sin
	// Translate(-c) -> Scale -> Rotate -> Translate(c)
	return Affine{
		a, b,
		-b, a,
		cx - a*cx + b*cy,
		cy - b*cx - a*cy,
	}
}

// Apply transforms the point (x, y) by m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Mul returns the composition m * n (n applied first).
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Invert returns the inverse of m, or the identity if m is singular
// (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}
