package affinetool

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 3x3 affine transform in homogeneous form, stored row-major.
//
// Matrices are in column-vector form: a point p is transformed as M·p.
// Applied to a Homogeneous matrix V (one point per row), this is V·Mᵗ.
type Matrix f64.Mat3

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Rotation Matrix (CCW)
//
//  cos(angle)   -sin(angle)    0
//  sin(angle)    cos(angle)    0
//  0             0             1
//
// The row-vector form (the transpose) has the signs of the off-diagonal
// elements swapped.
func Rotation(angle float64) Matrix {
	m := Identity()
	sin, cos := math.Sincos(angle)
	m[0] = cos
	m[1] = -sin

	m[3] = sin
	m[4] = cos

	return m
}

// Scaling Matrix:
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
// Any value is accepted. Negative factors flip the axis, zero collapses it.
func Scaling(sx, sy float64) Matrix {
	m := Identity()
	m[0] = sx
	m[4] = sy
	return m
}

// Reflection returns the reflection across the y-axis.
//
//  -1  0  0
//   0  1  0
//   0  0  1
//
func Reflection() Matrix {
	return Scaling(-1, 1)
}

// Translation Matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation(dx, dy float64) Matrix {
	m := Identity()

	m[2] = dx
	m[5] = dy

	return m
}

// Multiply returns m·b, the transform that applies b first and then m.
func (m Matrix) Multiply(b Matrix) Matrix {
	var r Matrix

	r[0] = m[0]*b[0] + m[1]*b[3] + m[2]*b[6]
	r[1] = m[0]*b[1] + m[1]*b[4] + m[2]*b[7]
	r[2] = m[0]*b[2] + m[1]*b[5] + m[2]*b[8]

	r[3] = m[3]*b[0] + m[4]*b[3] + m[5]*b[6]
	r[4] = m[3]*b[1] + m[4]*b[4] + m[5]*b[7]
	r[5] = m[3]*b[2] + m[4]*b[5] + m[5]*b[8]

	r[6] = m[6]*b[0] + m[7]*b[3] + m[8]*b[6]
	r[7] = m[6]*b[1] + m[7]*b[4] + m[8]*b[7]
	r[8] = m[6]*b[2] + m[7]*b[5] + m[8]*b[8]

	return r
}

// Transpose returns the row-vector form of m.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// transformRow computes the product of the row vector v and mᵗ.
func (m Matrix) transformRow(v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Apply transforms every row of hm and returns the 2D coordinates.
//
// The result has one vertex per row of hm, in the same order.
// Non-finite values are carried through, not rejected.
func (m Matrix) Apply(hm Homogeneous) Polygon {
	out := make(Polygon, len(hm))
	for i, row := range hm {
		t := m.transformRow(row)
		out[i] = Vertex{X: t[0], Y: t[1]}
	}
	return out
}

// Rotate rotates the vertices counter-clockwise by angle (radians)
// around the origin.
func Rotate(angle float64, hm Homogeneous) Polygon {
	return Rotation(angle).Apply(hm)
}

// Scale scales the vertices independently along x and y, relative to the
// origin.
func Scale(sx, sy float64, hm Homogeneous) Polygon {
	return Scaling(sx, sy).Apply(hm)
}

// Reflect mirrors the vertices across the y-axis.
func Reflect(hm Homogeneous) Polygon {
	return Reflection().Apply(hm)
}

// Translate shifts the vertices by dx, dy.
func Translate(dx, dy float64, hm Homogeneous) Polygon {
	return Translation(dx, dy).Apply(hm)
}
