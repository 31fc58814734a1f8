// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uirender

// Mat4 is a 4x4 float32 matrix in column-major order, the layout the
// uniform block expects:
//
//	| m[0] m[4] m[8]  m[12] |
//	| m[1] m[5] m[9]  m[13] |
//	| m[2] m[6] m[10] m[14] |
//	| m[3] m[7] m[11] m[15] |
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho maps the layout rectangle [left,right]x[top,bottom] to clip space
// with y pointing down, the usual widget coordinate system.
func Ortho(left, right, bottom, top float32) Mat4 {
	w := right - left
	h := top - bottom
	return Mat4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, 1, 0,
		-(right + left) / w, -(top + bottom) / h, 0, 1,
	}
}

// Viewport returns the projection for a window of w by h layout units
// with the origin at the top-left corner.
func Viewport(w, h float32) Mat4 {
	return Ortho(0, w, h, 0)
}

// Translate creates a translation matrix.
func Translate(x, y float32) Mat4 {
	m := Identity()
	m[12], m[13] = x, y
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Mat4 {
	m := Identity()
	m[0], m[5] = x, y
	return m
}

// Mul returns m * o, so o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	return r
}

// TransformPoint applies m to the point (x, y, 0, 1) and returns the
// resulting x and y. No perspective divide is done.
func (m Mat4) TransformPoint(x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity()
}
