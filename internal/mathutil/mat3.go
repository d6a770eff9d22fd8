package mathutil

import "fmt"

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

const mat3Size = 9

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// NewMat3 returns the default matrix, which is the identity.
func NewMat3() Mat3 {
	return Mat3Identity()
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Translate adds dx, dy, dz to the third column (indices 2, 5, 8).
// This stores an affine offset inside an otherwise linear 3×3 transform.
func (m *Mat3) Translate(dx, dy, dz float64) {
	m.Set(2, m.At(2)+dx)
	m.Set(5, m.At(5)+dy)
	m.Set(8, m.At(8)+dz)
}

// At returns element i. An index outside [0, 9) is a defect and panics.
func (m *Mat3) At(i int) float64 {
	checkMat3Index(i)
	return m[i]
}

// Set stores v at element i. An index outside [0, 9) is a defect and panics.
func (m *Mat3) Set(i int, v float64) {
	checkMat3Index(i)
	m[i] = v
}

func checkMat3Index(i int) {
	if i < 0 || i >= mat3Size {
		panic(fmt.Sprintf("mathutil: matrix index out of bounds: %d / %d", i, mat3Size))
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
