package geometry

// Matrix3 is a 3x3 matrix stored as a flat array in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
type Matrix3 [9]float64

// IdentityMatrix3 returns the identity matrix
func IdentityMatrix3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at the given row and column
func (m Matrix3) At(row, col int) float64 {
	return m[3*row+col]
}

// MulVec multiplies the matrix with a vector
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transposed returns the transposed matrix
func (m Matrix3) Transposed() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
