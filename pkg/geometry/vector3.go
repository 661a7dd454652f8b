package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used for approximate comparisons
// throughout this package. Equals compares the sum of squared component
// differences against it.
const Epsilon = 1e-10

// ParallelEpsilon is the tolerance for detecting (anti)parallel unit
// directions via 1 - |u1 . u2|. It is deliberately looser than Epsilon:
// the dot product of two normalized directions carries the rounding error
// of both normalizations, and 1 - cos(theta) flattens quadratically near
// zero, so angular degeneracy needs more headroom than component equality.
const ParallelEpsilon = 10 * Epsilon

// Vector3 represents a 3D point or vector. The zero value is the origin.
//
// A Vector3 is either a position vector (the default) or a free vector, a
// tag that records whether it denotes a location or a displacement. The
// tag does not influence any arithmetic here; it exists so that transform
// code downstream can translate positions while leaving directions alone.
// Arithmetic results are position vectors; Negate and Normalized keep the
// receiver's tag.
type Vector3 struct {
	X, Y, Z float64

	free bool
}

// NewVector3 creates a new position vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3XY creates a new position vector in the z=0 plane
func NewVector3XY(x, y float64) Vector3 {
	return Vector3{X: x, Y: y}
}

// NewFreeVector3 creates a new free (direction) vector
func NewFreeVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z, free: true}
}

// NewVector3FromSlice creates a position vector from a component slice.
// Two components leave z at zero. Any other length fails with
// ErrConstruction.
func NewVector3FromSlice(c []float64) (Vector3, error) {
	switch len(c) {
	case 2:
		return Vector3{X: c[0], Y: c[1]}, nil
	case 3:
		return Vector3{X: c[0], Y: c[1], Z: c[2]}, nil
	default:
		return Vector3{}, fmt.Errorf("%w: need 2 or 3 components, got %d", ErrConstruction, len(c))
	}
}

// UnitX returns the x basis vector as a free vector
func UnitX() Vector3 {
	return Vector3{X: 1, free: true}
}

// UnitY returns the y basis vector as a free vector
func UnitY() Vector3 {
	return Vector3{Y: 1, free: true}
}

// UnitZ returns the z basis vector as a free vector
func UnitZ() Vector3 {
	return Vector3{Z: 1, free: true}
}

// IsPosition reports whether the vector is a position vector
func (v Vector3) IsPosition() bool {
	return !v.free
}

// AsPosition returns a copy tagged as a position vector
func (v Vector3) AsPosition() Vector3 {
	v.free = false
	return v
}

// AsFreeVector returns a copy tagged as a free vector
func (v Vector3) AsFreeVector() Vector3 {
	v.free = true
	return v
}

// At returns component i, with components indexed 0, 1, 2.
// An index outside that range panics.
func (v Vector3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("geometry: component index %d out of range [0,3)", i))
}

// SetAt sets component i, with components indexed 0, 1, 2.
// An index outside that range panics.
func (v *Vector3) SetAt(i int, c float64) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	default:
		panic(fmt.Sprintf("geometry: component index %d out of range [0,3)", i))
	}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Negate returns the vector with all components negated, keeping the
// receiver's position/free tag
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z, free: v.free}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Div divides the vector by a scalar
func (v Vector3) Div(scalar float64) Vector3 {
	return Vector3{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
	}
}

// SetAdd adds other to the vector in place
func (v *Vector3) SetAdd(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SetSub subtracts other from the vector in place
func (v *Vector3) SetSub(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// SetMul multiplies the vector by a scalar in place
func (v *Vector3) SetMul(scalar float64) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// CrossOperator returns the skew-symmetric matrix C with C.MulVec(u)
// equal to v.Cross(u) for every u
func (v Vector3) CrossOperator() Matrix3 {
	return Matrix3{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude, avoiding the square root
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between two points
func (v Vector3) DistanceSquared(other Vector3) float64 {
	return v.Sub(other).LengthSquared()
}

// Normalize scales the vector to unit length in place. A vector whose
// length is already exactly 1.0 is left bit-for-bit untouched, so an
// established unit vector never drifts from repeated normalization.
// A zero vector fails with ErrDegenerateVector and the receiver is not
// modified.
func (v *Vector3) Normalize() error {
	length := v.Length()
	if length == 1.0 {
		return nil
	}
	if length == 0 {
		return fmt.Errorf("normalize: %w", ErrDegenerateVector)
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	return nil
}

// Normalized returns a unit vector in the same direction, keeping the
// receiver's position/free tag. A zero vector fails with
// ErrDegenerateVector.
func (v Vector3) Normalized() (Vector3, error) {
	if err := v.Normalize(); err != nil {
		return Vector3{}, err
	}
	return v, nil
}

// Angle returns the unsigned angle to other in radians, in [0, pi].
// The acos argument is clamped to [-1, 1], so accumulated rounding in
// near-(anti)parallel inputs never produces NaN.
func (v Vector3) Angle(other Vector3) float64 {
	cos := v.Dot(other) / (v.Length() * other.Length())
	return math.Acos(clamp(cos, -1, 1))
}

// SignedAngle returns the angle to other with the sign taken from the z
// component of the cross product, for vectors near the xy plane
func (v Vector3) SignedAngle(other Vector3) float64 {
	angle := v.Angle(other)
	if v.Cross(other).Z < 0 {
		return -angle
	}
	return angle
}

// SignedAngleAbout returns the angle to other with the sign taken from
// the cross product's component along the given reference axis
func (v Vector3) SignedAngleAbout(other, axis Vector3) float64 {
	angle := v.Angle(other)
	if v.Cross(other).Dot(axis) < 0 {
		return -angle
	}
	return angle
}

// Equals reports whether the sum of squared component differences is
// below Epsilon. The position/free tag is ignored.
func (v Vector3) Equals(other Vector3) bool {
	return v.DistanceSquared(other) < Epsilon
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// String formats the vector as "(x, y, z)" with six decimal places
func (v Vector3) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
