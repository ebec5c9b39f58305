package curve

import (
	"crypto/subtle"
	"io"
)

// Size is the byte length of every encoded scalar and point.
const Size = 32

// Scalar is the canonical 32-byte little-endian encoding of an integer
// modulo the group order L. Secret keys, challenges, and responses are all
// scalars.
type Scalar [Size]byte

// Point is the compressed 32-byte encoding of a group element. Public keys,
// commitments, hash-to-point outputs, and key images are all points.
type Point [Size]byte

// Equal reports whether two scalars are identical. The comparison runs in
// constant time.
func (s Scalar) Equal(t Scalar) bool {
	return subtle.ConstantTimeCompare(s[:], t[:]) == 1
}

// Equal reports whether two point encodings are identical. The comparison
// runs in constant time.
func (p Point) Equal(q Point) bool {
	return subtle.ConstantTimeCompare(p[:], q[:]) == 1
}

// Ops is the curve-arithmetic capability the protocol depends on. All
// methods operate on the fixed 32-byte encodings above. Implementations must
// provide constant-time scalar and point operations; inputs that do not
// decode to canonical scalars or valid curve points produce errors.
type Ops interface {
	// BaseMul returns s·Base.
	BaseMul(s Scalar) (Point, error)

	// Mul returns s·P.
	Mul(s Scalar, p Point) (Point, error)

	// Add returns P + Q.
	Add(p, q Point) (Point, error)

	// HashToPoint deterministically maps arbitrary bytes to a point in the
	// prime-order subgroup with no known discrete logarithm.
	HashToPoint(data []byte) Point

	// HashToScalar deterministically maps arbitrary bytes to a uniformly
	// distributed scalar modulo L.
	HashToScalar(data []byte) Scalar

	// IsValidPoint reports whether p is a canonical encoding of a point in
	// the prime-order subgroup. The identity element and low-order torsion
	// points are invalid.
	IsValidPoint(p Point) bool

	// IsCanonicalScalar reports whether s encodes an integer below L.
	IsCanonicalScalar(s Scalar) bool

	// RandomScalar draws a scalar uniformly at random modulo L.
	RandomScalar(rand io.Reader) (Scalar, error)

	// SecretScalar draws 32 random bytes and applies the curve's clamping
	// convention, yielding a canonical secret-key scalar.
	SecretScalar(rand io.Reader) (Scalar, error)

	// MulSub returns c − a·b (mod L).
	MulSub(a, b, c Scalar) (Scalar, error)
}
