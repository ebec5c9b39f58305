package curve

import (
	"crypto/subtle"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// ed25519Ops implements Ops over the prime-order subgroup of edwards25519
// using filippo.io/edwards25519. Scalar and point operations in that library
// are constant time; only validity checks and hash-to-point run in variable
// time, and both operate exclusively on public inputs.
type ed25519Ops struct{}

// Ed25519 returns the default curve backend.
func Ed25519() Ops { return ed25519Ops{} }

var (
	identity = edwards25519.NewIdentityPoint()

	// scalarMinusOne is L−1, used for the subgroup membership check.
	scalarMinusOne = newScalarMinusOne()
)

func newScalarMinusOne() *edwards25519.Scalar {
	one := [Size]byte{1}
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(one[:])
	if err != nil {
		panic("curve: scalar one: " + err.Error())
	}
	return sc.Negate(sc)
}

func decodeScalar(s Scalar) (*edwards25519.Scalar, error) {
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(s[:])
	if err != nil {
		return nil, fmt.Errorf("non-canonical scalar: %w", err)
	}
	return sc, nil
}

func decodePoint(p Point) (*edwards25519.Point, error) {
	pt, err := new(edwards25519.Point).SetBytes(p[:])
	if err != nil {
		return nil, fmt.Errorf("invalid point encoding: %w", err)
	}
	return pt, nil
}

func encodeScalar(sc *edwards25519.Scalar) Scalar {
	var out Scalar
	copy(out[:], sc.Bytes())
	return out
}

func encodePoint(pt *edwards25519.Point) Point {
	var out Point
	copy(out[:], pt.Bytes())
	return out
}

func (ed25519Ops) BaseMul(s Scalar) (Point, error) {
	sc, err := decodeScalar(s)
	if err != nil {
		return Point{}, err
	}
	return encodePoint(new(edwards25519.Point).ScalarBaseMult(sc)), nil
}

func (ed25519Ops) Mul(s Scalar, p Point) (Point, error) {
	sc, err := decodeScalar(s)
	if err != nil {
		return Point{}, err
	}
	pt, err := decodePoint(p)
	if err != nil {
		return Point{}, err
	}
	return encodePoint(new(edwards25519.Point).ScalarMult(sc, pt)), nil
}

func (ed25519Ops) Add(p, q Point) (Point, error) {
	pp, err := decodePoint(p)
	if err != nil {
		return Point{}, err
	}
	qq, err := decodePoint(q)
	if err != nil {
		return Point{}, err
	}
	return encodePoint(new(edwards25519.Point).Add(pp, qq)), nil
}

func (ed25519Ops) HashToScalar(data []byte) Scalar {
	digest := sha3.Sum512(data)
	// SetUniformBytes only fails on inputs that are not 64 bytes long.
	sc, err := edwards25519.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic("curve: uniform scalar: " + err.Error())
	}
	return encodeScalar(sc)
}

func (ed25519Ops) HashToPoint(data []byte) Point {
	digest := sha3.Sum512(data)
	for {
		var u [Size]byte
		copy(u[:], digest[:Size])
		if pt, ok := mapToPoint(u); ok {
			return encodePoint(pt)
		}
		// Degenerate field input (probability about 2^-250): re-hash.
		digest = sha3.Sum512(digest[:])
	}
}

func (ed25519Ops) IsValidPoint(p Point) bool {
	pt, err := decodePoint(p)
	if err != nil {
		return false
	}
	// Only canonical encodings round-trip byte for byte.
	if subtle.ConstantTimeCompare(pt.Bytes(), p[:]) != 1 {
		return false
	}
	if pt.Equal(identity) == 1 {
		return false
	}
	// P is torsion-free iff [L]P is the identity, computed as [L−1]P + P.
	q := new(edwards25519.Point).ScalarMult(scalarMinusOne, pt)
	q.Add(q, pt)
	return q.Equal(identity) == 1
}

func (ed25519Ops) IsCanonicalScalar(s Scalar) bool {
	_, err := decodeScalar(s)
	return err == nil
}

func (ed25519Ops) RandomScalar(rand io.Reader) (Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rand, wide[:]); err != nil {
		return Scalar{}, fmt.Errorf("read randomness: %w", err)
	}
	sc, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return Scalar{}, err
	}
	return encodeScalar(sc), nil
}

func (ed25519Ops) SecretScalar(rand io.Reader) (Scalar, error) {
	var seed [Size]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return Scalar{}, fmt.Errorf("read randomness: %w", err)
	}
	sc, err := edwards25519.NewScalar().SetBytesWithClamping(seed[:])
	if err != nil {
		return Scalar{}, err
	}
	return encodeScalar(sc), nil
}

func (ed25519Ops) MulSub(a, b, c Scalar) (Scalar, error) {
	sa, err := decodeScalar(a)
	if err != nil {
		return Scalar{}, err
	}
	sb, err := decodeScalar(b)
	if err != nil {
		return Scalar{}, err
	}
	sc, err := decodeScalar(c)
	if err != nil {
		return Scalar{}, err
	}
	prod := edwards25519.NewScalar().Multiply(sa, sb)
	return encodeScalar(prod.Subtract(sc, prod)), nil
}
