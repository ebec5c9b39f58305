package curve

import (
	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// Elligator 2 map onto the birationally equivalent Montgomery curve
// y² = x³ + Ax² + x with A = 486662, followed by conversion to Edwards form
// and cofactor multiplication. This mirrors the construction behind
// libsodium's crypto_core_ed25519_from_uniform. The map runs in variable
// time; its inputs are hashes of public values.

var (
	feZero = new(field.Element).Zero()
	feOne  = new(field.Element).One()
	feA    = new(field.Element).Mult32(new(field.Element).One(), 486662)
)

// montRHS returns x³ + Ax² + x.
func montRHS(x *field.Element) *field.Element {
	xx := new(field.Element).Square(x)
	out := new(field.Element).Multiply(xx, x)
	out.Add(out, new(field.Element).Multiply(feA, xx))
	return out.Add(out, x)
}

// mapToPoint maps 32 uniform bytes to a point in the prime-order subgroup.
// The bool result is false for the handful of degenerate field inputs whose
// image would be the identity; callers re-derive the input and try again.
func mapToPoint(u [Size]byte) (*edwards25519.Point, bool) {
	// SetBytes ignores the top bit, which we reuse below as the x sign.
	r, err := new(field.Element).SetBytes(u[:])
	if err != nil {
		return nil, false
	}

	// x₁ = −A / (1 + 2r²). The denominator is never zero: −1/2 is not a
	// square modulo 2²⁵⁵ − 19.
	den := new(field.Element).Square(r)
	den.Add(den, den)
	den.Add(den, feOne)
	x := new(field.Element).Negate(feA)
	x.Multiply(x, new(field.Element).Invert(den))

	if _, wasSquare := new(field.Element).SqrtRatio(montRHS(x), feOne); wasSquare == 0 {
		// x₂ = −x₁ − A lies on the curve whenever x₁ does not.
		x.Negate(x)
		x.Subtract(x, feA)
		if _, wasSquare := new(field.Element).SqrtRatio(montRHS(x), feOne); wasSquare == 0 {
			return nil, false
		}
	}

	// Birational map to Edwards form: y = (x − 1)/(x + 1). Decoding the
	// y encoding recovers the Edwards x coordinate from the curve equation.
	den = new(field.Element).Add(x, feOne)
	if den.Equal(feZero) == 1 {
		return nil, false
	}
	y := new(field.Element).Subtract(x, feOne)
	y.Multiply(y, new(field.Element).Invert(den))

	var enc [Size]byte
	copy(enc[:], y.Bytes())
	enc[31] |= u[31] & 0x80

	pt, err := new(edwards25519.Point).SetBytes(enc[:])
	if err != nil {
		// The only failing case is x = 0 with the sign bit set; the
		// unsigned encoding of the same y is always valid.
		enc[31] &^= 0x80
		if pt, err = new(edwards25519.Point).SetBytes(enc[:]); err != nil {
			return nil, false
		}
	}
	pt.MultByCofactor(pt)
	if pt.Equal(identity) == 1 {
		return nil, false
	}
	return pt, true
}
