package ringsig

import (
	"github.com/ringlink/ringsig-go/pkg/ringsig/curve"
)

// Scheme binds the ring signature protocol to a curve backend. All
// operations are safe for concurrent use; the scheme itself holds no
// mutable state.
type Scheme struct {
	ops curve.Ops
}

// New returns a Scheme over the given curve backend.
func New(ops curve.Ops) *Scheme {
	return &Scheme{ops: ops}
}

// NewEd25519 returns a Scheme over the default Ed25519 backend.
func NewEd25519() *Scheme {
	return New(curve.Ed25519())
}

// Signature is a one-time linkable ring signature: the ring it was produced
// against, the signer's key image, the first challenge of the Fiat–Shamir
// chain, and one response scalar per ring slot. A Signature is immutable
// after creation and carries no reference to the signer's ring position.
type Signature struct {
	Ring       []curve.Point
	KeyImage   curve.Point
	Challenge0 curve.Scalar
	Responses  []curve.Scalar
}

// Linked reports whether two signatures were produced by the same secret
// key. This is the caller-level reuse policy primitive; it does not check
// that either signature verifies.
func Linked(a, b *Signature) bool {
	if a == nil || b == nil {
		return false
	}
	return a.KeyImage.Equal(b.KeyImage)
}
