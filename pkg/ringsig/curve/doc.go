// Package curve defines the narrow curve-arithmetic capability that the ring
// signature protocol is built on, together with the default Ed25519 backend.
//
// The protocol packages depend only on the Ops interface, never on a concrete
// backend, so any constant-time implementation of the prime-order subgroup
// operations can be substituted.
//
// # Key Types
//
//   - Scalar: canonical 32-byte little-endian encoding of an integer modulo
//     the group order L
//   - Point: compressed 32-byte encoding of a point in the prime-order
//     subgroup
//   - Ops: the capability interface (base-point and point multiplication,
//     point addition, hash-to-point, hash-to-scalar, validity checks, and the
//     scalar arithmetic needed to close a ring)
//
// # Backend
//
// Ed25519() returns an Ops backed by filippo.io/edwards25519. Hashing uses
// SHA3-512; hash-to-point applies the Elligator 2 map followed by cofactor
// multiplication, so outputs always land in the prime-order subgroup and
// carry no known discrete logarithm.
//
// Points that decode to the identity, to a low-order element, or to a
// non-canonical encoding are rejected by IsValidPoint.
package curve
