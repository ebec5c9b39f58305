// Package ringsig implements one-time linkable ring signatures over a
// prime-order elliptic-curve group.
//
// A signer holding one secret key among a published set of public keys (the
// "ring") produces a signature that any verifier can confirm was created by
// some member of the ring without learning which one. Every signature carries
// a deterministic key image derived from the secret key, so reuse of the same
// key across signatures is detectable without revealing the key itself.
//
// The construction is the CryptoNote-style chained Fiat–Shamir proof: the
// challenge for each ring slot is a hash of the message and the previous
// slot's commitments, and the chain must close back on the first challenge.
//
// # Usage
//
//	scheme := ringsig.NewEd25519()
//	kp, err := scheme.GenerateKey(rand.Reader)
//	sig, err := scheme.Sign(rand.Reader, message, ring, kp)
//	ok := scheme.Verify(message, sig)
//
// Linkability is a caller-level policy: Verify never inspects other
// signatures. Use Linked to detect that two otherwise-valid signatures were
// produced by the same secret key.
//
// # Security Properties
//
//   - Anonymity: a signature does not reveal the signer's position in the
//     ring; the signing loop executes the same operation shape for every
//     slot, so there is no data-dependent branching on the hidden index.
//   - One-time linkability: identical secrets always yield identical key
//     images, independent of message and ring.
//   - Ring ordering is caller-supplied and not authenticated; duplicate
//     public keys within a ring are permitted and do not affect
//     verification.
//
// All protocol operations are synchronous, pure functions over fixed-size
// byte values. Curve arithmetic is delegated to the curve.Ops capability
// interface; see the curve subpackage for the default Ed25519 backend.
package ringsig
