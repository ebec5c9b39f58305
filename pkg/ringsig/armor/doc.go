// Package armor implements the canonical textual encoding of ring
// signatures and standalone keys.
//
// The container is PEM-like: a base64 payload between type-tagged delimiter
// lines. Three tags exist:
//
//	-----BEGIN RING SIGNATURE-----
//	-----BEGIN RINGSIG PUBLIC KEY-----
//	-----BEGIN RINGSIG SECRET KEY-----
//
// A signature payload concatenates fixed 32-byte fields in the order
// ring[0..n-1], key image, first challenge, responses[0..n-1], for a total
// of 32·(2n+2) bytes with n ≥ 1. Key payloads are a single 32-byte field.
//
// Decoding is strict: a wrong tag, malformed base64, or an impossible
// payload length fails with ringsig.ErrFormat; a field that is not a valid
// subgroup point fails with ringsig.ErrInvalidPoint. For every value x that
// encodes successfully, Decode(Encode(x)) == x.
package armor
