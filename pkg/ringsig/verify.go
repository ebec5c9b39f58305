package ringsig

// Verify reports whether sig is a valid ring signature over message. It is a
// pure, deterministic function: a well-formed but cryptographically invalid
// signature yields false, as does any structural defect (length mismatch,
// non-canonical scalar, invalid or identity point, empty ring).
//
// Verify never compares key images across signatures; detecting signer reuse
// is a caller-level policy (see Linked).
func (s *Scheme) Verify(message []byte, sig *Signature) bool {
	if sig == nil {
		return false
	}
	n := len(sig.Ring)
	if n == 0 || len(sig.Responses) != n {
		return false
	}
	if !s.ops.IsValidPoint(sig.KeyImage) {
		return false
	}
	if !s.ops.IsCanonicalScalar(sig.Challenge0) {
		return false
	}
	for i := range sig.Ring {
		if !s.ops.IsValidPoint(sig.Ring[i]) {
			return false
		}
		if !s.ops.IsCanonicalScalar(sig.Responses[i]) {
			return false
		}
	}

	// Recompute the challenge chain from Challenge0; the signature is valid
	// iff the chain closes on the value it started from.
	c := sig.Challenge0
	for i := 0; i < n; i++ {
		sG, err := s.ops.BaseMul(sig.Responses[i])
		if err != nil {
			return false
		}
		cP, err := s.ops.Mul(c, sig.Ring[i])
		if err != nil {
			return false
		}
		l, err := s.ops.Add(sG, cP)
		if err != nil {
			return false
		}
		hp := s.ops.HashToPoint(sig.Ring[i][:])
		sH, err := s.ops.Mul(sig.Responses[i], hp)
		if err != nil {
			return false
		}
		cI, err := s.ops.Mul(c, sig.KeyImage)
		if err != nil {
			return false
		}
		r, err := s.ops.Add(sH, cI)
		if err != nil {
			return false
		}
		c = s.challenge(message, l, r)
	}
	return c.Equal(sig.Challenge0)
}
