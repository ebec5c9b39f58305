package ringsig

import (
	"io"

	"github.com/ringlink/ringsig-go/pkg/ringsig/curve"
)

// challengeTag domain-separates the Fiat–Shamir challenge hash.
const challengeTag = "ringsig.challenge.v1"

// challenge computes H(tag ‖ message ‖ L ‖ R) reduced to a scalar.
func (s *Scheme) challenge(message []byte, l, r curve.Point) curve.Scalar {
	buf := make([]byte, 0, len(challengeTag)+len(message)+2*curve.Size)
	buf = append(buf, challengeTag...)
	buf = append(buf, message...)
	buf = append(buf, l[:]...)
	buf = append(buf, r[:]...)
	return s.ops.HashToScalar(buf)
}

// Sign produces a ring signature binding message to the given ring under
// kp's secret key. The secret must correspond to one of the ring entries;
// its position is located internally and never leaks into the signature.
//
// Every ring slot, the signer's included, executes the same step
//
//	L = a·Base + b·P_i
//	R = a·Hp(P_i) + b·KeyImage
//
// varying only the two feeding scalars: (nonce, 0) at the signer's slot and
// (response_i, challenge_i) everywhere else.
func (s *Scheme) Sign(rand io.Reader, message []byte, ring []curve.Point, kp *KeyPair) (*Signature, error) {
	const op = "Sign"

	n := len(ring)
	if n == 0 {
		return nil, errorf(op, "%w", ErrEmptyRing)
	}
	for i := range ring {
		if !s.ops.IsValidPoint(ring[i]) {
			return nil, errorf(op, "%w: ring entry %d", ErrInvalidPoint, i)
		}
	}

	public, err := s.ops.BaseMul(kp.Secret)
	if err != nil {
		return nil, errorf(op, "%v", err)
	}
	// Full scan with no early exit on the match.
	signer := -1
	for i := range ring {
		if ring[i].Equal(public) && signer < 0 {
			signer = i
		}
	}
	if signer < 0 {
		return nil, errorf(op, "%w", ErrSecretNotInRing)
	}

	hp := make([]curve.Point, n)
	for i := range ring {
		hp[i] = s.ops.HashToPoint(ring[i][:])
	}
	image, err := s.ops.Mul(kp.Secret, hp[signer])
	if err != nil {
		return nil, errorf(op, "%v", err)
	}

	nonce, err := s.ops.RandomScalar(rand)
	if err != nil {
		return nil, errorf(op, "%w: %v", ErrRandomness, err)
	}
	responses := make([]curve.Scalar, n)
	for i := range responses {
		if i == signer {
			continue
		}
		if responses[i], err = s.ops.RandomScalar(rand); err != nil {
			return nil, errorf(op, "%w: %v", ErrRandomness, err)
		}
	}

	step := func(i int, a, b curve.Scalar) (curve.Point, curve.Point, error) {
		aG, err := s.ops.BaseMul(a)
		if err != nil {
			return curve.Point{}, curve.Point{}, err
		}
		bP, err := s.ops.Mul(b, ring[i])
		if err != nil {
			return curve.Point{}, curve.Point{}, err
		}
		l, err := s.ops.Add(aG, bP)
		if err != nil {
			return curve.Point{}, curve.Point{}, err
		}
		aH, err := s.ops.Mul(a, hp[i])
		if err != nil {
			return curve.Point{}, curve.Point{}, err
		}
		bI, err := s.ops.Mul(b, image)
		if err != nil {
			return curve.Point{}, curve.Point{}, err
		}
		r, err := s.ops.Add(aH, bI)
		if err != nil {
			return curve.Point{}, curve.Point{}, err
		}
		return l, r, nil
	}

	// Walk the ring starting at the signer's slot, chaining each challenge
	// into the next, then close the ring with the signer's response.
	challenges := make([]curve.Scalar, n)
	l, r, err := step(signer, nonce, curve.Scalar{})
	if err != nil {
		return nil, errorf(op, "%v", err)
	}
	challenges[(signer+1)%n] = s.challenge(message, l, r)
	for j := 1; j < n; j++ {
		i := (signer + j) % n
		if l, r, err = step(i, responses[i], challenges[i]); err != nil {
			return nil, errorf(op, "%v", err)
		}
		challenges[(i+1)%n] = s.challenge(message, l, r)
	}
	// response = nonce − challenge·secret (mod L)
	if responses[signer], err = s.ops.MulSub(challenges[signer], kp.Secret, nonce); err != nil {
		return nil, errorf(op, "%v", err)
	}

	return &Signature{
		Ring:       append([]curve.Point(nil), ring...),
		KeyImage:   image,
		Challenge0: challenges[0],
		Responses:  responses,
	}, nil
}
