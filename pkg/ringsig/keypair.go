package ringsig

import (
	"io"

	"github.com/ringlink/ringsig-go/pkg/ringsig/curve"
)

// KeyPair holds a secret scalar and the matching public key, with the
// invariant Public = Secret·Base. Key pairs are generated once and never
// mutated; persistence is the caller's concern.
type KeyPair struct {
	Public curve.Point
	Secret curve.Scalar
}

// Zeroize overwrites the secret scalar. The key pair must not be used
// afterwards.
func (kp *KeyPair) Zeroize() {
	ZeroizeBytes(kp.Secret[:])
}

// GenerateKey draws 32 bytes from rand, applies the curve's clamping
// convention to obtain the secret scalar, and derives the public key.
func (s *Scheme) GenerateKey(rand io.Reader) (*KeyPair, error) {
	const op = "GenerateKey"
	secret, err := s.ops.SecretScalar(rand)
	if err != nil {
		return nil, errorf(op, "%w: %v", ErrRandomness, err)
	}
	public, err := s.ops.BaseMul(secret)
	if err != nil {
		return nil, errorf(op, "%v", err)
	}
	return &KeyPair{Public: public, Secret: secret}, nil
}

// KeyPairFromSecret rebuilds a key pair from a stored secret scalar.
func (s *Scheme) KeyPairFromSecret(secret curve.Scalar) (*KeyPair, error) {
	const op = "KeyPairFromSecret"
	if !s.ops.IsCanonicalScalar(secret) {
		return nil, errorf(op, "non-canonical secret scalar")
	}
	public, err := s.ops.BaseMul(secret)
	if err != nil {
		return nil, errorf(op, "%v", err)
	}
	return &KeyPair{Public: public, Secret: secret}, nil
}

// KeyImage derives the linkability tag Secret·Hp(Public). The public key is
// rederived from the secret, so the tag is a deterministic function of the
// secret alone: the same secret always yields the same image, whatever ring
// it later signs in.
func (s *Scheme) KeyImage(kp *KeyPair) (curve.Point, error) {
	const op = "KeyImage"
	public, err := s.ops.BaseMul(kp.Secret)
	if err != nil {
		return curve.Point{}, errorf(op, "%v", err)
	}
	hp := s.ops.HashToPoint(public[:])
	image, err := s.ops.Mul(kp.Secret, hp)
	if err != nil {
		return curve.Point{}, errorf(op, "%v", err)
	}
	return image, nil
}
