package armor

import (
	"encoding/pem"
	"fmt"

	"github.com/ringlink/ringsig-go/pkg/ringsig"
	"github.com/ringlink/ringsig-go/pkg/ringsig/curve"
)

// Container type tags.
const (
	TypeRingSignature = "RING SIGNATURE"
	TypePublicKey     = "RINGSIG PUBLIC KEY"
	TypeSecretKey     = "RINGSIG SECRET KEY"
)

// Codec encodes and decodes protocol artifacts against a curve backend,
// which it uses to validate decoded fields. The zero-dependency wire layout
// is independent of the in-memory types.
type Codec struct {
	ops curve.Ops
}

// NewCodec returns a Codec validating against the given backend.
func NewCodec(ops curve.Ops) *Codec {
	return &Codec{ops: ops}
}

// NewEd25519Codec returns a Codec over the default Ed25519 backend.
func NewEd25519Codec() *Codec {
	return NewCodec(curve.Ed25519())
}

func errorf(op string, format string, args ...any) error {
	return &ringsig.Error{Op: op, Err: fmt.Errorf(format, args...)}
}

// EncodeSignature renders sig as an armored text block. The signature must
// satisfy the structural invariant len(Responses) == len(Ring) ≥ 1.
func (c *Codec) EncodeSignature(sig *ringsig.Signature) ([]byte, error) {
	const op = "EncodeSignature"
	n := len(sig.Ring)
	if n == 0 {
		return nil, errorf(op, "%w", ringsig.ErrEmptyRing)
	}
	if len(sig.Responses) != n {
		return nil, errorf(op, "%w: %d ring entries, %d responses",
			ringsig.ErrMalformedSignature, n, len(sig.Responses))
	}

	payload := make([]byte, 0, curve.Size*(2*n+2))
	for i := range sig.Ring {
		payload = append(payload, sig.Ring[i][:]...)
	}
	payload = append(payload, sig.KeyImage[:]...)
	payload = append(payload, sig.Challenge0[:]...)
	for i := range sig.Responses {
		payload = append(payload, sig.Responses[i][:]...)
	}

	return pem.EncodeToMemory(&pem.Block{Type: TypeRingSignature, Bytes: payload}), nil
}

// DecodeSignature parses an armored signature block, validating every field.
func (c *Codec) DecodeSignature(data []byte) (*ringsig.Signature, error) {
	const op = "DecodeSignature"
	payload, err := decodeBlock(op, data, TypeRingSignature)
	if err != nil {
		return nil, err
	}
	if len(payload)%curve.Size != 0 {
		return nil, errorf(op, "%w: payload is %d bytes, not a multiple of %d",
			ringsig.ErrFormat, len(payload), curve.Size)
	}
	fields := len(payload) / curve.Size
	// A signature is 2n+2 fields with n ≥ 1.
	if fields < 4 || fields%2 != 0 {
		return nil, errorf(op, "%w: impossible field count %d", ringsig.ErrFormat, fields)
	}
	n := (fields - 2) / 2

	sig := &ringsig.Signature{
		Ring:      make([]curve.Point, n),
		Responses: make([]curve.Scalar, n),
	}
	next := func() []byte {
		field := payload[:curve.Size]
		payload = payload[curve.Size:]
		return field
	}
	for i := 0; i < n; i++ {
		copy(sig.Ring[i][:], next())
		if !c.ops.IsValidPoint(sig.Ring[i]) {
			return nil, errorf(op, "%w: ring entry %d", ringsig.ErrInvalidPoint, i)
		}
	}
	copy(sig.KeyImage[:], next())
	if !c.ops.IsValidPoint(sig.KeyImage) {
		return nil, errorf(op, "%w: key image", ringsig.ErrInvalidPoint)
	}
	copy(sig.Challenge0[:], next())
	if !c.ops.IsCanonicalScalar(sig.Challenge0) {
		return nil, errorf(op, "%w: non-canonical challenge", ringsig.ErrFormat)
	}
	for i := 0; i < n; i++ {
		copy(sig.Responses[i][:], next())
		if !c.ops.IsCanonicalScalar(sig.Responses[i]) {
			return nil, errorf(op, "%w: non-canonical response %d", ringsig.ErrFormat, i)
		}
	}
	return sig, nil
}

// EncodePublicKey renders a public key as an armored text block.
func (c *Codec) EncodePublicKey(pub curve.Point) ([]byte, error) {
	const op = "EncodePublicKey"
	if !c.ops.IsValidPoint(pub) {
		return nil, errorf(op, "%w", ringsig.ErrInvalidPoint)
	}
	return pem.EncodeToMemory(&pem.Block{Type: TypePublicKey, Bytes: pub[:]}), nil
}

// DecodePublicKey parses an armored public key block.
func (c *Codec) DecodePublicKey(data []byte) (curve.Point, error) {
	const op = "DecodePublicKey"
	var pub curve.Point
	payload, err := decodeBlock(op, data, TypePublicKey)
	if err != nil {
		return pub, err
	}
	if len(payload) != curve.Size {
		return pub, errorf(op, "%w: payload is %d bytes, want %d",
			ringsig.ErrFormat, len(payload), curve.Size)
	}
	copy(pub[:], payload)
	if !c.ops.IsValidPoint(pub) {
		return curve.Point{}, errorf(op, "%w", ringsig.ErrInvalidPoint)
	}
	return pub, nil
}

// EncodeSecretKey renders a secret scalar as an armored text block.
func (c *Codec) EncodeSecretKey(secret curve.Scalar) ([]byte, error) {
	const op = "EncodeSecretKey"
	if !c.ops.IsCanonicalScalar(secret) {
		return nil, errorf(op, "%w: non-canonical secret scalar", ringsig.ErrFormat)
	}
	return pem.EncodeToMemory(&pem.Block{Type: TypeSecretKey, Bytes: secret[:]}), nil
}

// DecodeSecretKey parses an armored secret key block.
func (c *Codec) DecodeSecretKey(data []byte) (curve.Scalar, error) {
	const op = "DecodeSecretKey"
	var secret curve.Scalar
	payload, err := decodeBlock(op, data, TypeSecretKey)
	if err != nil {
		return secret, err
	}
	if len(payload) != curve.Size {
		return secret, errorf(op, "%w: payload is %d bytes, want %d",
			ringsig.ErrFormat, len(payload), curve.Size)
	}
	copy(secret[:], payload)
	if !c.ops.IsCanonicalScalar(secret) {
		ringsig.ZeroizeBytes(secret[:])
		return curve.Scalar{}, errorf(op, "%w: non-canonical secret scalar", ringsig.ErrFormat)
	}
	return secret, nil
}

func decodeBlock(op string, data []byte, wantType string) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errorf(op, "%w: no armored block found", ringsig.ErrFormat)
	}
	if block.Type != wantType {
		return nil, errorf(op, "%w: unexpected type %q, want %q",
			ringsig.ErrFormat, block.Type, wantType)
	}
	return block.Bytes, nil
}
