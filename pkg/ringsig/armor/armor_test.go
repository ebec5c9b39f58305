package armor_test

import (
	"bytes"
	"crypto/rand"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ringlink/ringsig-go/pkg/ringsig"
	"github.com/ringlink/ringsig-go/pkg/ringsig/armor"
	"github.com/ringlink/ringsig-go/pkg/ringsig/curve"
)

// sampleSignature builds a structurally valid signature with n members. The
// codec validates field encodings, not the verification equation, so random
// field values are sufficient.
func sampleSignature(t *testing.T, n int) *ringsig.Signature {
	t.Helper()
	ops := curve.Ed25519()
	sig := &ringsig.Signature{
		Ring:      make([]curve.Point, n),
		Responses: make([]curve.Scalar, n),
	}
	for i := range sig.Ring {
		s, err := ops.RandomScalar(rand.Reader)
		require.NoError(t, err)
		sig.Ring[i], err = ops.BaseMul(s)
		require.NoError(t, err)
		sig.Responses[i], err = ops.RandomScalar(rand.Reader)
		require.NoError(t, err)
	}
	sig.KeyImage = ops.HashToPoint([]byte("sample key image"))
	var err error
	sig.Challenge0, err = ops.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return sig
}

func TestSignatureRoundTrip(t *testing.T) {
	codec := armor.NewEd25519Codec()

	for _, n := range []int{1, 2, 5, 64} {
		sig := sampleSignature(t, n)
		data, err := codec.EncodeSignature(sig)
		require.NoError(t, err, "ring size %d", n)

		require.True(t, bytes.HasPrefix(data, []byte("-----BEGIN RING SIGNATURE-----\n")))
		require.True(t, bytes.HasSuffix(data, []byte("-----END RING SIGNATURE-----\n")))

		decoded, err := codec.DecodeSignature(data)
		require.NoError(t, err, "ring size %d", n)
		require.Equal(t, sig, decoded, "ring size %d", n)
	}
}

func TestRealSignatureRoundTrip(t *testing.T) {
	scheme := ringsig.NewEd25519()
	codec := armor.NewEd25519Codec()

	kp, err := scheme.GenerateKey(rand.Reader)
	require.NoError(t, err)
	other, err := scheme.GenerateKey(rand.Reader)
	require.NoError(t, err)
	ring := []curve.Point{kp.Public, other.Public}
	message := []byte("round trip")

	sig, err := scheme.Sign(rand.Reader, message, ring, kp)
	require.NoError(t, err)

	data, err := codec.EncodeSignature(sig)
	require.NoError(t, err)
	decoded, err := codec.DecodeSignature(data)
	require.NoError(t, err)

	require.True(t, scheme.Verify(message, decoded))
}

func TestEncodeSignatureStructuralErrors(t *testing.T) {
	codec := armor.NewEd25519Codec()

	_, err := codec.EncodeSignature(&ringsig.Signature{})
	require.ErrorIs(t, err, ringsig.ErrEmptyRing)

	sig := sampleSignature(t, 3)
	sig.Responses = sig.Responses[:2]
	_, err = codec.EncodeSignature(sig)
	require.ErrorIs(t, err, ringsig.ErrMalformedSignature)
}

func TestDecodeSignatureRejectsGarbage(t *testing.T) {
	codec := armor.NewEd25519Codec()

	_, err := codec.DecodeSignature(nil)
	require.ErrorIs(t, err, ringsig.ErrFormat)

	_, err = codec.DecodeSignature([]byte("not armored at all"))
	require.ErrorIs(t, err, ringsig.ErrFormat)

	// Valid armor, wrong type tag.
	pub, err := codec.EncodePublicKey(curve.Ed25519().HashToPoint([]byte("p")))
	require.NoError(t, err)
	_, err = codec.DecodeSignature(pub)
	require.ErrorIs(t, err, ringsig.ErrFormat)

	// Corrupted base64 body.
	data, err := codec.EncodeSignature(sampleSignature(t, 2))
	require.NoError(t, err)
	corrupt := bytes.Replace(data, []byte("\n"), []byte("\n!!!!"), 1)
	_, err = codec.DecodeSignature(corrupt)
	require.ErrorIs(t, err, ringsig.ErrFormat)
}

// rawSignatureBlock armors an arbitrary payload under the signature tag.
func rawSignatureBlock(payload []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: armor.TypeRingSignature, Bytes: payload})
}

func TestDecodeSignatureRejectsBadPayloads(t *testing.T) {
	codec := armor.NewEd25519Codec()
	ops := curve.Ed25519()

	point := ops.HashToPoint([]byte("valid"))

	// Not a multiple of the field size.
	_, err := codec.DecodeSignature(rawSignatureBlock(make([]byte, 33)))
	require.ErrorIs(t, err, ringsig.ErrFormat)

	// Too few fields for even a one-member ring (needs 4).
	_, err = codec.DecodeSignature(rawSignatureBlock(make([]byte, 3*curve.Size)))
	require.ErrorIs(t, err, ringsig.ErrFormat)
	_, err = codec.DecodeSignature(rawSignatureBlock(nil))
	require.ErrorIs(t, err, ringsig.ErrFormat)

	// Odd field count cannot be 2n+2.
	_, err = codec.DecodeSignature(rawSignatureBlock(make([]byte, 5*curve.Size)))
	require.ErrorIs(t, err, ringsig.ErrFormat)

	// Ring entry that is the identity point.
	payload := make([]byte, 0, 4*curve.Size)
	payload = append(payload, 1)
	payload = append(payload, make([]byte, curve.Size-1)...)
	payload = append(payload, point[:]...)
	payload = append(payload, make([]byte, 2*curve.Size)...)
	_, err = codec.DecodeSignature(rawSignatureBlock(payload))
	require.ErrorIs(t, err, ringsig.ErrInvalidPoint)

	// Non-canonical challenge scalar (the group order itself).
	order := []byte{
		0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0x10,
	}
	payload = payload[:0]
	payload = append(payload, point[:]...)
	payload = append(payload, point[:]...)
	payload = append(payload, order...)
	payload = append(payload, make([]byte, curve.Size)...)
	_, err = codec.DecodeSignature(rawSignatureBlock(payload))
	require.ErrorIs(t, err, ringsig.ErrFormat)
}

func TestPublicKeyRoundTrip(t *testing.T) {
	codec := armor.NewEd25519Codec()
	ops := curve.Ed25519()

	s, err := ops.RandomScalar(rand.Reader)
	require.NoError(t, err)
	pub, err := ops.BaseMul(s)
	require.NoError(t, err)

	data, err := codec.EncodePublicKey(pub)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("-----BEGIN RINGSIG PUBLIC KEY-----\n")))

	decoded, err := codec.DecodePublicKey(data)
	require.NoError(t, err)
	require.True(t, decoded.Equal(pub))
}

func TestPublicKeyRejections(t *testing.T) {
	codec := armor.NewEd25519Codec()

	// Encoding refuses the identity.
	_, err := codec.EncodePublicKey(curve.Point{1})
	require.ErrorIs(t, err, ringsig.ErrInvalidPoint)

	// Decoding refuses the identity.
	block := pem.EncodeToMemory(&pem.Block{Type: armor.TypePublicKey, Bytes: append([]byte{1}, make([]byte, curve.Size-1)...)})
	_, err = codec.DecodePublicKey(block)
	require.ErrorIs(t, err, ringsig.ErrInvalidPoint)

	// Decoding refuses a short payload.
	block = pem.EncodeToMemory(&pem.Block{Type: armor.TypePublicKey, Bytes: make([]byte, 16)})
	_, err = codec.DecodePublicKey(block)
	require.ErrorIs(t, err, ringsig.ErrFormat)
}

func TestSecretKeyRoundTrip(t *testing.T) {
	codec := armor.NewEd25519Codec()
	ops := curve.Ed25519()

	secret, err := ops.SecretScalar(rand.Reader)
	require.NoError(t, err)

	data, err := codec.EncodeSecretKey(secret)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("-----BEGIN RINGSIG SECRET KEY-----\n")))

	decoded, err := codec.DecodeSecretKey(data)
	require.NoError(t, err)
	require.True(t, decoded.Equal(secret))
}

func TestSecretKeyRejections(t *testing.T) {
	codec := armor.NewEd25519Codec()

	var nonCanonical curve.Scalar
	for i := range nonCanonical {
		nonCanonical[i] = 0xff
	}
	_, err := codec.EncodeSecretKey(nonCanonical)
	require.ErrorIs(t, err, ringsig.ErrFormat)

	block := pem.EncodeToMemory(&pem.Block{Type: armor.TypeSecretKey, Bytes: nonCanonical[:]})
	decoded, err := codec.DecodeSecretKey(block)
	require.ErrorIs(t, err, ringsig.ErrFormat)
	require.True(t, decoded.Equal(curve.Scalar{}))

	block = pem.EncodeToMemory(&pem.Block{Type: armor.TypeSecretKey, Bytes: make([]byte, 31)})
	_, err = codec.DecodeSecretKey(block)
	require.ErrorIs(t, err, ringsig.ErrFormat)
}
