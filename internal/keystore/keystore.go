// Package keystore persists armored keys and signatures on disk for the
// command-line tool. The protocol packages never touch the filesystem; this
// is the collaborator layer that does.
package keystore

import (
	"fmt"
	"os"

	"github.com/ringlink/ringsig-go/pkg/ringsig"
	"github.com/ringlink/ringsig-go/pkg/ringsig/armor"
	"github.com/ringlink/ringsig-go/pkg/ringsig/curve"
)

const (
	secretKeyMode = 0o600
	publicMode    = 0o644
)

// Store reads and writes armored protocol artifacts.
type Store struct {
	codec  *armor.Codec
	scheme *ringsig.Scheme
}

// New returns a Store using the given codec and scheme.
func New(codec *armor.Codec, scheme *ringsig.Scheme) *Store {
	return &Store{codec: codec, scheme: scheme}
}

// NewEd25519 returns a Store over the default Ed25519 backend.
func NewEd25519() *Store {
	return New(armor.NewEd25519Codec(), ringsig.NewEd25519())
}

// SaveKeyPair writes the secret key (mode 0600) and public key (mode 0644)
// to their respective paths.
func (st *Store) SaveKeyPair(secretPath, publicPath string, kp *ringsig.KeyPair) error {
	secret, err := st.codec.EncodeSecretKey(kp.Secret)
	if err != nil {
		return err
	}
	defer ringsig.ZeroizeBytes(secret)
	public, err := st.codec.EncodePublicKey(kp.Public)
	if err != nil {
		return err
	}
	if err := os.WriteFile(secretPath, secret, secretKeyMode); err != nil {
		return fmt.Errorf("write secret key: %w", err)
	}
	if err := os.WriteFile(publicPath, public, publicMode); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}
	return nil
}

// LoadKeyPair reads a secret key file and rederives the public key.
func (st *Store) LoadKeyPair(secretPath string) (*ringsig.KeyPair, error) {
	data, err := os.ReadFile(secretPath)
	if err != nil {
		return nil, fmt.Errorf("read secret key: %w", err)
	}
	defer ringsig.ZeroizeBytes(data)
	secret, err := st.codec.DecodeSecretKey(data)
	if err != nil {
		return nil, err
	}
	return st.scheme.KeyPairFromSecret(secret)
}

// LoadPublicKey reads a single armored public key file.
func (st *Store) LoadPublicKey(path string) (curve.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return curve.Point{}, fmt.Errorf("read public key: %w", err)
	}
	return st.codec.DecodePublicKey(data)
}

// LoadRing reads one public key per path, in order.
func (st *Store) LoadRing(paths []string) ([]curve.Point, error) {
	ring := make([]curve.Point, 0, len(paths))
	for _, path := range paths {
		pub, err := st.LoadPublicKey(path)
		if err != nil {
			return nil, err
		}
		ring = append(ring, pub)
	}
	return ring, nil
}

// SaveSignature writes an armored signature file.
func (st *Store) SaveSignature(path string, sig *ringsig.Signature) error {
	data, err := st.codec.EncodeSignature(sig)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, publicMode); err != nil {
		return fmt.Errorf("write signature: %w", err)
	}
	return nil
}

// LoadSignature reads an armored signature file.
func (st *Store) LoadSignature(path string) (*ringsig.Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signature: %w", err)
	}
	return st.codec.DecodeSignature(data)
}
