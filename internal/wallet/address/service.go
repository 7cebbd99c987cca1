package address

import (
	"context"
	"crypto/ed25519"

	"github.com/pkg/errors"
)

type service struct{}

// NewService creates a new address Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() Service {
	return &service{}
}

// DeriveAddress derives the bech32 address from seed and path
func (s *service) DeriveAddress(ctx context.Context, seed []byte, path string) (string, error) {
	privateKey, err := s.DerivePrivateKey(ctx, seed, path)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive private key")
	}
	defer clear(privateKey)

	return FromPrivateKey(privateKey)
}

// DerivePrivateKey derives the 32 byte ed25519 private key seed from seed and path
// WARNING: Caller must clear the private key after use
func (s *service) DerivePrivateKey(_ context.Context, seed []byte, path string) ([]byte, error) {
	if len(seed) == 0 {
		return nil, errors.New("seed is empty")
	}

	key, err := deriveKeyFromPath(seed, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key from path")
	}

	return key, nil
}

// FromPrivateKey returns the address of a 32 byte ed25519 private key seed.
func FromPrivateKey(privateKey []byte) (string, error) {
	if len(privateKey) != ed25519.SeedSize {
		return "", errors.Errorf("invalid private key length %d", len(privateKey))
	}

	expanded := ed25519.NewKeyFromSeed(privateKey)
	defer clear(expanded)

	pubKey, ok := expanded.Public().(ed25519.PublicKey)
	if !ok {
		return "", errors.New("failed to cast public key to ed25519")
	}

	return Encode(pubKey)
}
