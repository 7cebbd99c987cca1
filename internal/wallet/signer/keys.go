package signer

import (
	"context"
	"crypto/ed25519"

	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/seed"
)

// Keypair is an ed25519 key pair together with its bech32 address.
type Keypair struct {
	privateKey ed25519.PrivateKey
	Address    string
}

// NewKeypair expands a 32 byte private key seed.
func NewKeypair(privateKey []byte) (*Keypair, error) {
	if len(privateKey) != ed25519.SeedSize {
		return nil, errors.Errorf("invalid private key length %d", len(privateKey))
	}

	expanded := ed25519.NewKeyFromSeed(privateKey)

	addr, err := address.Encode(expanded.Public().(ed25519.PublicKey)) //nolint:forcetypeassert
	if err != nil {
		clear(expanded)
		return nil, errors.Wrap(err, "failed to encode address")
	}

	return &Keypair{privateKey: expanded, Address: addr}, nil
}

func (k *Keypair) PublicKey() ed25519.PublicKey {
	return k.privateKey.Public().(ed25519.PublicKey) //nolint:forcetypeassert
}

func (k *Keypair) Sign(data []byte) []byte {
	return ed25519.Sign(k.privateKey, data)
}

// Wipe zeroes the private key. The key pair is unusable afterwards.
func (k *Keypair) Wipe() {
	clear(k.privateKey)
	k.privateKey = nil
}

type seedKeyProvider struct {
	seedManager    seed.Manager
	addressService address.Service
	path           string
}

// NewSeedKeyProvider derives keys from the unlocked seed at the given path.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewSeedKeyProvider(seedManager seed.Manager, addressService address.Service, path string) KeyProvider {
	return &seedKeyProvider{
		seedManager:    seedManager,
		addressService: addressService,
		path:           path,
	}
}

func (p *seedKeyProvider) Derive(ctx context.Context) (*Keypair, error) {
	seed := p.seedManager.GetSeed()
	if seed == nil {
		return nil, errs.New(errs.ErrKeyUnavailable, "Wallet is locked")
	}
	defer clear(seed)

	privateKey, err := p.addressService.DerivePrivateKey(ctx, seed, p.path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKeyUnavailable, err)
	}
	defer clear(privateKey)

	kp, err := NewKeypair(privateKey)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKeyUnavailable, err)
	}

	return kp, nil
}
