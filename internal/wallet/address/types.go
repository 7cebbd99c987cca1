package address

import "context"

const (
	// HRP is the human readable part of MultiversX bech32 addresses.
	HRP = "erd"

	// PubKeyLength is the length of an account public key.
	PubKeyLength = 32

	// DefaultDerivationPath is the path of the first MultiversX account.
	DefaultDerivationPath = "m/44'/508'/0'/0'/0'"
)

// Service provides address derivation from a BIP39 seed
type Service interface {
	// DeriveAddress derives the bech32 address for the given path
	DeriveAddress(ctx context.Context, seed []byte, path string) (string, error)

	// DerivePrivateKey derives the 32 byte ed25519 private key seed for the given path
	// WARNING: Private key should be cleared after use
	DerivePrivateKey(ctx context.Context, seed []byte, path string) ([]byte, error)
}
