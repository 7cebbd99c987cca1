package signer

import (
	"context"

	"github/chapool/mvx-signer/internal/wallet/transaction"
)

// MessagePrefix is prepended, with the decimal message length, to every signed message.
const MessagePrefix = "\x17Elrond Signed Message:\n"

// KeyProvider yields the account key pair for a single signing operation.
// The caller must Wipe the returned key pair when done.
type KeyProvider interface {
	Derive(ctx context.Context) (*Keypair, error)
}

// Service signs on behalf of the single account.
type Service interface {
	// Address returns the bech32 address of the account
	Address(ctx context.Context) (string, error)

	// SignTransaction signs the canonical form of the intent
	SignTransaction(ctx context.Context, intent *transaction.Intent) (*transaction.Signed, error)

	// SignMessage signs an arbitrary message with the message prefix
	SignMessage(ctx context.Context, message []byte) ([]byte, error)

	// SignAuthToken signs address+token with the message prefix
	SignAuthToken(ctx context.Context, token string) ([]byte, error)
}
