package wallet

import (
	"context"

	"github/chapool/mvx-signer/internal/wallet/transaction"
)

// Service is the signer's public surface: one account, four operations.
type Service interface {
	// GetAddress returns the bech32 address of the account
	GetAddress(ctx context.Context) (string, error)

	// SignTransactions asks approval for every intent in order and returns the signed
	// transactions as JSON, in input order. Any rejection or failure discards the whole batch.
	SignTransactions(ctx context.Context, intents []*transaction.Intent) ([]string, error)

	// SignMessage asks approval for the message and returns the hex signature
	SignMessage(ctx context.Context, message string) (string, error)

	// SignAuthToken asks approval to log in to origin and returns the hex signature
	SignAuthToken(ctx context.Context, origin string, token string) (string, error)
}

// Config of the wallet service.
type Config struct {
	// AllowedOrigins may request auth tokens. Empty allows every origin; "*" is a wildcard entry.
	AllowedOrigins []string
}
