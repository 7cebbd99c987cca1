package token

import (
	"context"

	"github/chapool/mvx-signer/internal/wallet/calldata"
	"github/chapool/mvx-signer/internal/wallet/chain"
)

// Metadata describes how to display the amount of a transfer.
type Metadata struct {
	Identifier string        `json:"identifier"` // display identifier, COLLECTION-nonce for NFTs
	Name       string        `json:"name"`
	Ticker     string        `json:"ticker"`
	Decimals   int           `json:"decimals"`
	Kind       calldata.Kind `json:"kind"`
	Icon       string        `json:"icon,omitempty"`
}

// Resolver resolves the metadata of a decoded transfer.
type Resolver interface {
	Resolve(ctx context.Context, network *chain.Network, transfer *calldata.Transfer) (*Metadata, error)
}
