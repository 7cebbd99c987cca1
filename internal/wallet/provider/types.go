package provider

import (
	"context"
	"time"

	"github/chapool/mvx-signer/internal/wallet/chain"
)

// Config controls how the network API is reached.
type Config struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	// AllowInsecure permits plain http API addresses (local test networks).
	AllowInsecure bool
}

// Client fetches typed records from the MultiversX API of a network.
type Client interface {
	// GetNetworkParameters fetches the live network configuration.
	GetNetworkParameters(ctx context.Context, network *chain.Network) (*chain.Parameters, error)

	// GetToken fetches a fungible token by identifier.
	GetToken(ctx context.Context, network *chain.Network, identifier string) (*Token, error)

	// GetCollection fetches an NFT, SFT or Meta ESDT collection.
	GetCollection(ctx context.Context, network *chain.Network, collection string) (*Collection, error)
}

// Token types reported by the API.
const (
	TypeFungible     = "FungibleESDT"
	TypeSemiFungible = "SemiFungibleESDT"
	TypeNonFungible  = "NonFungibleESDT"
	TypeMeta         = "MetaESDT"
)

type Token struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Ticker     string `json:"ticker"`
	Decimals   int    `json:"decimals"`
	Type       string `json:"type"`
}

type Collection struct {
	Collection string `json:"collection"`
	Name       string `json:"name"`
	Ticker     string `json:"ticker"`
	Type       string `json:"type"`
	Decimals   int    `json:"decimals"` // only set for Meta ESDT
}

type networkConfigResponse struct {
	Data struct {
		Config struct {
			ChainID                string `json:"erd_chain_id"`
			Denomination           int    `json:"erd_denomination"`
			GasPerDataByte         uint64 `json:"erd_gas_per_data_byte"`
			GasPriceModifier       string `json:"erd_gas_price_modifier"`
			MinGasLimit            uint64 `json:"erd_min_gas_limit"`
			MinGasPrice            uint64 `json:"erd_min_gas_price"`
			ExtraGasLimitGuardedTx uint64 `json:"erd_extra_gas_limit_guarded_tx"`
		} `json:"config"`
	} `json:"data"`
	Code  string `json:"code"`
	Error string `json:"error"`
}
