package chain

// Network is a static entry of the registry.
type Network struct {
	ChainID    string `json:"chainId"`
	Name       string `json:"name"`
	Label      string `json:"label"`    // ticker of the native coin
	Decimals   int    `json:"decimals"` // decimals of the native coin
	APIAddress string `json:"apiAddress"`
	Icon       string `json:"icon"`
}

// Parameters are the live network parameters needed to compute fees and build disclosures.
// They are fetched fresh for every invocation and never cached.
type Parameters struct {
	Network

	MinGasLimit            uint64 `json:"minGasLimit"`
	MinGasPrice            uint64 `json:"minGasPrice"`
	GasPerDataByte         uint64 `json:"gasPerDataByte"`
	GasPriceModifier       string `json:"gasPriceModifier"` // decimal string, e.g. "0.01"
	ExtraGasLimitGuardedTx uint64 `json:"extraGasLimitGuardedTx"`
}

// Registry resolves chain identifiers against the static table of supported networks.
type Registry interface {
	// Resolve returns the network for chainID or errs.ErrUnknownChain.
	Resolve(chainID string) (*Network, error)

	// List returns all supported networks ordered by chain id.
	List() []*Network
}
