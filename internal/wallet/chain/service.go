package chain

import (
	"sort"
	"strings"

	"github/chapool/mvx-signer/internal/wallet/errs"
)

const (
	ChainIDMainnet = "1"
	ChainIDDevnet  = "D"
	ChainIDTestnet = "T"

	nativeDecimals = 18
	nativeIcon     = "egld-logo"
)

var networks = []Network{
	{ChainID: ChainIDMainnet, Name: "mainnet", Label: "EGLD", Decimals: nativeDecimals, APIAddress: "https://api.multiversx.com", Icon: nativeIcon},
	{ChainID: ChainIDDevnet, Name: "devnet", Label: "xEGLD", Decimals: nativeDecimals, APIAddress: "https://devnet-api.multiversx.com", Icon: nativeIcon},
	{ChainID: ChainIDTestnet, Name: "testnet", Label: "xEGLD", Decimals: nativeDecimals, APIAddress: "https://testnet-api.multiversx.com", Icon: nativeIcon},
}

type registry struct {
	byID map[string]Network
}

// NewRegistry builds the registry. apiOverrides maps a chain id to an alternative API address;
// overrides for unknown chain ids are ignored, the table of chains itself is fixed.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewRegistry(apiOverrides map[string]string) Registry {
	r := &registry{byID: make(map[string]Network, len(networks))}

	for _, n := range networks {
		// config files lowercase map keys
		for chainID, api := range apiOverrides {
			if strings.EqualFold(chainID, n.ChainID) && api != "" {
				n.APIAddress = strings.TrimRight(api, "/")
			}
		}
		r.byID[n.ChainID] = n
	}

	return r
}

func (r *registry) Resolve(chainID string) (*Network, error) {
	n, ok := r.byID[chainID]
	if !ok {
		return nil, errs.Newf(errs.ErrUnknownChain, "Cannot identify the network for chain id %q", chainID)
	}

	return &n, nil
}

func (r *registry) List() []*Network {
	result := make([]*Network, 0, len(r.byID))
	for _, n := range r.byID {
		result = append(result, &n)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ChainID < result[j].ChainID })

	return result
}

// ParseAPIOverrides parses "D=https://a,T=https://b" into a chain id keyed map.
// Empty or malformed entries are skipped.
func ParseAPIOverrides(raw string) map[string]string {
	result := make(map[string]string)
	if raw == "" {
		return result
	}

	for _, entry := range strings.Split(raw, ",") {
		chainID, api, found := strings.Cut(strings.TrimSpace(entry), "=")
		chainID, api = strings.TrimSpace(chainID), strings.TrimSpace(api)
		if !found || chainID == "" || api == "" {
			continue
		}

		result[chainID] = api
	}

	return result
}
