package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/util"
)

// ProbeReadiness checks the signer can sign: the seed is unlocked and the keystore is present.
func ProbeReadiness(ctx context.Context, s *api.Server) (string, []error) {
	var str strings.Builder
	var errs []error

	if s.Seed == nil || !s.Seed.IsInitialized() {
		errs = append(errs, errors.New("wallet is locked"))
		str.WriteString("Wallet: locked\n")
	} else {
		str.WriteString("Wallet: unlocked\n")
	}

	keystoreStr, keystoreErrs := ProbeKeystore(ctx, s)
	str.WriteString(keystoreStr)

	return str.String(), append(errs, keystoreErrs...)
}

// ProbeLiveness additionally fetches the network configuration of every probed chain.
func ProbeLiveness(ctx context.Context, s *api.Server) (string, []error) {
	str, errs := ProbeReadiness(ctx, s)

	networkStr, networkErrs := ProbeNetworks(ctx, s)

	return str + networkStr, append(errs, networkErrs...)
}

// ProbeKeystore checks the keystore file exists. It is skipped when a plain mnemonic is configured.
func ProbeKeystore(ctx context.Context, s *api.Server) (string, []error) {
	if s.Config.Signer.Mnemonic != "" {
		return "Keystore: skipped\n", nil
	}

	exists, err := s.Keystore.Exists(ctx)
	switch {
	case err != nil:
		return fmt.Sprintf("Keystore: %v\n", err), []error{errors.Wrap(err, "keystore check failed")}
	case !exists:
		return "Keystore: missing\n", []error{errors.Errorf("keystore %s not found", s.Keystore.Path())}
	}

	return "Keystore: ok\n", nil
}

// ProbeNetworks fetches the network configuration of the chains listed in the management config.
func ProbeNetworks(ctx context.Context, s *api.Server) (string, []error) {
	log := util.LogFromContext(ctx)

	var str strings.Builder
	var errs []error

	for _, chainID := range s.Config.Management.ProbeChains {
		network, err := s.Registry.Resolve(chainID)
		if err != nil {
			errs = append(errs, err)
			fmt.Fprintf(&str, "Network %s: unknown\n", chainID)
			continue
		}

		if _, err := s.Network.GetNetworkParameters(ctx, network); err != nil {
			log.Debug().Err(err).Str("chain_id", chainID).Msg("Network probe failed")
			errs = append(errs, errors.Wrapf(err, "network %s", network.Name))
			fmt.Fprintf(&str, "Network %s: unreachable\n", network.Name)
			continue
		}

		fmt.Fprintf(&str, "Network %s: ok\n", network.Name)
	}

	return str.String(), errs
}
