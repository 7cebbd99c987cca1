package api

import (
	"os"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/rs/zerolog/log"
	"github/chapool/mvx-signer/internal/config"
	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/wallet"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/confirm"
	"github/chapool/mvx-signer/internal/wallet/keystore"
	"github/chapool/mvx-signer/internal/wallet/provider"
	"github/chapool/mvx-signer/internal/wallet/seed"
	"github/chapool/mvx-signer/internal/wallet/signer"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

func NoTest() []*testing.T {
	return nil
}

//nolint:ireturn
func NewRegistry(cfg config.Server) chain.Registry {
	return chain.NewRegistry(cfg.Network.APIOverrides)
}

//nolint:ireturn
func NewNetworkClient(cfg config.Server, m *metrics.Service) provider.Client {
	return provider.NewClient(provider.Config{
		Timeout:           cfg.Network.Timeout,
		RequestsPerSecond: cfg.Network.RequestsPerSecond,
		Burst:             cfg.Network.Burst,
		AllowInsecure:     cfg.Network.AllowInsecure,
	}, m)
}

//nolint:ireturn
func NewKeystore(cfg config.Server) keystore.Service {
	params := keystore.DefaultScryptParams()
	if cfg.Signer.ScryptN > 0 {
		params.N = cfg.Signer.ScryptN
	}

	return keystore.NewService(cfg.Signer.KeystorePath, params)
}

//nolint:ireturn
func NewKeyProvider(cfg config.Server, seedManager seed.Manager, addresses address.Service) signer.KeyProvider {
	return signer.NewSeedKeyProvider(seedManager, addresses, cfg.Signer.DerivationPath)
}

// NewApprover decides where confirmations are presented: the HTTP queue by default,
// or the server's terminal when configured.
//
//nolint:ireturn
func NewApprover(cfg config.Server, broker *confirm.Broker) confirm.Approver {
	if cfg.Confirmation.Interactive {
		log.Warn().Msg("Confirmations are prompted on the server terminal")
		return confirm.NewTerminal(os.Stdin, os.Stderr)
	}

	return broker
}

//nolint:ireturn
func NewWallet(
	cfg config.Server,
	registry chain.Registry,
	network provider.Client,
	signerService signer.Service,
	approver confirm.Approver,
	m *metrics.Service,
) wallet.Service {
	return wallet.NewService(registry, network, signerService, approver, m, wallet.Config{
		AllowedOrigins: cfg.AuthToken.AllowedOrigins,
	})
}
