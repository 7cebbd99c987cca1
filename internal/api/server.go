package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/mvx-signer/internal/config"
	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/confirm"
	"github/chapool/mvx-signer/internal/wallet/keystore"
	"github/chapool/mvx-signer/internal/wallet/provider"
	"github/chapool/mvx-signer/internal/wallet/seed"
	"github/chapool/mvx-signer/internal/wallet/signer"
)

type Router struct {
	Routes             []*echo.Route
	Root               *echo.Group
	Management         *echo.Group
	APIV1              *echo.Group
	APIV1Wallet        *echo.Group
	APIV1Confirmations *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config    config.Server
	Clock     time2.Clock
	Metrics   *metrics.Service
	Registry  chain.Registry
	Network   provider.Client
	Seed      seed.Manager
	Keystore  keystore.Service
	Addresses address.Service
	Signer    signer.Service
	Broker    *confirm.Broker // HTTP confirmation queue
	Wallet    wallet.Service
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	clock time2.Clock,
	metrics *metrics.Service,
	registry chain.Registry,
	network provider.Client,
	seedManager seed.Manager,
	keystoreService keystore.Service,
	addresses address.Service,
	signerService signer.Service,
	broker *confirm.Broker,
	walletService wallet.Service,
) *Server {
	return &Server{
		Config:    cfg,
		Clock:     clock,
		Metrics:   metrics,
		Registry:  registry,
		Network:   network,
		Seed:      seedManager,
		Keystore:  keystoreService,
		Addresses: addresses,
		Signer:    signerService,
		Broker:    broker,
		Wallet:    walletService,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

// Ready reports whether every component is initialized and the seed is unlocked.
func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	if !s.Seed.IsInitialized() {
		log.Debug().Msg("Wallet is locked")
		return false
	}

	return true
}

// Unlock initializes the seed from the configured mnemonic or keystore.
func (s *Server) Unlock(ctx context.Context, prompt wallet.PasswordPrompt) error {
	return wallet.UnlockSeed(ctx, s.Seed, s.Keystore, s.Addresses, wallet.UnlockOptions{
		Mnemonic:       s.Config.Signer.Mnemonic,
		Passphrase:     s.Config.Signer.Passphrase,
		DerivationPath: s.Config.Signer.DerivationPath,
		Password:       s.Config.Signer.KeystorePassword,
		Prompt:         prompt,
	})
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Seed != nil {
		log.Debug().Msg("Wiping seed")
		s.Seed.Clear()
	}

	return errs
}
