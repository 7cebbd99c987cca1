package test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/router"
	"github/chapool/mvx-signer/internal/config"
	"github/chapool/mvx-signer/internal/wallet/chain"
)

const (
	// AliceMnemonic is the well known test wallet of the MultiversX tooling.
	AliceMnemonic = "moral volcano peasant pass circle pen over picture flat shop clap goat never lyrics gather prepare woman film husband gravity behind test tiger improve"
	AliceAddress  = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	BobAddress    = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"
)

// NewTestConfig returns the default config with an unlocked test wallet, a keystore path in
// a temp dir and devnet pointed at apiAddress.
func NewTestConfig(t *testing.T, apiAddress string) config.Server {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Logger.PrettyPrintConsole = false
	cfg.Signer.Mnemonic = AliceMnemonic
	cfg.Signer.KeystorePath = filepath.Join(t.TempDir(), "keystore.json")
	cfg.Signer.ScryptN = 1024
	cfg.Network.AllowInsecure = true
	cfg.Network.Timeout = 5 * time.Second
	cfg.Network.RequestsPerSecond = 0
	cfg.Network.APIOverrides = map[string]string{chain.ChainIDDevnet: apiAddress}
	cfg.Confirmation.Interactive = false
	cfg.AuthToken.AllowedOrigins = nil
	cfg.Management.ProbeChains = []string{chain.ChainIDDevnet}

	return cfg
}

// WithTestServer executes closure with a fully wired and unlocked server. Devnet is served by
// a fake network API.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	network := NewFakeNetwork(t)
	WithTestServerConfigurable(t, NewTestConfig(t, network.URL), closure)
}

// WithTestServerConfigurable executes closure with a server built from config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, config)

	closure(s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.Empty(t, s.Shutdown(ctx))
}

// NewTestServer returns a server with a mock clock, initialized router and unlocked seed.
func NewTestServer(t *testing.T, config config.Server) *api.Server {
	t.Helper()

	s, err := api.InitNewServerWithClock(config, t)
	require.NoError(t, err)

	require.NoError(t, router.Init(s))
	require.NoError(t, s.Unlock(t.Context(), nil))

	return s
}
