//go:build wireinject

package api

import (
	"testing"

	"github.com/google/wire"
	"github/chapool/mvx-signer/internal/config"
	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/confirm"
	"github/chapool/mvx-signer/internal/wallet/seed"
	"github/chapool/mvx-signer/internal/wallet/signer"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	metrics.New,
	NewClock,
	NewRegistry,
	NewNetworkClient,
	NewKeystore,
	seed.NewManager,
	address.NewService,
	NewKeyProvider,
	signer.NewService,
	confirm.NewBroker,
	NewApprover,
	NewWallet,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NoTest)
	return new(Server), nil
}

// InitNewServerWithClock returns a new Server instance using a mock clock when t is given.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithClock(
	_ config.Server,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
