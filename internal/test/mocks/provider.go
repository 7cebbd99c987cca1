package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/provider"
)

// NetworkClient is a mock implementation of provider.Client
type NetworkClient struct {
	mock.Mock
}

var _ provider.Client = (*NetworkClient)(nil)

func (m *NetworkClient) GetNetworkParameters(ctx context.Context, network *chain.Network) (*chain.Parameters, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*chain.Parameters), args.Error(1)
}

func (m *NetworkClient) GetToken(ctx context.Context, network *chain.Network, identifier string) (*provider.Token, error) {
	args := m.Called(ctx, network, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*provider.Token), args.Error(1)
}

func (m *NetworkClient) GetCollection(ctx context.Context, network *chain.Network, collection string) (*provider.Collection, error) {
	args := m.Called(ctx, network, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*provider.Collection), args.Error(1)
}
