package token

import (
	"context"
	"sync"

	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/calldata"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/provider"
)

type resolver struct {
	client provider.Client
}

// NewResolver creates a Resolver backed by the network API. Nothing is cached.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewResolver(client provider.Client) Resolver {
	return &resolver{client: client}
}

func (r *resolver) Resolve(ctx context.Context, network *chain.Network, transfer *calldata.Transfer) (*Metadata, error) {
	switch transfer.Kind {
	case calldata.KindNative, calldata.KindOpaqueCall:
		return NativeMetadata(network), nil
	case calldata.KindFungible:
		return r.resolveToken(ctx, network, transfer)
	case calldata.KindSemiFungible, calldata.KindNonFungible, calldata.KindMetaESDT:
		return r.resolveCollection(ctx, network, transfer)
	}

	return nil, errs.Newf(errs.ErrTokenMetadata, "Unsupported transfer kind %q", transfer.Kind)
}

func (r *resolver) resolveToken(ctx context.Context, network *chain.Network, transfer *calldata.Transfer) (*Metadata, error) {
	token, err := r.client.GetToken(ctx, network, transfer.Identifier)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("identifier", transfer.Identifier).Msg("Failed to resolve token")
		return nil, errs.Wrap(errs.ErrTokenMetadata, err)
	}

	return &Metadata{
		Identifier: transfer.DisplayIdentifier(),
		Name:       token.Name,
		Ticker:     token.Ticker,
		Decimals:   token.Decimals,
		Kind:       calldata.KindFungible,
	}, nil
}

func (r *resolver) resolveCollection(ctx context.Context, network *chain.Network, transfer *calldata.Transfer) (*Metadata, error) {
	collection, err := r.client.GetCollection(ctx, network, transfer.Identifier)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("collection", transfer.Identifier).Msg("Failed to resolve collection")
		return nil, errs.Wrap(errs.ErrTokenMetadata, err)
	}

	metadata := &Metadata{
		Identifier: transfer.DisplayIdentifier(),
		Name:       collection.Name,
		Ticker:     collection.Ticker,
		Kind:       transfer.Kind,
	}

	switch collection.Type {
	case provider.TypeMeta:
		metadata.Kind = calldata.KindMetaESDT
		metadata.Decimals = collection.Decimals
	case provider.TypeNonFungible:
		metadata.Kind = calldata.KindNonFungible
	case provider.TypeSemiFungible:
		metadata.Kind = calldata.KindSemiFungible
	}

	return metadata, nil
}

// NativeMetadata describes the native coin of the network.
func NativeMetadata(network *chain.Network) *Metadata {
	return &Metadata{
		Identifier: network.Label,
		Name:       network.Label,
		Ticker:     network.Label,
		Decimals:   network.Decimals,
		Kind:       calldata.KindNative,
		Icon:       network.Icon,
	}
}

type batchResolver struct {
	inner Resolver

	mu    sync.Mutex
	cache map[string]*Metadata
}

// NewBatchResolver deduplicates lookups of the same identifier within one batch.
// A new one must be created per invocation: metadata can change on-chain.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewBatchResolver(inner Resolver) Resolver {
	return &batchResolver{inner: inner, cache: make(map[string]*Metadata)}
}

func (b *batchResolver) Resolve(ctx context.Context, network *chain.Network, transfer *calldata.Transfer) (*Metadata, error) {
	key := network.ChainID + "/" + string(transfer.Kind) + "/" + transfer.DisplayIdentifier()

	b.mu.Lock()
	defer b.mu.Unlock()

	if metadata, ok := b.cache[key]; ok {
		return metadata, nil
	}

	metadata, err := b.inner.Resolve(ctx, network, transfer)
	if err != nil {
		return nil, err
	}

	b.cache[key] = metadata

	return metadata, nil
}
