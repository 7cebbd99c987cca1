package wallet

import (
	"context"

	"github.com/go-openapi/swag"
	"github/chapool/mvx-signer/internal/api"
	"github/chapool/mvx-signer/internal/api/httperrors"
	"github/chapool/mvx-signer/internal/types"
	"github/chapool/mvx-signer/internal/util"
	walletsvc "github/chapool/mvx-signer/internal/wallet"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

// The operations below back both the REST routes of this package and the RPC endpoint.

func GetAddress(ctx context.Context, s *api.Server) (*types.GetAddressResponse, error) {
	addr, err := s.Wallet.GetAddress(ctx)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to get address")
		return nil, err
	}

	return &types.GetAddressResponse{Address: swag.String(addr)}, nil
}

func SignTransactions(ctx context.Context, s *api.Server, params *types.SignTransactionsParams) (*types.SignTransactionsResponse, error) {
	signed, err := s.Wallet.SignTransactions(ctx, params.Transactions)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Int("count", len(params.Transactions)).Msg("Failed to sign transactions")
		return nil, err
	}

	return &types.SignTransactionsResponse{Transactions: signed}, nil
}

func SignMessage(ctx context.Context, s *api.Server, params *types.SignMessageParams) (*types.SignatureResponse, error) {
	signature, err := s.Wallet.SignMessage(ctx, swag.StringValue(params.Message))
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to sign message")
		return nil, err
	}

	return &types.SignatureResponse{Signature: swag.String(signature)}, nil
}

// SignAuthToken signs for the Origin header of the request. params.Origin is only used when
// the request has no Origin header (non-browser clients) and must match the header otherwise.
func SignAuthToken(ctx context.Context, s *api.Server, params *types.SignAuthTokenParams, headerOrigin string) (*types.SignatureResponse, error) {
	origin, err := requestingOrigin(params.Origin, headerOrigin)
	if err != nil {
		util.LogFromContext(ctx).Warn().Str("origin", headerOrigin).Str("claimedOrigin", params.Origin).Msg("Rejected auth token origin")
		return nil, err
	}

	signature, err := s.Wallet.SignAuthToken(ctx, origin, swag.StringValue(params.Token))
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("origin", origin).Msg("Failed to sign auth token")
		return nil, err
	}

	return &types.SignatureResponse{Signature: swag.String(signature)}, nil
}

func requestingOrigin(claimed string, header string) (string, error) {
	if header == "" {
		if claimed == "" {
			return "", httperrors.ErrBadRequestOrigin
		}

		return claimed, nil
	}

	if claimed != "" {
		h, okHeader := walletsvc.NormalizeOrigin(header)
		c, okClaimed := walletsvc.NormalizeOrigin(claimed)
		if !okHeader || !okClaimed || h != c {
			return "", errs.Newf(errs.ErrUserRejected, "Origin %s does not match the requesting origin %s", claimed, header)
		}
	}

	return header, nil
}
