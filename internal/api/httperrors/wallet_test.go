package httperrors_test

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/api/httperrors"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

func TestFromWalletError(t *testing.T) {
	tests := []struct {
		err    error
		status int64
		code   string
	}{
		{errs.ErrMixedChain, http.StatusBadRequest, "MIXED_CHAIN"},
		{errs.Wrap(errs.ErrNetworkUnavailable, errors.New("dial tcp")), http.StatusBadGateway, "NETWORK_UNAVAILABLE"},
		{errors.Wrap(errs.New(errs.ErrUserRejected, "Message must be signed by the user"), "sequencer"), http.StatusForbidden, "USER_REJECTED"},
		{errs.ErrKeyUnavailable, http.StatusInternalServerError, "KEY_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			httpErr, ok := httperrors.FromWalletError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.status, *httpErr.Code)
			assert.Equal(t, tt.code, *httpErr.Type)
		})
	}

	rejected, ok := httperrors.FromWalletError(errors.Wrap(errs.New(errs.ErrUserRejected, "Message must be signed by the user"), "sequencer"))
	require.True(t, ok)
	assert.Equal(t, "Message must be signed by the user", *rejected.Title)

	_, ok = httperrors.FromWalletError(errors.New("plain"))
	assert.False(t, ok)
}
