package errs_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

func TestErrorMatchesSentinelThroughWrapping(t *testing.T) {
	err := errors.Wrap(errs.New(errs.ErrUserRejected, "Message must be signed by the user"), "sign message")

	assert.ErrorIs(t, err, errs.ErrUserRejected)
	assert.NotErrorIs(t, err, errs.ErrEmptyBatch)
	assert.Equal(t, errs.KindUserDecision, errs.KindOf(err))
	assert.Equal(t, "USER_REJECTED", errs.CodeOf(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := errs.Wrap(errs.ErrNetworkUnavailable, cause)

	assert.ErrorIs(t, err, errs.ErrNetworkUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, errs.KindEnvironment, errs.KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, errs.Kind(""), errs.KindOf(errors.New("boom")))
	assert.Equal(t, "", errs.CodeOf(nil))
}
