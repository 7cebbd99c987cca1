package confirm_test

import (
	"context"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet/confirm"
	"github/chapool/mvx-signer/internal/wallet/disclosure"
)

func NewTestClock() *time2.MockClock {
	return time2.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func TestBrokerResolve(t *testing.T) {
	clock := NewTestClock()
	broker := confirm.NewBroker(clock, nil)

	first, err := broker.RequestApproval(context.Background(), disclosure.ForMessage("first"))
	require.NoError(t, err)

	clock.Advance(time.Second)

	second, err := broker.RequestApproval(context.Background(), disclosure.ForMessage("second"))
	require.NoError(t, err)

	pending := broker.List()
	require.Len(t, pending, 2)
	assert.Equal(t, "first", pending[0].Prompt.Lines[0].Value)
	assert.Equal(t, "second", pending[1].Prompt.Lines[0].Value)
	assert.True(t, pending[0].CreatedAt.Before(pending[1].CreatedAt))

	got, err := broker.Get(pending[1].ID)
	require.NoError(t, err)
	assert.Equal(t, pending[1].ID, got.ID)

	require.NoError(t, broker.Resolve(pending[1].ID, confirm.DecisionRejected))
	require.NoError(t, broker.Resolve(pending[0].ID, confirm.DecisionApproved))

	assert.Equal(t, confirm.DecisionApproved, <-first)
	assert.Equal(t, confirm.DecisionRejected, <-second)
	assert.Empty(t, broker.List())
}

func TestBrokerResolveUnknown(t *testing.T) {
	broker := confirm.NewBroker(NewTestClock(), nil)

	err := broker.Resolve("does-not-exist", confirm.DecisionApproved)
	require.ErrorIs(t, err, confirm.ErrConfirmationNotFound)

	_, err = broker.Get("does-not-exist")
	require.ErrorIs(t, err, confirm.ErrConfirmationNotFound)
}

func TestBrokerResolveTwice(t *testing.T) {
	broker := confirm.NewBroker(NewTestClock(), nil)

	_, err := broker.RequestApproval(context.Background(), disclosure.ForMessage("once"))
	require.NoError(t, err)

	id := broker.List()[0].ID
	require.NoError(t, broker.Resolve(id, confirm.DecisionApproved))
	require.ErrorIs(t, broker.Resolve(id, confirm.DecisionApproved), confirm.ErrConfirmationNotFound)
}
