package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

const (
	aliceAddress = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	bobAddress   = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"
)

func devnet() *chain.Parameters {
	return &chain.Parameters{
		Network:          chain.Network{ChainID: chain.ChainIDDevnet, Label: "xEGLD", Decimals: 18},
		MinGasLimit:      50000,
		MinGasPrice:      1000000000,
		GasPerDataByte:   1500,
		GasPriceModifier: "0.01",
	}
}

func TestBuildTransferDefaults(t *testing.T) {
	intent, err := BuildTransfer(devnet(), aliceAddress, TransferFlags{
		To:     bobAddress,
		Amount: "1.5",
		Nonce:  3,
		Data:   "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "1500000000000000000", intent.Value)
	assert.Equal(t, aliceAddress, intent.Sender)
	assert.Equal(t, bobAddress, intent.Receiver)
	assert.Equal(t, chain.ChainIDDevnet, intent.ChainID)
	assert.Equal(t, uint64(3), intent.Nonce)
	assert.Equal(t, uint64(1000000000), intent.GasPrice)
	assert.Equal(t, uint64(50000+2*1500), intent.GasLimit)
	assert.Equal(t, []byte("hi"), intent.Data)
}

func TestBuildTransferExplicitGas(t *testing.T) {
	intent, err := BuildTransfer(devnet(), aliceAddress, TransferFlags{
		To:       bobAddress,
		Amount:   "0",
		GasPrice: 2000000000,
		GasLimit: 70000,
	})
	require.NoError(t, err)

	assert.Equal(t, "0", intent.Value)
	assert.Equal(t, uint64(2000000000), intent.GasPrice)
	assert.Equal(t, uint64(70000), intent.GasLimit)
	assert.Nil(t, intent.Data)
}

func TestBuildTransferInvalidAmount(t *testing.T) {
	for _, value := range []string{"abc", "0.0000000000000000001"} {
		_, err := BuildTransfer(devnet(), aliceAddress, TransferFlags{To: bobAddress, Amount: value})
		require.ErrorIs(t, err, errs.ErrInvalidAmount, value)
	}

	_, err := BuildTransfer(devnet(), aliceAddress, TransferFlags{To: bobAddress, Amount: "-1"})
	require.Error(t, err)
}

func TestVerifyMessageInvalidHex(t *testing.T) {
	_, err := verifyMessage(aliceAddress, "hello", "zz")
	require.Error(t, err)

	valid, err := verifyMessage(aliceAddress, "hello", "00")
	require.NoError(t, err)
	assert.False(t, valid)
}
