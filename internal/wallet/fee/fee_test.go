package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/fee"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

func params() *chain.Parameters {
	return &chain.Parameters{
		MinGasLimit:            50000,
		GasPerDataByte:         1500,
		GasPriceModifier:       "0.01",
		ExtraGasLimitGuardedTx: 50000,
	}
}

func TestComputeMinimalTransaction(t *testing.T) {
	intent := &transaction.Intent{GasPrice: 1000000000, GasLimit: 50000, Version: 1}

	got, err := fee.Compute(intent, params())
	require.NoError(t, err)
	assert.Equal(t, "50000000000000", got.String())
}

func TestComputeWithData(t *testing.T) {
	// "hello" -> 5 bytes of data, base gas 57500
	intent := &transaction.Intent{GasPrice: 1000000000, GasLimit: 57500, Data: []byte("hello"), Version: 1}

	got, err := fee.Compute(intent, params())
	require.NoError(t, err)
	assert.Equal(t, "57500000000000", got.String())
}

func TestComputeProcessingCost(t *testing.T) {
	intent := &transaction.Intent{GasPrice: 1000000000, GasLimit: 120000, Version: 1}

	got, err := fee.Compute(intent, params())
	require.NoError(t, err)
	// 50000*1e9 + 70000*1e9*0.01
	assert.Equal(t, "50700000000000", got.String())
}

func TestComputeTruncatesProcessingCost(t *testing.T) {
	// 3 * 7 * 0.01 = 0.21 -> 0
	intent := &transaction.Intent{GasPrice: 7, GasLimit: 50003, Version: 1}

	got, err := fee.Compute(intent, params())
	require.NoError(t, err)
	assert.Equal(t, "350000", got.String())
}

func TestComputeGuarded(t *testing.T) {
	intent := &transaction.Intent{
		GasPrice: 1000000000,
		GasLimit: 100000,
		Version:  2,
		Options:  transaction.OptionGuarded,
		Guardian: "erd1guardian",
	}

	assert.Equal(t, uint64(100000), fee.BaseGas(intent, params()))

	got, err := fee.Compute(intent, params())
	require.NoError(t, err)
	assert.Equal(t, "100000000000000", got.String())
}

func TestComputeInvalidGasLimit(t *testing.T) {
	intent := &transaction.Intent{GasPrice: 1000000000, GasLimit: 49999, Version: 1}

	_, err := fee.Compute(intent, params())
	require.ErrorIs(t, err, errs.ErrInvalidGasLimit)
	assert.Equal(t, errs.KindInputValidation, errs.KindOf(err))
}

func TestComputeInvalidModifier(t *testing.T) {
	p := params()
	p.GasPriceModifier = "n/a"

	_, err := fee.Compute(&transaction.Intent{GasPrice: 1, GasLimit: 60000, Version: 1}, p)
	require.ErrorIs(t, err, errs.ErrNetworkUnavailable)
}
