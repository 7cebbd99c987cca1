package fee

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

// BaseGas is the gas consumed by moving the transaction, before any processing.
func BaseGas(intent *transaction.Intent, params *chain.Parameters) uint64 {
	gas := params.MinGasLimit + uint64(len(intent.Data))*params.GasPerDataByte
	if intent.IsGuarded() {
		gas += params.ExtraGasLimitGuardedTx
	}

	return gas
}

// Compute returns the exact fee in base units of the native coin:
//
//	baseGas*gasPrice + trunc((gasLimit-baseGas)*gasPrice*gasPriceModifier)
//
// A gas limit below the base gas fails with errs.ErrInvalidGasLimit.
func Compute(intent *transaction.Intent, params *chain.Parameters) (*big.Int, error) {
	baseGas := BaseGas(intent, params)
	if intent.GasLimit < baseGas {
		return nil, errs.Newf(errs.ErrInvalidGasLimit, "Gas limit %d is lower than the minimum %d", intent.GasLimit, baseGas)
	}

	modifier, err := decimal.NewFromString(params.GasPriceModifier)
	if err != nil {
		return nil, errs.Wrap(errs.ErrNetworkUnavailable, err)
	}

	gasPrice := new(big.Int).SetUint64(intent.GasPrice)

	movementCost := new(big.Int).Mul(new(big.Int).SetUint64(baseGas), gasPrice)

	processingGas := new(big.Int).SetUint64(intent.GasLimit - baseGas)
	processingCost := decimal.NewFromBigInt(new(big.Int).Mul(processingGas, gasPrice), 0).
		Mul(modifier).
		Truncate(0).
		BigInt()

	return movementCost.Add(movementCost, processingCost), nil
}
