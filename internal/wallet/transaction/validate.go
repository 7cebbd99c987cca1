package transaction

import (
	"fmt"

	"github.com/kat-co/vala"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/amount"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

// Validate checks the caller supplied fields. It never calls the network.
func (i *Intent) Validate() error {
	err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(i.Sender, "sender"),
		vala.StringNotEmpty(i.Receiver, "receiver"),
		vala.StringNotEmpty(i.ChainID, "chainID"),
		isAddress(i.Sender, "sender"),
		isAddress(i.Receiver, "receiver"),
		isAmount(i.Value, "value"),
		isPositive(i.GasLimit, "gasLimit"),
		isPositive(i.GasPrice, "gasPrice"),
		isPositive(uint64(i.Version), "version"),
		isOptionalAddress(i.Guardian, "guardian"),
		isOptionalAddress(i.Relayer, "relayer"),
	).Check()
	if err != nil {
		return errs.Wrap(errs.ErrInvalidIntent, err)
	}

	return nil
}

func isAddress(addr string, paramName string) vala.Checker {
	return func() (bool, string) {
		if address.IsValid(addr) {
			return true, ""
		}

		return false, fmt.Sprintf("parameter %s is not a valid address: %q", paramName, addr)
	}
}

func isOptionalAddress(addr string, paramName string) vala.Checker {
	return func() (bool, string) {
		if addr == "" {
			return true, ""
		}

		return isAddress(addr, paramName)()
	}
}

func isAmount(value string, paramName string) vala.Checker {
	return func() (bool, string) {
		if amount.IsInteger(value, true) {
			return true, ""
		}

		return false, fmt.Sprintf("parameter %s must be a non-negative integer: %q", paramName, value)
	}
}

func isPositive(value uint64, paramName string) vala.Checker {
	return func() (bool, string) {
		if value > 0 {
			return true, ""
		}

		return false, fmt.Sprintf("parameter %s must be greater than zero", paramName)
	}
}
