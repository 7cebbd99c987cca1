package amount

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

// Parse converts a displayed amount (as produced by Format) back into base units.
// Amounts with more fractional digits than decimals are rejected rather than rounded.
func Parse(display string, decimals int) (*big.Int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(display), thousandsSeparator, "")

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidAmount, err)
	}

	shifted := value.Shift(int32(decimals)) //nolint:gosec // decimals are token decimals (0..18)
	if !shifted.IsInteger() {
		return nil, errs.Newf(errs.ErrInvalidAmount, "amount %q has more than %d decimals", display, decimals)
	}

	return shifted.BigInt(), nil
}
