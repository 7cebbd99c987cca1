package amount

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

const thousandsSeparator = ","

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Options controls how a base-unit integer is rendered.
type Options struct {
	Decimals                int  // Decimal places of the token (18 for EGLD)
	Digits                  int  // Fractional digits to display
	GroupThousands          bool // Insert "," between groups of the integer part
	KeepTrailingSignificant bool // Extend past Digits up to the last non-zero digit
}

// Format renders raw (a signed integer in base units) as a decimal string shifted by
// opts.Decimals places. It works on the digit string only, so the result is exact for any size.
//
// Trailing zeros of the displayed fraction are trimmed. A non-zero amount whose displayed
// fraction truncates to zeros keeps opts.Digits zeros ("0.0000") instead of collapsing to "0".
func Format(raw string, opts Options) (string, error) {
	if opts.Decimals < 0 || opts.Digits < 0 {
		return "", errs.Newf(errs.ErrInvalidAmount, "invalid format options: decimals=%d digits=%d", opts.Decimals, opts.Digits)
	}

	value, err := parseInteger(raw)
	if err != nil {
		return "", err
	}

	negative := value.Sign() < 0
	digits := new(big.Int).Abs(value).String()

	integerPart, fraction := digits, ""
	if opts.Decimals > 0 {
		if len(digits) <= opts.Decimals {
			digits = strings.Repeat("0", opts.Decimals+1-len(digits)) + digits
		}
		integerPart = digits[:len(digits)-opts.Decimals]
		fraction = digits[len(digits)-opts.Decimals:]
	}

	// length of the fraction up to and including its last non-zero digit
	significant := strings.LastIndexFunc(fraction, func(r rune) bool { return r != '0' }) + 1

	cut := opts.Digits
	if opts.KeepTrailingSignificant && significant > cut {
		cut = significant
	}
	if len(fraction) < cut {
		fraction += strings.Repeat("0", cut-len(fraction))
	}
	shown := fraction[:cut]

	switch trimmed := strings.TrimRight(shown, "0"); {
	case trimmed != "":
		fraction = trimmed
	case significant > 0:
		fraction = shown
	default:
		fraction = ""
	}

	if opts.GroupThousands {
		integerPart = groupThousands(integerPart)
	}

	var builder strings.Builder
	if negative {
		builder.WriteByte('-')
	}
	builder.WriteString(integerPart)
	if fraction != "" {
		builder.WriteByte('.')
		builder.WriteString(fraction)
	}

	return builder.String(), nil
}

// IsInteger reports whether s is a base-10 integer, optionally restricted to non-negative values.
func IsInteger(s string, positiveOnly bool) bool {
	if !integerPattern.MatchString(s) {
		return false
	}

	return !positiveOnly || !strings.HasPrefix(s, "-")
}

func parseInteger(raw string) (*big.Int, error) {
	if !integerPattern.MatchString(raw) {
		return nil, errs.Newf(errs.ErrInvalidAmount, "amount %q is not an integer", raw)
	}

	const base10 = 10
	value, ok := new(big.Int).SetString(raw, base10)
	if !ok {
		return nil, errors.Wrapf(errs.ErrInvalidAmount, "failed to parse amount %q", raw)
	}

	return value, nil
}

func groupThousands(integerPart string) string {
	const groupSize = 3
	if len(integerPart) <= groupSize {
		return integerPart
	}

	head := len(integerPart) % groupSize
	groups := make([]string, 0, len(integerPart)/groupSize+1)
	if head > 0 {
		groups = append(groups, integerPart[:head])
	}
	for i := head; i < len(integerPart); i += groupSize {
		groups = append(groups, integerPart[i:i+groupSize])
	}

	return strings.Join(groups, thousandsSeparator)
}
