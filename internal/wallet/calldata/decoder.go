package calldata

import (
	"encoding/hex"
	"math/big"
	"regexp"
	"strings"

	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

const (
	FunctionESDTTransfer         = "ESDTTransfer"
	FunctionESDTNFTTransfer      = "ESDTNFTTransfer"
	FunctionMultiESDTNFTTransfer = "MultiESDTNFTTransfer"

	argumentSeparator = "@"
)

var functionNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Decode turns the intent's payload into the value movements it performs. It is pure parsing
// and never calls the network.
func Decode(intent *transaction.Intent) (*Operation, error) {
	value, ok := new(big.Int).SetString(intent.Value, 10)
	if !ok {
		return nil, errs.Newf(errs.ErrInvalidAmount, "Invalid transaction value %q", intent.Value)
	}

	data := string(intent.Data)
	native := Transfer{Kind: KindNative, Amount: value, Receiver: intent.Receiver}

	if data == "" {
		return &Operation{Transfers: []Transfer{native}}, nil
	}

	segments := strings.Split(data, argumentSeparator)
	function := segments[0]

	if !isFunctionCall(intent, segments) {
		return &Operation{Transfers: []Transfer{native}, Data: data}, nil
	}

	d := &decoder{intent: intent, value: value, args: segments[1:]}

	var (
		op  *Operation
		err error
	)

	switch function {
	case FunctionESDTTransfer:
		op, err = d.esdtTransfer()
	case FunctionESDTNFTTransfer:
		op, err = d.esdtNFTTransfer()
	case FunctionMultiESDTNFTTransfer:
		op, err = d.multiESDTNFTTransfer()
	default:
		op = &Operation{
			Transfers: []Transfer{{Kind: KindOpaqueCall, Amount: value, Receiver: intent.Receiver}},
			Function:  function,
			Arguments: d.args,
		}
	}
	if err != nil {
		return nil, err
	}

	op.Data = data

	return op, nil
}

// isFunctionCall reports whether the payload is a function call rather than a free text note.
// A payload without arguments is only a call when the receiver is a smart contract.
func isFunctionCall(intent *transaction.Intent, segments []string) bool {
	if !functionNamePattern.MatchString(segments[0]) {
		return false
	}

	if len(segments) > 1 {
		return true
	}

	pubKey, err := address.Decode(intent.Receiver)
	if err != nil {
		return false
	}

	return address.IsSmartContract(pubKey)
}

type decoder struct {
	intent *transaction.Intent
	value  *big.Int
	args   []string
}

// ESDTTransfer@token@amount[@function@args...]
func (d *decoder) esdtTransfer() (*Operation, error) {
	const minArgs = 2
	if len(d.args) < minArgs {
		return nil, malformed("%s expects at least %d arguments, got %d", FunctionESDTTransfer, minArgs, len(d.args))
	}

	identifier, err := decodeString(d.args[0])
	if err != nil {
		return nil, err
	}

	quantity, err := decodeBigInt(d.args[1])
	if err != nil {
		return nil, err
	}

	collection, nonce, err := splitIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	transfer := Transfer{
		Kind:       tokenKind(nonce, quantity),
		Identifier: collection,
		Nonce:      nonce,
		Amount:     quantity,
		Receiver:   d.intent.Receiver,
	}

	return d.withCall([]Transfer{transfer}, d.args[minArgs:])
}

// ESDTNFTTransfer@collection@nonce@quantity@destination[@function@args...]
func (d *decoder) esdtNFTTransfer() (*Operation, error) {
	const minArgs = 4
	if len(d.args) < minArgs {
		return nil, malformed("%s expects at least %d arguments, got %d", FunctionESDTNFTTransfer, minArgs, len(d.args))
	}

	collection, err := decodeString(d.args[0])
	if err != nil {
		return nil, err
	}

	nonce, err := decodeUint64(d.args[1])
	if err != nil {
		return nil, err
	}

	quantity, err := decodeBigInt(d.args[2])
	if err != nil {
		return nil, err
	}

	destination, err := decodeAddress(d.args[3])
	if err != nil {
		return nil, err
	}

	transfer := Transfer{
		Kind:             tokenKind(nonce, quantity),
		Identifier:       collection,
		Nonce:            nonce,
		Amount:           quantity,
		Receiver:         d.intent.Receiver,
		ReceiverOverride: destination,
	}

	return d.withCall([]Transfer{transfer}, d.args[minArgs:])
}

// MultiESDTNFTTransfer@destination@count@(token@nonce@amount)*count[@function@args...]
func (d *decoder) multiESDTNFTTransfer() (*Operation, error) {
	const (
		headerArgs  = 2
		tripletSize = 3
	)

	if len(d.args) < headerArgs {
		return nil, malformed("%s expects at least %d arguments, got %d", FunctionMultiESDTNFTTransfer, headerArgs, len(d.args))
	}

	destination, err := decodeAddress(d.args[0])
	if err != nil {
		return nil, err
	}

	count, err := decodeUint64(d.args[1])
	if err != nil {
		return nil, err
	}

	available := uint64(len(d.args)-headerArgs) / tripletSize
	if count == 0 || count > available {
		return nil, malformed("%s declares %d transfers but carries %d", FunctionMultiESDTNFTTransfer, count, available)
	}

	transfers := make([]Transfer, 0, count)
	for i := range int(count) { //nolint:gosec // bounded by len(d.args)
		triplet := d.args[headerArgs+i*tripletSize : headerArgs+(i+1)*tripletSize]

		identifier, err := decodeString(triplet[0])
		if err != nil {
			return nil, err
		}

		nonce, err := decodeUint64(triplet[1])
		if err != nil {
			return nil, err
		}

		quantity, err := decodeBigInt(triplet[2])
		if err != nil {
			return nil, err
		}

		transfers = append(transfers, Transfer{
			Kind:             tokenKind(nonce, quantity),
			Identifier:       identifier,
			Nonce:            nonce,
			Amount:           quantity,
			Receiver:         d.intent.Receiver,
			ReceiverOverride: destination,
		})
	}

	return d.withCall(transfers, d.args[headerArgs+int(count)*tripletSize:]) //nolint:gosec // bounded above
}

// withCall prepends a non-zero native value and attaches the trailing contract call, if any.
func (d *decoder) withCall(transfers []Transfer, rest []string) (*Operation, error) {
	op := &Operation{}

	if d.value.Sign() != 0 {
		op.Transfers = append(op.Transfers, Transfer{Kind: KindNative, Amount: d.value, Receiver: d.intent.Receiver})
	}
	op.Transfers = append(op.Transfers, transfers...)

	if len(rest) > 0 {
		function, err := decodeString(rest[0])
		if err != nil {
			return nil, err
		}

		op.Function = function
		op.Arguments = rest[1:]
	}

	return op, nil
}

func tokenKind(nonce uint64, quantity *big.Int) Kind {
	switch {
	case nonce == 0:
		return KindFungible
	case quantity.Cmp(big.NewInt(1)) == 0:
		return KindNonFungible
	default:
		return KindSemiFungible
	}
}

// splitIdentifier splits TICKER-random[-nonceHex] into the collection and the nonce.
func splitIdentifier(identifier string) (string, uint64, error) {
	const partsWithNonce = 3

	parts := strings.Split(identifier, "-")
	if len(parts) != partsWithNonce {
		return identifier, 0, nil
	}

	nonce, err := decodeUint64(parts[2])
	if err != nil {
		return "", 0, err
	}

	return parts[0] + "-" + parts[1], nonce, nil
}

func decodeString(arg string) (string, error) {
	raw, err := hex.DecodeString(arg)
	if err != nil {
		return "", malformed("invalid hex argument %q", arg)
	}

	if len(raw) == 0 {
		return "", malformed("empty argument")
	}

	return string(raw), nil
}

// decodeBigInt decodes a big endian unsigned integer; the empty argument is zero.
func decodeBigInt(arg string) (*big.Int, error) {
	raw, err := hex.DecodeString(arg)
	if err != nil {
		return nil, malformed("invalid hex argument %q", arg)
	}

	return new(big.Int).SetBytes(raw), nil
}

func decodeUint64(arg string) (uint64, error) {
	n, err := decodeBigInt(arg)
	if err != nil {
		return 0, err
	}

	if !n.IsUint64() {
		return 0, malformed("argument %q overflows uint64", arg)
	}

	return n.Uint64(), nil
}

func decodeAddress(arg string) (string, error) {
	raw, err := hex.DecodeString(arg)
	if err != nil || len(raw) != address.PubKeyLength {
		return "", malformed("invalid address argument %q", arg)
	}

	addr, err := address.Encode(raw)
	if err != nil {
		return "", errs.Wrap(errs.ErrMalformedPayload, err)
	}

	return addr, nil
}

func malformed(format string, args ...any) error {
	return errs.Newf(errs.ErrMalformedPayload, format, args...)
}
