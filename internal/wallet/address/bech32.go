package address

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"
)

// smartContractPrefixLength is the number of leading zero bytes in a contract public key.
const smartContractPrefixLength = 8

// Encode encodes a 32 byte public key as an erd1... address.
func Encode(pubKey []byte) (string, error) {
	if len(pubKey) != PubKeyLength {
		return "", errors.Errorf("invalid public key length %d", len(pubKey))
	}

	conv, err := bech32.ConvertBits(pubKey, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert public key bits")
	}

	encoded, err := bech32.Encode(HRP, conv)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode address")
	}

	return encoded, nil
}

// Decode returns the public key of an erd1... address.
func Decode(addr string) ([]byte, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %q", addr)
	}

	if hrp != HRP {
		return nil, errors.Errorf("invalid address %q: unexpected prefix %q", addr, hrp)
	}

	pubKey, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid address %q", addr)
	}

	if len(pubKey) != PubKeyLength {
		return nil, errors.Errorf("invalid address %q: public key has %d bytes", addr, len(pubKey))
	}

	return pubKey, nil
}

// IsValid reports whether addr is a well formed erd1... address.
func IsValid(addr string) bool {
	_, err := Decode(addr)
	return err == nil
}

// IsSmartContract reports whether the public key belongs to a smart contract.
func IsSmartContract(pubKey []byte) bool {
	if len(pubKey) != PubKeyLength {
		return false
	}

	for _, b := range pubKey[:smartContractPrefixLength] {
		if b != 0 {
			return false
		}
	}

	return true
}
