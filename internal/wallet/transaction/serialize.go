package transaction

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Serialize returns the compact JSON encoding of the intent, matching the chain's reference
// serialization: no HTML escaping, optional fields omitted when empty.
func (i *Intent) Serialize() ([]byte, error) {
	return marshalCompact(i)
}

// SigningBytes returns the bytes the account signs: the serialized intent, or its keccak256
// when hash signing is requested.
func (i *Intent) SigningBytes() ([]byte, error) {
	serialized, err := i.Serialize()
	if err != nil {
		return nil, err
	}

	if i.IsHashSigned() {
		return crypto.Keccak256(serialized), nil
	}

	return serialized, nil
}

// JSON returns the plain-object JSON of the signed transaction.
func (s *Signed) JSON() (string, error) {
	raw, err := marshalCompact(s)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "failed to serialize transaction")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
