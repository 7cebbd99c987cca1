package transaction_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

func addr(t *testing.T, fill byte) string {
	t.Helper()

	a, err := address.Encode(bytes.Repeat([]byte{fill}, address.PubKeyLength))
	require.NoError(t, err)

	return a
}

func TestSerializeFieldOrder(t *testing.T) {
	sender, receiver := addr(t, 1), addr(t, 2)

	intent := &transaction.Intent{
		Nonce:    89,
		Value:    "0",
		Receiver: receiver,
		Sender:   sender,
		GasPrice: 1000000000,
		GasLimit: 50000,
		ChainID:  "D",
		Version:  1,
	}

	raw, err := intent.Serialize()
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`{"nonce":89,"value":"0","receiver":"%s","sender":"%s","gasPrice":1000000000,"gasLimit":50000,"chainID":"D","version":1}`, receiver, sender), string(raw))

	intent.Data = []byte("hello")
	intent.Options = transaction.OptionGuarded
	intent.Version = 2
	intent.Guardian = addr(t, 3)
	intent.SenderUsername = []byte("alice")

	raw, err = intent.Serialize()
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`{"nonce":89,"value":"0","receiver":"%s","sender":"%s","senderUsername":"YWxpY2U=","gasPrice":1000000000,"gasLimit":50000,"data":"aGVsbG8=","chainID":"D","version":2,"options":2,"guardian":"%s"}`, receiver, sender, intent.Guardian), string(raw))
}

func TestSigningBytes(t *testing.T) {
	intent := &transaction.Intent{Value: "1", Receiver: addr(t, 2), Sender: addr(t, 1), GasPrice: 1, GasLimit: 1, ChainID: "T", Version: 1, Options: transaction.OptionHashSign}

	plain, err := intent.Serialize()
	require.NoError(t, err)

	// options are ignored before version 2
	got, err := intent.SigningBytes()
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	intent.Version = 2
	plain, err = intent.Serialize()
	require.NoError(t, err)

	got, err = intent.SigningBytes()
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256(plain), got)
}

func TestSignedJSON(t *testing.T) {
	signed := &transaction.Signed{
		Intent:    transaction.Intent{Nonce: 1, Value: "10", Receiver: addr(t, 2), Sender: addr(t, 1), GasPrice: 1, GasLimit: 2, ChainID: "1", Version: 1},
		Signature: "abcd",
	}

	out, err := signed.JSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"version":1,"signature":"abcd"}`)

	var decoded transaction.Signed
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *signed, decoded)
}

func TestUnmarshalPlainObject(t *testing.T) {
	raw := fmt.Sprintf(`{"nonce":7,"value":"1000","receiver":"%s","sender":"%s","gasPrice":1000000000,"gasLimit":70000,"data":"dGVzdA==","chainID":"D","version":2,"options":1}`, addr(t, 2), addr(t, 1))

	var intent transaction.Intent
	require.NoError(t, json.Unmarshal([]byte(raw), &intent))
	assert.Equal(t, []byte("test"), intent.Data)
	assert.True(t, intent.IsHashSigned())
	assert.False(t, intent.IsGuarded())

	again, err := intent.Serialize()
	require.NoError(t, err)
	assert.Equal(t, raw, string(again))
}

func TestIsGuarded(t *testing.T) {
	intent := &transaction.Intent{Version: 2, Options: transaction.OptionGuarded}
	assert.False(t, intent.IsGuarded())

	intent.Guardian = addr(t, 3)
	assert.True(t, intent.IsGuarded())

	intent.Version = 1
	assert.False(t, intent.IsGuarded())
}

func TestValidate(t *testing.T) {
	valid := transaction.Intent{Value: "0", Receiver: addr(t, 2), Sender: addr(t, 1), GasPrice: 1000000000, GasLimit: 50000, ChainID: "D", Version: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(i *transaction.Intent)
	}{
		{"missing sender", func(i *transaction.Intent) { i.Sender = "" }},
		{"bad receiver", func(i *transaction.Intent) { i.Receiver = "erd1invalid" }},
		{"decimal value", func(i *transaction.Intent) { i.Value = "1.5" }},
		{"negative value", func(i *transaction.Intent) { i.Value = "-1" }},
		{"zero gas limit", func(i *transaction.Intent) { i.GasLimit = 0 }},
		{"zero gas price", func(i *transaction.Intent) { i.GasPrice = 0 }},
		{"missing chain", func(i *transaction.Intent) { i.ChainID = "" }},
		{"zero version", func(i *transaction.Intent) { i.Version = 0 }},
		{"bad guardian", func(i *transaction.Intent) { i.Guardian = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := valid
			tt.mutate(&intent)

			err := intent.Validate()
			require.ErrorIs(t, err, errs.ErrInvalidIntent)
			assert.Equal(t, errs.KindInputValidation, errs.KindOf(err))
		})
	}
}
