package signer_test

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/errs"
	"github/chapool/mvx-signer/internal/wallet/seed"
	"github/chapool/mvx-signer/internal/wallet/signer"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

const (
	aliceMnemonic = "moral volcano peasant pass circle pen over picture flat shop clap goat never lyrics gather prepare woman film husband gravity behind test tiger improve"
	aliceAddress  = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	bobAddress    = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"
)

func newAliceSigner(t *testing.T) signer.Service {
	t.Helper()

	m := seed.NewManager()
	require.NoError(t, m.Initialize(aliceMnemonic, ""))
	t.Cleanup(m.Clear)

	keys := signer.NewSeedKeyProvider(m, address.NewService(), address.DefaultDerivationPath)

	return signer.NewService(keys, nil)
}

func alicePubKey(t *testing.T) ed25519.PublicKey {
	t.Helper()

	pubKey, err := address.Decode(aliceAddress)
	require.NoError(t, err)

	return pubKey
}

func TestAddress(t *testing.T) {
	addr, err := newAliceSigner(t).Address(context.Background())
	require.NoError(t, err)
	assert.Equal(t, aliceAddress, addr)
}

func TestSignTransaction(t *testing.T) {
	intent := &transaction.Intent{
		Nonce:    7,
		Value:    "1000000000000000000",
		Receiver: bobAddress,
		Sender:   aliceAddress,
		GasPrice: 1000000000,
		GasLimit: 50000,
		ChainID:  "D",
		Version:  1,
	}

	signed, err := newAliceSigner(t).SignTransaction(context.Background(), intent)
	require.NoError(t, err)

	signature, err := hex.DecodeString(signed.Signature)
	require.NoError(t, err)
	require.Len(t, signature, ed25519.SignatureSize)

	serialized, err := intent.Serialize()
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(alicePubKey(t), serialized, signature))
	assert.Equal(t, *intent, signed.Intent)
}

func TestSignTransactionHashSigning(t *testing.T) {
	intent := &transaction.Intent{
		Value:    "0",
		Receiver: bobAddress,
		Sender:   aliceAddress,
		GasPrice: 1000000000,
		GasLimit: 50000,
		ChainID:  "D",
		Version:  2,
		Options:  transaction.OptionHashSign,
	}

	signed, err := newAliceSigner(t).SignTransaction(context.Background(), intent)
	require.NoError(t, err)

	signature, err := hex.DecodeString(signed.Signature)
	require.NoError(t, err)

	serialized, err := intent.Serialize()
	require.NoError(t, err)
	assert.False(t, ed25519.Verify(alicePubKey(t), serialized, signature))
	assert.True(t, ed25519.Verify(alicePubKey(t), crypto.Keccak256(serialized), signature))
}

func TestSignTransactionForeignSender(t *testing.T) {
	intent := &transaction.Intent{
		Value:    "0",
		Receiver: aliceAddress,
		Sender:   bobAddress,
		GasPrice: 1000000000,
		GasLimit: 50000,
		ChainID:  "D",
		Version:  1,
	}

	_, err := newAliceSigner(t).SignTransaction(context.Background(), intent)
	require.ErrorIs(t, err, errs.ErrInvalidIntent)
}

func TestSignMessage(t *testing.T) {
	message := []byte("hello")

	signature, err := newAliceSigner(t).SignMessage(context.Background(), message)
	require.NoError(t, err)

	expected := crypto.Keccak256([]byte("\x17Elrond Signed Message:\n5hello"))
	assert.Equal(t, expected, signer.MessageHash(message))
	assert.True(t, ed25519.Verify(alicePubKey(t), expected, signature))

	ok, err := signer.VerifyMessage(aliceAddress, message, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = signer.VerifyMessage(bobAddress, message, signature)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignAuthToken(t *testing.T) {
	token := "aHR0cHM6Ly9leGFtcGxlLmNvbQ.f68177510756edce45eca84b94544a6eacdfa36e69dfd3b8f24c4010d1990751.7200.e30"

	signature, err := newAliceSigner(t).SignAuthToken(context.Background(), token)
	require.NoError(t, err)

	ok, err := signer.VerifyMessage(aliceAddress, []byte(aliceAddress+token), signature)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = newAliceSigner(t).SignAuthToken(context.Background(), "")
	require.ErrorIs(t, err, errs.ErrInvalidIntent)
}

func TestLockedWallet(t *testing.T) {
	keys := signer.NewSeedKeyProvider(seed.NewManager(), address.NewService(), address.DefaultDerivationPath)
	s := signer.NewService(keys, nil)

	_, err := s.SignMessage(context.Background(), []byte("hello"))
	require.ErrorIs(t, err, errs.ErrKeyUnavailable)
	assert.Equal(t, errs.KindSigning, errs.KindOf(err))
}

func TestKeypairWipe(t *testing.T) {
	kp, err := signer.NewKeypair(make([]byte, ed25519.SeedSize))
	require.NoError(t, err)

	assert.True(t, address.IsValid(kp.Address))
	assert.Len(t, kp.PublicKey(), ed25519.PublicKeySize)

	kp.Wipe()

	_, err = signer.NewKeypair([]byte{1, 2, 3})
	require.Error(t, err)
}
