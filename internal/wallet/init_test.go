package wallet_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/keystore"
	"github/chapool/mvx-signer/internal/wallet/seed"
)

func newKeystore(t *testing.T) keystore.Service {
	t.Helper()

	return keystore.NewService(filepath.Join(t.TempDir(), "keystore.json"), keystore.ScryptParams{DKLen: 32, N: 1024, R: 8, P: 1})
}

func fixedPrompt(answers ...string) wallet.PasswordPrompt {
	return func(string) (string, error) {
		if len(answers) == 0 {
			return "", errors.New("no more answers")
		}

		answer := answers[0]
		answers = answers[1:]

		return answer, nil
	}
}

func TestCreateKeystoreAndUnlock(t *testing.T) {
	ctx := context.Background()
	ks := newKeystore(t)
	addresses := address.NewService()

	var out bytes.Buffer
	created, err := wallet.CreateKeystore(ctx, ks, addresses, address.DefaultDerivationPath, "", fixedPrompt("correct horse", "correct horse"), &out)
	require.NoError(t, err)
	assert.True(t, address.IsValid(created.Address))
	assert.Contains(t, out.String(), created.Address)

	lines := strings.Split(out.String(), "\n")
	var mnemonic string
	for _, line := range lines {
		if len(strings.Fields(line)) == 24 {
			mnemonic = line
		}
	}
	require.NotEmpty(t, mnemonic, "mnemonic must be printed for backup")

	m := seed.NewManager()
	err = wallet.UnlockSeed(ctx, m, ks, addresses, wallet.UnlockOptions{
		DerivationPath: address.DefaultDerivationPath,
		Prompt:         fixedPrompt("correct horse"),
	})
	require.NoError(t, err)
	assert.True(t, m.IsInitialized())

	addr, err := wallet.DeriveAccountAddress(ctx, m, addresses, address.DefaultDerivationPath)
	require.NoError(t, err)
	assert.Equal(t, created.Address, addr)
}

func TestUnlockWrongPassword(t *testing.T) {
	ctx := context.Background()
	ks := newKeystore(t)
	addresses := address.NewService()

	_, err := wallet.CreateKeystore(ctx, ks, addresses, address.DefaultDerivationPath, "", fixedPrompt("correct horse", "correct horse"), &bytes.Buffer{})
	require.NoError(t, err)

	m := seed.NewManager()
	err = wallet.UnlockSeed(ctx, m, ks, addresses, wallet.UnlockOptions{
		DerivationPath: address.DefaultDerivationPath,
		Password:       "battery staple",
	})
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
	assert.False(t, m.IsInitialized())
}

func TestUnlockWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	ks := newKeystore(t)
	addresses := address.NewService()

	_, err := wallet.CreateKeystore(ctx, ks, addresses, address.DefaultDerivationPath, "", fixedPrompt("correct horse", "correct horse"), &bytes.Buffer{})
	require.NoError(t, err)

	m := seed.NewManager()
	err = wallet.UnlockSeed(ctx, m, ks, addresses, wallet.UnlockOptions{
		DerivationPath: address.DefaultDerivationPath,
		Password:       "correct horse",
		Passphrase:     "extra words",
	})
	require.Error(t, err)
	assert.False(t, m.IsInitialized())
}

func TestUnlockFromMnemonic(t *testing.T) {
	m := seed.NewManager()
	err := wallet.UnlockSeed(context.Background(), m, newKeystore(t), address.NewService(), wallet.UnlockOptions{Mnemonic: aliceMnemonic})
	require.NoError(t, err)
	assert.True(t, m.IsInitialized())
}

func TestUnlockMissingKeystore(t *testing.T) {
	err := wallet.UnlockSeed(context.Background(), seed.NewManager(), newKeystore(t), address.NewService(), wallet.UnlockOptions{Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateKeystorePasswordChecks(t *testing.T) {
	ctx := context.Background()

	_, err := wallet.CreateKeystore(ctx, newKeystore(t), address.NewService(), address.DefaultDerivationPath, "", fixedPrompt("short", "short"), &bytes.Buffer{})
	require.Error(t, err)

	_, err = wallet.CreateKeystore(ctx, newKeystore(t), address.NewService(), address.DefaultDerivationPath, "", fixedPrompt("correct horse", "correct house"), &bytes.Buffer{})
	require.EqualError(t, err, "passwords do not match")
}
