package keystore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet/keystore"
)

const testMnemonic = "moral volcano peasant pass circle pen over picture flat shop clap goat never lyrics gather prepare woman film husband gravity behind test tiger improve"

func newTestService(t *testing.T) keystore.Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "keystore.json")

	return keystore.NewService(path, keystore.ScryptParams{DKLen: 32, N: 1024, R: 8, P: 1})
}

func TestCreateAndDecrypt(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	exists, err := s.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := s.Create(ctx, testMnemonic, "correct horse", "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th")
	require.NoError(t, err)
	assert.Equal(t, keystore.Version, created.Version)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, created.Address, loaded.Address)
	assert.Equal(t, "aes-128-ctr", loaded.Crypto.Cipher)
	assert.Equal(t, "scrypt", loaded.Crypto.KDF)

	mnemonic, err := s.DecryptMnemonic(ctx, loaded, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestDecryptWrongPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	ks, err := s.Create(ctx, testMnemonic, "correct horse", "")
	require.NoError(t, err)

	_, err = s.DecryptMnemonic(ctx, ks, "battery staple")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestCreateTwice(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Create(ctx, testMnemonic, "correct horse", "")
	require.NoError(t, err)

	_, err = s.Create(ctx, testMnemonic, "correct horse", "")
	require.ErrorIs(t, err, keystore.ErrKeystoreExists)
}

func TestLoadMissing(t *testing.T) {
	_, err := newTestService(t).Load(context.Background())
	require.Error(t, err)
}

func TestDefaultScryptParams(t *testing.T) {
	params := keystore.DefaultScryptParams()
	assert.Equal(t, 262144, params.N)
	assert.Equal(t, 32, params.DKLen)
}
