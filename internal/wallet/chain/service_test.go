package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

func TestResolve(t *testing.T) {
	r := chain.NewRegistry(nil)

	mainnet, err := r.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, "EGLD", mainnet.Label)
	assert.Equal(t, 18, mainnet.Decimals)
	assert.Equal(t, "https://api.multiversx.com", mainnet.APIAddress)

	devnet, err := r.Resolve(chain.ChainIDDevnet)
	require.NoError(t, err)
	assert.Equal(t, "xEGLD", devnet.Label)
	assert.Equal(t, "devnet", devnet.Name)
}

func TestResolveUnknownChain(t *testing.T) {
	r := chain.NewRegistry(nil)

	_, err := r.Resolve("X")
	require.ErrorIs(t, err, errs.ErrUnknownChain)
	assert.Equal(t, errs.KindEnvironment, errs.KindOf(err))

	_, err = r.Resolve("")
	require.ErrorIs(t, err, errs.ErrUnknownChain)
}

func TestRegistryOverrides(t *testing.T) {
	r := chain.NewRegistry(map[string]string{"D": "http://127.0.0.1:8080/", "Z": "http://ignored"})

	devnet, err := r.Resolve("D")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", devnet.APIAddress)

	_, err = r.Resolve("Z")
	require.ErrorIs(t, err, errs.ErrUnknownChain)

	// resolved values are copies
	devnet.APIAddress = "mutated"
	again, err := r.Resolve("D")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", again.APIAddress)
}

func TestList(t *testing.T) {
	list := chain.NewRegistry(nil).List()
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].ChainID)
	assert.Equal(t, "D", list[1].ChainID)
	assert.Equal(t, "T", list[2].ChainID)
}

func TestParseAPIOverrides(t *testing.T) {
	got := chain.ParseAPIOverrides(" D=http://localhost:1 , T = https://t.example ,broken,=x,1=")
	assert.Equal(t, map[string]string{"D": "http://localhost:1", "T": "https://t.example"}, got)
	assert.Empty(t, chain.ParseAPIOverrides(""))
}
